package vfps_test

import (
	"testing"

	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/surfgraph"
	"github.com/katalvlaran/geomesh/vfps"
)

func buildGraph(t *testing.T, points [][3]float64, tris []mesh.Triangle) *surfgraph.Graph {
	t.Helper()
	m, err := mesh.New(points, tris)
	if err != nil {
		t.Fatalf("unexpected mesh error: %v", err)
	}
	g, err := surfgraph.BuildFromTriangles(m)
	if err != nil {
		t.Fatalf("unexpected graph error: %v", err)
	}
	return g
}

func TestSample_SingleTriangle(t *testing.T) {
	g := buildGraph(t,
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]mesh.Triangle{{0, 1, 2}},
	)
	res, err := vfps.Sample(g, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Seeds) != 3 {
		t.Fatalf("expected 3 seeds, got %d: %v", len(res.Seeds), res.Seeds)
	}
	if res.Seeds[0] != 0 {
		t.Fatalf("expected first seed to be vertex 0, got %d", res.Seeds[0])
	}
	seen := map[int32]bool{}
	for _, s := range res.Seeds {
		if seen[s] {
			t.Fatalf("duplicate seed %d in %v", s, res.Seeds)
		}
		seen[s] = true
	}
	for _, s := range res.Seeds {
		rank := res.Nearest[s]
		if res.Seeds[rank] != s {
			t.Fatalf("seed %d: nearest rank %d does not map back to it", s, rank)
		}
		if res.Dist[s] != 0 {
			t.Fatalf("seed %d should have distance 0, got %v", s, res.Dist[s])
		}
	}
}

func TestSample_Tetrahedron(t *testing.T) {
	points := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
	tris := []mesh.Triangle{
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	}
	g := buildGraph(t, points, tris)
	res, err := vfps.Sample(g, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Seeds) != 4 {
		t.Fatalf("expected all 4 vertices as seeds, got %d", len(res.Seeds))
	}
	if res.StoppedEarly {
		t.Fatalf("did not expect early stop with N == vertex count")
	}
}

func TestSample_DisconnectedPair_OneSeedPerComponent(t *testing.T) {
	points := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{10, 0, 0}, {11, 0, 0}, {10, 1, 0},
	}
	tris := []mesh.Triangle{{0, 1, 2}, {3, 4, 5}}
	g := buildGraph(t, points, tris)

	res, err := vfps.Sample(g, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Seeds) != 2 {
		t.Fatalf("expected 2 seeds, got %d", len(res.Seeds))
	}

	labelOf := func(v int32) bool { return v < 3 }
	if labelOf(res.Seeds[0]) == labelOf(res.Seeds[1]) {
		t.Fatalf("expected one seed per component, got seeds %v", res.Seeds)
	}

	for v := int32(0); v < 6; v++ {
		inFirstHalf := v < 3
		seedInFirstHalf := labelOf(res.Seeds[res.Nearest[v]])
		if inFirstHalf != seedInFirstHalf {
			t.Fatalf("vertex %d assigned to seed in wrong component", v)
		}
	}
}

func TestSample_NLargerThanVertexCount(t *testing.T) {
	g := buildGraph(t,
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]mesh.Triangle{{0, 1, 2}},
	)
	res, err := vfps.Sample(g, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Seeds) != 3 {
		t.Fatalf("expected seeds to saturate at vertex count 3, got %d", len(res.Seeds))
	}
	if !res.StoppedEarly {
		t.Fatalf("expected StoppedEarly to be true")
	}
	for _, d := range res.Dist {
		if d != 0 {
			t.Fatalf("expected all distances 0 once every vertex is a seed, got %v", res.Dist)
		}
	}
}

func TestSample_InvalidN(t *testing.T) {
	g := buildGraph(t,
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]mesh.Triangle{{0, 1, 2}},
	)
	if _, err := vfps.Sample(g, 0); err == nil {
		t.Fatalf("expected error for N=0")
	}
	if _, err := vfps.Sample(g, -1); err == nil {
		t.Fatalf("expected error for N=-1")
	}
}

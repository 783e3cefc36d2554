package baryweight

// SparseMatrix is a row-major sparse matrix in CSR-like storage: row i's
// entries occupy colIdx[rowStart[i]:rowStart[i+1]] with parallel values in
// vals[rowStart[i]:rowStart[i+1]].
type SparseMatrix struct {
	rows, cols int
	rowStart   []int32
	colIdx     []int32
	vals       []float64
}

// NumRows returns the matrix's row count (n_orig_input).
func (s *SparseMatrix) NumRows() int { return s.rows }

// NumCols returns the matrix's column count (number of low-res vertices).
func (s *SparseMatrix) NumCols() int { return s.cols }

// NNZ returns the total number of stored (non-zero) entries.
func (s *SparseMatrix) NNZ() int { return len(s.colIdx) }

// Row returns row i's column indices and parallel values as read-only
// views into the matrix's flat storage.
func (s *SparseMatrix) Row(i int) (cols []int32, vals []float64) {
	lo, hi := s.rowStart[i], s.rowStart[i+1]
	return s.colIdx[lo:hi], s.vals[lo:hi]
}

// Dense materializes the full rows×cols matrix. Intended for tests and
// debugging only: for any realistic mesh this allocates far more memory
// than the sparse form.
func (s *SparseMatrix) Dense() [][]float64 {
	out := make([][]float64, s.rows)
	for i := range out {
		out[i] = make([]float64, s.cols)
		cols, vals := s.Row(i)
		for k, c := range cols {
			out[i][c] = vals[k]
		}
	}
	return out
}

// builder accumulates rows before freezing them into a SparseMatrix.
type builder struct {
	cols     int
	rowStart []int32
	colIdx   []int32
	vals     []float64
}

func newBuilder(rows, cols int) *builder {
	return &builder{
		cols:     cols,
		rowStart: make([]int32, 1, rows+1),
		colIdx:   make([]int32, 0, rows),
		vals:     make([]float64, 0, rows),
	}
}

// addRow appends one row's (col, val) pairs, in the order given, and
// closes the row.
func (b *builder) addRow(cols []int32, vals []float64) {
	b.colIdx = append(b.colIdx, cols...)
	b.vals = append(b.vals, vals...)
	b.rowStart = append(b.rowStart, int32(len(b.colIdx)))
}

func (b *builder) build(rows int) *SparseMatrix {
	return &SparseMatrix{
		rows:     rows,
		cols:     b.cols,
		rowStart: b.rowStart,
		colIdx:   b.colIdx,
		vals:     b.vals,
	}
}

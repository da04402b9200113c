package lgbm

import (
	"gonum.org/v1/gonum/mat"

	scierr "github.com/Teamon9161/lgbm-go/pkg/errors"
)

// Layout declares how a Mat's backing slice is ordered in memory.
type Layout int

const (
	// RowMajor stores each row contiguously.
	RowMajor Layout = iota
	// ColMajor stores each column contiguously.
	ColMajor
)

// String returns the layout name.
func (l Layout) String() string {
	if l == RowMajor {
		return "row-major"
	}
	return "column-major"
}

// Mat is a dense 2D buffer of feature values. Datasets built from a Mat read
// the buffer during construction and do not retain it; the Mat keeps
// ownership of its slice.
type Mat[T FeatureData] struct {
	rows   int
	cols   int
	layout Layout
	data   []T
}

// NewMat wraps data as a rows x cols matrix with the given layout. The slice
// is used as-is, not copied, and must hold exactly rows*cols elements.
func NewMat[T FeatureData](rows, cols int, layout Layout, data []T) (*Mat[T], error) {
	if rows < 0 || cols < 0 {
		return nil, scierr.Newf("lgbm: NewMat: negative dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, scierr.Newf("lgbm: NewMat: data length %d does not match %dx%d", len(data), rows, cols)
	}
	return &Mat[T]{rows: rows, cols: cols, layout: layout, data: data}, nil
}

// Rows returns the number of rows.
func (m *Mat[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mat[T]) Cols() int { return m.cols }

// Layout returns the declared memory layout.
func (m *Mat[T]) Layout() Layout { return m.layout }

// Data returns the backing slice.
func (m *Mat[T]) Data() []T { return m.data }

// At returns the element at row i, column j. It panics on out-of-range
// indices, matching gonum's access convention.
func (m *Mat[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("lgbm: Mat index out of range")
	}
	if m.layout == RowMajor {
		return m.data[i*m.cols+j]
	}
	return m.data[j*m.rows+i]
}

// FromDense copies a gonum Dense matrix into a row-major Mat[float64],
// honoring the Dense stride so views produced by Slice convert correctly.
func FromDense(d *mat.Dense) *Mat[float64] {
	rows, cols := d.Dims()
	raw := d.RawMatrix()
	out := make([]float64, rows*cols)
	if raw.Stride == cols {
		copy(out, raw.Data[:rows*cols])
	} else {
		for i := 0; i < rows; i++ {
			copy(out[i*cols:(i+1)*cols], raw.Data[i*raw.Stride:i*raw.Stride+cols])
		}
	}
	m, err := NewMat(rows, cols, RowMajor, out)
	if err != nil {
		// Dims and the copied slice are consistent by construction.
		panic(err)
	}
	return m
}

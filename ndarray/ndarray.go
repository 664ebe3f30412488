// Package ndarray stores N-rank tensors as one flat row-major buffer.
// The last axis varies fastest, so Stride(rank-1) == 1.
package ndarray

// Array is a dense N-rank float64 tensor. It owns its backing buffer;
// constructors deep-copy caller data to ensure immutability of the source.
// Shape and Data are exported for direct traversal in hot loops; strides are
// derived once at construction.
type Array struct {
	Shape   []int     // axis lengths, outermost first
	Data    []float64 // row-major backing storage, len == product(Shape)
	strides []int
}

// checkShape validates axis lengths and returns the total cell count.
func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrEmptyShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrEmptyShape
		}
		n *= d
	}
	return n, nil
}

// rowMajorStrides computes per-axis strides for a row-major layout.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for a := len(shape) - 1; a >= 0; a-- {
		strides[a] = s
		s *= shape[a]
	}
	return strides
}

// New returns a zero-filled Array of the given shape.
// Returns ErrEmptyShape for an empty shape or a non-positive axis length.
// Complexity: O(len) time and memory.
func New(shape ...int) (*Array, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	dims := make([]int, len(shape))
	copy(dims, shape)
	return &Array{
		Shape:   dims,
		Data:    make([]float64, n),
		strides: rowMajorStrides(dims),
	}, nil
}

// NewFrom builds an Array of the given shape from row-major data.
// The data slice is deep-copied to prevent external mutation.
// Returns ErrEmptyShape for a bad shape, ErrBadLength if len(data) does not
// equal the shape's cell count.
func NewFrom(data []float64, shape ...int) (*Array, error) {
	a, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.Data) {
		return nil, ErrBadLength
	}
	copy(a.Data, data)
	return a, nil
}

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.Shape) }

// Len returns the total number of cells.
func (a *Array) Len() int { return len(a.Data) }

// Stride returns the flat-offset step for a ±1 move along axis.
// Complexity: O(1).
func (a *Array) Stride(axis int) int { return a.strides[axis] }

// Offset maps multi-axis coordinates to a flat row-major offset.
// Returns ErrIndexOutOfRange if the coordinate count differs from the rank
// or any coordinate falls outside its axis.
func (a *Array) Offset(coords ...int) (int, error) {
	if len(coords) != len(a.Shape) {
		return 0, ErrIndexOutOfRange
	}
	off := 0
	for i, c := range coords {
		if c < 0 || c >= a.Shape[i] {
			return 0, ErrIndexOutOfRange
		}
		off += c * a.strides[i]
	}
	return off, nil
}

// Coordinate converts a flat offset back to multi-axis coordinates.
// The inverse of Offset for valid offsets. Complexity: O(rank).
func (a *Array) Coordinate(off int) []int {
	coords := make([]int, len(a.Shape))
	for i, s := range a.strides {
		coords[i] = off / s
		off %= s
	}
	return coords
}

// At returns the value at the given coordinates.
func (a *Array) At(coords ...int) (float64, error) {
	off, err := a.Offset(coords...)
	if err != nil {
		return 0, err
	}
	return a.Data[off], nil
}

// Set writes v at the given coordinates.
func (a *Array) Set(v float64, coords ...int) error {
	off, err := a.Offset(coords...)
	if err != nil {
		return err
	}
	a.Data[off] = v
	return nil
}

// Fill sets every cell to v.
func (a *Array) Fill(v float64) {
	for i := range a.Data {
		a.Data[i] = v
	}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (a *Array) Clone() *Array {
	dims := make([]int, len(a.Shape))
	copy(dims, a.Shape)
	data := make([]float64, len(a.Data))
	copy(data, a.Data)
	return &Array{Shape: dims, Data: data, strides: rowMajorStrides(dims)}
}

// SameShape reports whether a and b have identical shapes.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

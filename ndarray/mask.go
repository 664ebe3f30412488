package ndarray

// Mask is a dense N-rank boolean tensor with the same layout rules as Array.
// It marks extremity cells (value beyond a threshold) during cluster
// candidate detection and significance cells in the final result.
type Mask struct {
	Shape   []int
	Data    []bool // row-major, len == product(Shape)
	strides []int
}

// NewMask returns an all-false Mask of the given shape.
// Returns ErrEmptyShape for an empty shape or a non-positive axis length.
func NewMask(shape ...int) (*Mask, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	dims := make([]int, len(shape))
	copy(dims, shape)
	return &Mask{
		Shape:   dims,
		Data:    make([]bool, n),
		strides: rowMajorStrides(dims),
	}, nil
}

// Rank returns the number of axes.
func (m *Mask) Rank() int { return len(m.Shape) }

// Len returns the total number of cells.
func (m *Mask) Len() int { return len(m.Data) }

// Stride returns the flat-offset step for a ±1 move along axis.
func (m *Mask) Stride(axis int) int { return m.strides[axis] }

// Coordinate converts a flat offset back to multi-axis coordinates.
func (m *Mask) Coordinate(off int) []int {
	coords := make([]int, len(m.Shape))
	for i, s := range m.strides {
		coords[i] = off / s
		off %= s
	}
	return coords
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Data {
		if v {
			n++
		}
	}
	return n
}

// Overlaps reports whether m and other share any true cell.
// Both masks must have equal length; shapes are assumed validated upstream.
func (m *Mask) Overlaps(other *Mask) bool {
	for i, v := range m.Data {
		if v && other.Data[i] {
			return true
		}
	}
	return false
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *Mask) Clone() *Mask {
	dims := make([]int, len(m.Shape))
	copy(dims, m.Shape)
	data := make([]bool, len(m.Data))
	copy(data, m.Data)
	return &Mask{Shape: dims, Data: data, strides: rowMajorStrides(dims)}
}

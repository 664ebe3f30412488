package ndarray

import "errors"

// Sentinel errors for ndarray construction and indexing.
var (
	// ErrEmptyShape indicates a shape with no axes or a non-positive axis length.
	ErrEmptyShape = errors.New("ndarray: shape must have at least one axis, all lengths positive")
	// ErrBadLength indicates data whose length does not match the shape's cell count.
	ErrBadLength = errors.New("ndarray: data length does not match shape")
	// ErrIndexOutOfRange indicates a coordinate or flat offset outside the array.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")
	// ErrShapeMismatch indicates two arrays whose shapes differ where equality is required.
	ErrShapeMismatch = errors.New("ndarray: shapes do not match")
)

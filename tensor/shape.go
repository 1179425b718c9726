// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Shape manages a tensor's shape information, including sizes
// and optional dimension names, and computes the row-major
// strides used to map an n-dimensional index onto the flat Values slice.
// The outermost (first) dimension is the row dimension.
type Shape struct {

	// Sizes are the size of each dimension.
	Sizes []int

	// Strides are the offsets for each dimension, in row-major order.
	Strides []int `display:"-"`

	// Names are the optional names of each dimension.
	Names []string `display:"-"`
}

// NewShape returns a new shape with given sizes.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShapeSizes(sizes...)
	return sh
}

// SetShapeSizes sets the shape sizes and recomputes strides.
// Names are reset.
func (sh *Shape) SetShapeSizes(sizes ...int) {
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = RowMajorStrides(sh.Sizes...)
	sh.Names = nil
}

// SetNames sets the dimension names, which must match the number of dimensions.
func (sh *Shape) SetNames(names ...string) {
	sh.Names = slices.Clone(names)
}

// CopyFrom copies the shape parameters from another Shape struct.
func (sh *Shape) CopyFrom(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Strides = slices.Clone(cp.Strides)
	sh.Names = slices.Clone(cp.Names)
}

// Len returns the total length of elements in the tensor
// (i.e., the product of the shape sizes).
func (sh *Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 0
	}
	n := 1
	for _, v := range sh.Sizes {
		n *= v
	}
	return n
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int {
	return sh.Sizes[i]
}

// IsEqual returns true if this shape has the same sizes as the other.
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// RowCellSize returns the size of the outermost row dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
func (sh *Shape) RowCellSize() (rows, cells int) {
	if len(sh.Sizes) == 0 {
		return 0, 1
	}
	rows = sh.Sizes[0]
	cells = 1
	for _, v := range sh.Sizes[1:] {
		cells *= v
	}
	return
}

// IndexTo1D returns the flat 1D index from given n-dimensional indices.
// No checking is done on the length or size of the index values
// relative to the shape of the tensor; use [Shape.IndexIsValid] for that.
func (sh *Shape) IndexTo1D(index ...int) int {
	oned := 0
	for i, v := range index {
		oned += v * sh.Strides[i]
	}
	return oned
}

// IndexIsValid returns an error if the given index is out of range
// for this shape.
func (sh *Shape) IndexIsValid(index ...int) error {
	if len(index) != len(sh.Sizes) {
		return fmt.Errorf("tensor.Shape: index %v has %d dims, shape has %d", index, len(index), len(sh.Sizes))
	}
	for i, v := range index {
		if v < 0 || v >= sh.Sizes[i] {
			return fmt.Errorf("tensor.Shape: index %v is out of range for sizes %v", index, sh.Sizes)
		}
	}
	return nil
}

// String satisfies the fmt.Stringer interface.
func (sh *Shape) String() string {
	str := "["
	for i := range sh.Sizes {
		if len(sh.Names) == len(sh.Sizes) && sh.Names[i] != "" {
			str += sh.Names[i] + ": "
		}
		str += fmt.Sprintf("%d", sh.Sizes[i])
		if i < len(sh.Sizes)-1 {
			str += ", "
		}
	}
	return str + "]"
}

// RowMajorStrides returns strides for sizes where the first dimension
// is the outermost and the last dimension is the innermost.
func RowMajorStrides(sizes ...int) []int {
	rem := 1
	for _, v := range sizes {
		rem *= v
	}
	if rem == 0 {
		strides := make([]int, len(sizes))
		for i := range strides {
			strides[i] = rem
		}
		return strides
	}
	strides := make([]int, len(sizes))
	for i, v := range sizes {
		rem /= v
		strides[i] = rem
	}
	return strides
}

// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"reflect"
)

// Tensor is the interface for n-dimensional tensors of values,
// stored in row-major order in a flat Values slice. The outermost
// dimension is the row, which is how a tensor serves as a column
// of a [table.Table]. Float and String access is supported for all
// value types, converting as needed.
type Tensor interface {
	fmt.Stringer

	// Shape returns a pointer to the shape that fully parametrizes the tensor shape.
	Shape() *Shape

	// Len returns the number of elements in the tensor (product of shape dimensions).
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// NumRows returns the size of the outermost row dimension.
	NumRows() int

	// RowCellSize returns the size of the outermost row dimension,
	// and the size of all the remaining inner dimensions (the "cell" size).
	RowCellSize() (rows, cells int)

	// DataType returns the type of the data elements in the tensor.
	DataType() reflect.Kind

	// IsString returns true if the data type is a String.
	IsString() bool

	// SetNumRows sets the number of rows (outermost dimension),
	// preserving existing values and zero-filling any new rows.
	SetNumRows(rows int)

	// Float returns the value of given n-dimensional index as a float64.
	Float(i ...int) float64

	// SetFloat sets the value of given n-dimensional index as a float64.
	SetFloat(val float64, i ...int)

	// Float1D returns the value of given 1-dimensional flat index as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value of given 1-dimensional flat index as a float64.
	SetFloat1D(val float64, i int)

	// StringValue returns the value of given n-dimensional index as a string.
	StringValue(i ...int) string

	// SetString sets the value of given n-dimensional index as a string.
	SetString(val string, i ...int)

	// String1D returns the value of given 1-dimensional flat index as a string.
	String1D(i int) string

	// SetString1D sets the value of given 1-dimensional flat index as a string.
	SetString1D(val string, i int)

	// SetZeros sets all values to the zero value.
	SetZeros()

	// Clone returns a deep copy of this tensor, including shape and values.
	Clone() Tensor

	// CopyCellsFrom copies n values from the given source tensor,
	// starting at the given 1D flat offset in the source,
	// into this tensor starting at the to offset.
	CopyCellsFrom(from Tensor, to, start, n int)
}

// New returns a new n-dimensional tensor of given value type
// with the given sizes per dimension (shape).
func New[T string | float64 | int](sizes ...int) Tensor {
	var v T
	switch any(v).(type) {
	case string:
		return NewString(sizes...)
	case float64:
		return NewFloat64(sizes...)
	case int:
		return NewInt(sizes...)
	}
	panic("tensor.New: unsupported type")
}

// NewOfType returns a new n-dimensional tensor of given reflect.Kind type
// with the given sizes per dimension (shape).
// Supported types are string, float64 and int; float32 is stored as float64.
func NewOfType(typ reflect.Kind, sizes ...int) (Tensor, error) {
	switch typ {
	case reflect.String:
		return NewString(sizes...), nil
	case reflect.Float64, reflect.Float32:
		return NewFloat64(sizes...), nil
	case reflect.Int, reflect.Int64, reflect.Int32:
		return NewInt(sizes...), nil
	}
	return nil, fmt.Errorf("tensor.NewOfType: type not supported: %v", typ)
}

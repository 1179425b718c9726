// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"reflect"
	"slices"
)

// Base is the base Tensor implementation for given type.
type Base[T any] struct {

	// shape contains the N-dimensional shape and indexing functionality.
	shape Shape

	// Values is a flat 1D slice of the underlying data, in row-major order.
	Values []T
}

// Shape returns a pointer to the shape that fully parametrizes the tensor shape.
func (tsr *Base[T]) Shape() *Shape { return &tsr.shape }

// Len returns the number of elements in the tensor (product of shape dimensions).
func (tsr *Base[T]) Len() int { return tsr.shape.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns size of given dimension.
func (tsr *Base[T]) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// NumRows returns the size of the outermost row dimension.
func (tsr *Base[T]) NumRows() int {
	rows, _ := tsr.shape.RowCellSize()
	return rows
}

// RowCellSize returns the size of the outermost row dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
func (tsr *Base[T]) RowCellSize() (rows, cells int) {
	return tsr.shape.RowCellSize()
}

// DataType returns the type of the data elements in the tensor.
func (tsr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

// Value returns value at given tensor index.
func (tsr *Base[T]) Value(i ...int) T { return tsr.Values[tsr.shape.IndexTo1D(i...)] }

// Value1D returns value at given 1D (flat) tensor index.
func (tsr *Base[T]) Value1D(i int) T { return tsr.Values[i] }

// Set sets the value at given tensor index.
func (tsr *Base[T]) Set(val T, i ...int) { tsr.Values[tsr.shape.IndexTo1D(i...)] = val }

// Set1D sets the value at given 1D (flat) tensor index.
func (tsr *Base[T]) Set1D(val T, i int) { tsr.Values[i] = val }

// SetShapeSizes sets the dimension sizes of the tensor, and resizes
// backing storage appropriately, retaining all existing data that fits.
func (tsr *Base[T]) SetShapeSizes(sizes ...int) {
	tsr.shape.SetShapeSizes(sizes...)
	tsr.Values = setLength(tsr.Values, tsr.Len())
}

// SetNames sets the dimension names of the tensor shape.
func (tsr *Base[T]) SetNames(names ...string) {
	tsr.shape.SetNames(names...)
}

// SetNumRows sets the number of rows (outermost dimension) in the tensor.
// Existing values are retained and new rows are zero-valued.
func (tsr *Base[T]) SetNumRows(rows int) {
	rows = max(0, rows)
	if tsr.NumDims() == 0 {
		tsr.SetShapeSizes(rows)
		return
	}
	names := tsr.shape.Names
	sizes := slices.Clone(tsr.shape.Sizes)
	sizes[0] = rows
	tsr.SetShapeSizes(sizes...)
	tsr.shape.Names = names
}

// SetZeros is a convenience function to initialize all values to the zero value.
func (tsr *Base[T]) SetZeros() {
	var zv T
	for j := range tsr.Values {
		tsr.Values[j] = zv
	}
}

// setLength returns a slice of given length, reusing the storage
// of the given slice when it has the capacity, and zeroing any
// elements beyond its current length.
func setLength[T any](vals []T, n int) []T {
	if n <= len(vals) {
		return vals[:n]
	}
	if n <= cap(vals) {
		ext := vals[len(vals):n]
		var zv T
		for i := range ext {
			ext[i] = zv
		}
		return vals[:n]
	}
	return append(vals, make([]T, n-len(vals))...)
}

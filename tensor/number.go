// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"slices"
	"strconv"
)

// Numeric is the set of value types a [Number] tensor can hold.
type Numeric interface {
	~float64 | ~float32 | ~int | ~int64 | ~int32
}

// Number is a tensor of numerical values
type Number[T Numeric] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Int is an alias for Number[int].
type Int = Number[int]

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	return NewNumber[float64](sizes...)
}

// NewInt returns a new [Int] tensor
// with the given sizes per dimension (shape).
func NewInt(sizes ...int) *Int {
	return NewNumber[int](sizes...)
}

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T Numeric](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewFloat64FromValues returns a new 1-dimensional tensor
// initialized directly from the given slice values, which are not copied.
// The resulting Tensor thus "wraps" the given values.
func NewFloat64FromValues(vals ...float64) *Float64 {
	tsr := &Float64{}
	tsr.shape.SetShapeSizes(len(vals))
	tsr.Values = vals
	return tsr
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Number[T]) String() string { return Sprintf(tsr, "") }

func (tsr *Number[T]) IsString() bool { return false }

// SetAdd adds val to the value at given n-dimensional index.
func (tsr *Number[T]) SetAdd(val T, i ...int) {
	tsr.Values[tsr.shape.IndexTo1D(i...)] += val
}

// SetSub subtracts val from the value at given n-dimensional index.
func (tsr *Number[T]) SetSub(val T, i ...int) {
	tsr.Values[tsr.shape.IndexTo1D(i...)] -= val
}

// Row returns the cells of the given row as a slice that
// shares storage with the tensor: writes are reflected in both.
func (tsr *Number[T]) Row(row int) []T {
	_, cells := tsr.shape.RowCellSize()
	st := row * cells
	return tsr.Values[st : st+cells : st+cells]
}

// Rows2D returns the values of a 2-dimensional tensor as a
// freshly allocated slice of rows.
func (tsr *Number[T]) Rows2D() [][]T {
	rows, _ := tsr.shape.RowCellSize()
	out := make([][]T, rows)
	for i := range rows {
		out[i] = slices.Clone(tsr.Row(i))
	}
	return out
}

///////  Strings

func (tsr *Number[T]) StringValue(i ...int) string {
	return strconv.FormatFloat(float64(tsr.Value(i...)), 'g', -1, 64)
}

func (tsr *Number[T]) SetString(val string, i ...int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		tsr.Set(T(fv), i...)
	}
}

func (tsr *Number[T]) String1D(i int) string {
	return strconv.FormatFloat(float64(tsr.Values[i]), 'g', -1, 64)
}

func (tsr *Number[T]) SetString1D(val string, i int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		tsr.Values[i] = T(fv)
	}
}

///////  Floats

func (tsr *Number[T]) Float(i ...int) float64 {
	return float64(tsr.Value(i...))
}

func (tsr *Number[T]) SetFloat(val float64, i ...int) {
	tsr.Set(T(val), i...)
}

func (tsr *Number[T]) Float1D(i int) float64 {
	return float64(tsr.Values[i])
}

func (tsr *Number[T]) SetFloat1D(val float64, i int) {
	tsr.Values[i] = T(val)
}

// Floats returns a copy of all values as float64.
func (tsr *Number[T]) Floats() []float64 {
	out := make([]float64, len(tsr.Values))
	for i, v := range tsr.Values {
		out[i] = float64(v)
	}
	return out
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Number[T]) Clone() Tensor {
	cp := &Number[T]{}
	cp.shape.CopyFrom(&tsr.shape)
	cp.Values = slices.Clone(tsr.Values)
	return cp
}

// CopyCellsFrom copies n values from the given source tensor,
// starting at the given 1D flat offset in the source,
// into this tensor starting at the to offset.
func (tsr *Number[T]) CopyCellsFrom(from Tensor, to, start, n int) {
	if fsm, ok := from.(*Number[T]); ok {
		copy(tsr.Values[to:to+n], fsm.Values[start:start+n])
		return
	}
	for i := range n {
		tsr.Values[to+i] = T(from.Float1D(start + i))
	}
}

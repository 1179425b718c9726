// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"slices"
	"strconv"
)

// String is a tensor of string values
type String struct {
	Base[string]
}

// NewString returns a new n-dimensional tensor of string values
// with the given sizes per dimension (shape).
func NewString(sizes ...int) *String {
	tsr := &String{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewStringFromValues returns a new 1-dimensional tensor
// initialized directly from the given slice values, which are not copied.
func NewStringFromValues(vals ...string) *String {
	tsr := &String{}
	tsr.shape.SetShapeSizes(len(vals))
	tsr.Values = vals
	return tsr
}

// StringToFloat64 converts string value to float64 using strconv,
// returning 0 if any error
func StringToFloat64(str string) float64 {
	if fv, err := strconv.ParseFloat(str, 64); err == nil {
		return fv
	}
	return 0
}

// Float64ToString converts float64 to string value using strconv, g format
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *String) String() string { return Sprintf(tsr, "") }

func (tsr *String) IsString() bool { return true }

///////  Strings

func (tsr *String) StringValue(i ...int) string { return tsr.Value(i...) }

func (tsr *String) SetString(val string, i ...int) { tsr.Set(val, i...) }

func (tsr *String) String1D(i int) string { return tsr.Values[i] }

func (tsr *String) SetString1D(val string, i int) { tsr.Values[i] = val }

// SetAll sets every value in the tensor to val.
func (tsr *String) SetAll(val string) {
	for i := range tsr.Values {
		tsr.Values[i] = val
	}
}

///////  Floats

func (tsr *String) Float(i ...int) float64 {
	return StringToFloat64(tsr.Value(i...))
}

func (tsr *String) SetFloat(val float64, i ...int) {
	tsr.Set(Float64ToString(val), i...)
}

func (tsr *String) Float1D(i int) float64 {
	return StringToFloat64(tsr.Values[i])
}

func (tsr *String) SetFloat1D(val float64, i int) {
	tsr.Values[i] = Float64ToString(val)
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *String) Clone() Tensor {
	cp := &String{}
	cp.shape.CopyFrom(&tsr.shape)
	cp.Values = slices.Clone(tsr.Values)
	return cp
}

// CopyCellsFrom copies n values from the given source tensor,
// starting at the given 1D flat offset in the source,
// into this tensor starting at the to offset.
func (tsr *String) CopyCellsFrom(from Tensor, to, start, n int) {
	if fsm, ok := from.(*String); ok {
		copy(tsr.Values[to:to+n], fsm.Values[start:start+n])
		return
	}
	for i := range n {
		tsr.Values[to+i] = from.String1D(start + i)
	}
}

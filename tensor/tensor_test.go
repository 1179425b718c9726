// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorString(t *testing.T) {
	tsr := New[string](4)
	assert.Equal(t, 4, tsr.Len())
	assert.Equal(t, true, tsr.IsString())
	assert.Equal(t, reflect.String, tsr.DataType())

	tsr.SetString("test", 2)
	assert.Equal(t, "test", tsr.StringValue(2))
	tsr.SetString1D("testing", 3)
	assert.Equal(t, "testing", tsr.String1D(3))
	assert.Equal(t, "", tsr.String1D(0))

	cln := tsr.Clone()
	assert.Equal(t, "testing", cln.String1D(3))
	cln.SetZeros()
	assert.Equal(t, "", cln.String1D(3))
	assert.Equal(t, "testing", tsr.String1D(3))

	tsr.SetNumRows(6)
	assert.Equal(t, 6, tsr.Len())
	assert.Equal(t, "testing", tsr.String1D(3))
	assert.Equal(t, "", tsr.String1D(5))

	tsr.SetFloat1D(3.14, 0)
	assert.Equal(t, 3.14, tsr.Float1D(0))
	assert.Equal(t, "3.14", tsr.String1D(0))

	st := NewString(3)
	st.SetAll("ref_dorm")
	assert.Equal(t, []string{"ref_dorm", "ref_dorm", "ref_dorm"}, st.Values)
}

func TestTensorFloat64(t *testing.T) {
	tsr := New[float64](4, 2)
	tsr.Shape().SetNames("Row", "Vals")
	assert.Equal(t, 8, tsr.Len())
	assert.Equal(t, false, tsr.IsString())
	assert.Equal(t, reflect.Float64, tsr.DataType())
	r, c := tsr.RowCellSize()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)

	tsr.SetFloat(3.14, 2, 0)
	assert.Equal(t, 3.14, tsr.Float(2, 0))
	tsr.SetFloat1D(2.17, 5)
	assert.Equal(t, 2.17, tsr.Float(2, 1))
	assert.Equal(t, "2.17", tsr.StringValue(2, 1))

	tsr.SetString("1.5", 0, 1)
	assert.Equal(t, 1.5, tsr.Float1D(1))
	tsr.SetString("not a number", 0, 1)
	assert.Equal(t, 1.5, tsr.Float1D(1))

	cln := tsr.Clone()
	cln.SetZeros()
	assert.Equal(t, 0.0, cln.Float(2, 1))
	assert.Equal(t, 2.17, tsr.Float(2, 1))

	tsr.SetNumRows(5)
	assert.Equal(t, 10, tsr.Len())
	assert.Equal(t, 2.17, tsr.Float(2, 1))
	assert.Equal(t, []string{"Row", "Vals"}, tsr.Shape().Names)
}

func TestNumberRows(t *testing.T) {
	mat := NewFloat64(2, 3)
	mat.SetAdd(1, 0, 2)
	mat.SetAdd(1, 0, 2)
	mat.SetSub(1, 1, 0)
	assert.Equal(t, []float64{0, 0, 2}, mat.Row(0))
	assert.Equal(t, [][]float64{{0, 0, 2}, {-1, 0, 0}}, mat.Rows2D())

	row := mat.Row(1)
	row[1] = 5
	assert.Equal(t, 5.0, mat.Float(1, 1))
	assert.Equal(t, []float64{0, 0, 2, -1, 5, 0}, mat.Floats())

	assert.Equal(t, "[2, 3]\n[0]:\t0\t0\t2\n[1]:\t-1\t5\t0\n", mat.String())

	empty := NewFloat64(2, 0)
	assert.Equal(t, 0, empty.Len())
	erows := empty.Rows2D()
	assert.Len(t, erows, 2)
	assert.Empty(t, erows[0])
}

func TestCopyCells(t *testing.T) {
	src := NewFloat64FromValues(1, 2, 3, 4)
	dst := NewFloat64(4)
	dst.CopyCellsFrom(src, 1, 2, 2)
	assert.Equal(t, []float64{0, 3, 4, 0}, dst.Values)

	sdst := NewString(2)
	sdst.CopyCellsFrom(src, 0, 0, 2)
	assert.Equal(t, []string{"1", "2"}, sdst.Values)

	isrc := NewStringFromValues("5", "x")
	idst := NewInt(2)
	idst.CopyCellsFrom(isrc, 0, 0, 2)
	assert.Equal(t, []int{5, 0}, idst.Values)
}

func TestShape(t *testing.T) {
	sh := NewShape(3, 4)
	assert.Equal(t, 12, sh.Len())
	assert.Equal(t, []int{4, 1}, sh.Strides)
	assert.Equal(t, 7, sh.IndexTo1D(1, 3))
	assert.NoError(t, sh.IndexIsValid(2, 3))
	assert.Error(t, sh.IndexIsValid(3, 0))
	assert.Error(t, sh.IndexIsValid(1))
	assert.True(t, sh.IsEqual(NewShape(3, 4)))
	assert.Equal(t, "[3, 4]", sh.String())

	var cp Shape
	cp.CopyFrom(sh)
	cp.Sizes[0] = 9
	assert.Equal(t, 3, sh.DimSize(0))

	_, err := NewOfType(reflect.Bool, 2)
	assert.Error(t, err)
	ft, err := NewOfType(reflect.Float32, 2)
	require.NoError(t, err)
	assert.Equal(t, reflect.Float64, ft.DataType())
}

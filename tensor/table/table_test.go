// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/ihmeuw-msca/crosswalk/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	dt := NewTable("test")
	require.NoError(t, dt.AddColumn("alt_dorm", tensor.NewStringFromValues("A", "B,C", "A")))
	require.NoError(t, dt.AddColumn("obs", tensor.NewFloat64FromValues(0.5, 1.5, 2.5)))
	return dt
}

func TestAddColumn(t *testing.T) {
	dt := newTestTable(t)
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, 2, dt.NumColumns())
	assert.Equal(t, []string{"alt_dorm", "obs"}, dt.ColumnNames())
	assert.True(t, dt.HasColumn("obs"))
	assert.False(t, dt.HasColumn("ref_dorm"))
	assert.Nil(t, dt.Column("ref_dorm"))
	_, err := dt.ColumnTry("ref_dorm")
	assert.Error(t, err)

	assert.Error(t, dt.AddColumn("obs", tensor.NewFloat64(3)))
	assert.Error(t, dt.AddColumn("nil", nil))

	// new columns are sized to the table
	st := dt.AddStringColumn("ref_dorm")
	require.NotNil(t, st)
	assert.Equal(t, 3, st.Len())
	assert.Nil(t, dt.AddStringColumn("ref_dorm"))
	fl := dt.AddFloat64Column("obs_se")
	require.NotNil(t, fl)
	assert.Equal(t, 3, fl.Len())
	assert.Nil(t, dt.AddFloat64Column("obs_se"))

	require.NoError(t, dt.AddColumn("short", tensor.NewFloat64FromValues(1)))
	assert.Equal(t, 3, dt.Column("short").Len())

	assert.Equal(t, "B,C", dt.StringValue("alt_dorm", 1))
	assert.Equal(t, 2.5, dt.FloatValue("obs", 2))
	assert.Equal(t, "", dt.StringValue("none", 0))
	assert.Equal(t, 0.0, dt.FloatValue("none", 0))

	assert.NoError(t, dt.IsValidRow(2))
	assert.Error(t, dt.IsValidRow(3))

	assert.True(t, dt.DeleteColumnName("short"))
	assert.False(t, dt.DeleteColumnName("short"))
}

func TestSetNumRows(t *testing.T) {
	dt := newTestTable(t)
	dt.AddRows(2)
	assert.Equal(t, 5, dt.NumRows())
	assert.Equal(t, 5, dt.Column("alt_dorm").Len())
	assert.Equal(t, "", dt.StringValue("alt_dorm", 4))

	dt.Filter(func(dt *Table, row int) bool { return row != 1 })
	assert.Equal(t, 4, dt.NumRows())
	dt.SetNumRows(6)
	assert.Equal(t, []int{0, 2, 3, 4, 5}, dt.Indexes)
	dt.SetNumRows(3)
	assert.Equal(t, []int{0, 2}, dt.Indexes)

	dt.DeleteAll()
	assert.Equal(t, 0, dt.NumRows())
	assert.Equal(t, 0, dt.NumColumns())
}

func TestFilterAndNew(t *testing.T) {
	dt := newTestTable(t)
	view := NewView(dt)
	view.Filter(func(dt *Table, row int) bool {
		return dt.Column("alt_dorm").String1D(row) == "A"
	})
	assert.Equal(t, 2, view.NumRows())
	assert.Equal(t, 3, dt.NumRows())

	vals, err := view.ColumnStrings("alt_dorm")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, vals)
	obs, err := view.ColumnFloats("obs")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 2.5}, obs)

	nt := view.New()
	assert.Nil(t, nt.Indexes)
	assert.Equal(t, 2, nt.NumRows())
	assert.Equal(t, []string{"A", "A"}, nt.Column("alt_dorm").(*tensor.String).Values)
	assert.Equal(t, []float64{0.5, 2.5}, nt.Column("obs").(*tensor.Float64).Values)

	view.Sequential()
	assert.Equal(t, 3, view.NumRows())

	empty := NewView(dt)
	empty.Filter(func(dt *Table, row int) bool { return false })
	assert.Equal(t, 0, empty.New().NumRows())

	_, err = dt.ColumnStrings("missing")
	assert.Error(t, err)
	require.NoError(t, dt.AddColumn("cells", tensor.NewFloat64(3, 2)))
	_, err = dt.ColumnFloats("cells")
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	dt := newTestTable(t)
	dt.Filter(func(dt *Table, row int) bool { return row > 0 })
	cp := dt.Clone()
	cp.Column("alt_dorm").SetString1D("Z", 1)
	assert.Equal(t, "B,C", dt.StringValue("alt_dorm", 0))
	assert.Equal(t, "Z", cp.StringValue("alt_dorm", 0))
	assert.Equal(t, dt.Indexes, cp.Indexes)

	dt.Indexes[0] = 2
	assert.Equal(t, 1, cp.Indexes[0])
}

type sliceRow struct {
	Ref    string  `table:"ref_dorm"`
	Alt    string  `table:"alt_dorm"`
	Obs    float64 `table:"obs"`
	N      int
	Hidden string `table:"-"`
	skip   string
}

func TestSliceTable(t *testing.T) {
	rows := []sliceRow{
		{Ref: "A", Alt: "B", Obs: 0.1, N: 3},
		{Ref: "B", Alt: "A,C", Obs: 0.2, N: 4},
	}
	dt, err := NewSliceTable(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{"ref_dorm", "alt_dorm", "obs", "N"}, dt.ColumnNames())
	assert.Equal(t, 2, dt.NumRows())
	assert.Equal(t, "A,C", dt.StringValue("alt_dorm", 1))
	assert.Equal(t, 0.2, dt.FloatValue("obs", 1))
	assert.Equal(t, 4.0, dt.FloatValue("N", 1))

	ptrs := []*sliceRow{&rows[0]}
	dt, err = NewSliceTable(&ptrs)
	require.NoError(t, err)
	assert.Equal(t, 1, dt.NumRows())
	assert.Equal(t, "B", dt.StringValue("alt_dorm", 0))

	_, err = NewSliceTable(rows[0])
	assert.Error(t, err)
	_, err = NewSliceTable([]int{1})
	assert.Error(t, err)
}

// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"strings"
	"testing"

	"github.com/ihmeuw-msca/crosswalk/tensor"
	"github.com/ihmeuw-msca/crosswalk/tensor/table"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studyCSV = `obs,study_id,age
0.1,s1,30
0.2,s1,40
0.3,s2,50
`

func readTable(t *testing.T, csv string) *table.Table {
	t.Helper()
	dt := table.NewTable()
	require.NoError(t, dt.ReadCSV(strings.NewReader(csv), table.Comma))
	return dt
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "obs", cfg.Obs)
	assert.Equal(t, "obs_se", cfg.ObsSE)
	assert.Equal(t, "study_id", cfg.StudyID)
	assert.Nil(t, cfg.Covs)
}

func TestNewData(t *testing.T) {
	d, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"obs", "obs_se", "study_id", "intercept"}, d.ColumnNames())
	assert.True(t, d.IsEmpty())
	assert.ErrorIs(t, d.AssertNotEmpty(), ErrEmptyData)
	_, err = d.Obs()
	assert.ErrorIs(t, err, ErrEmptyData)
	_, err = d.CovMat()
	assert.ErrorIs(t, err, ErrEmptyData)
	assert.Equal(t, 0, d.NumStudies())

	_, err = New(Config{Obs: "y", ObsSE: "y"})
	assert.ErrorIs(t, err, ErrDuplicateColumn)
	_, err = New(Config{Covs: []string{"age", "age"}})
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestDataAddColumn(t *testing.T) {
	d, err := New(Config{Covs: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"obs", "obs_se", "study_id"}, d.ColumnNames())
	assert.ErrorIs(t, d.AddColumn(NewStringColumn("obs", "")), ErrDuplicateColumn)
	assert.Error(t, d.AddColumn(nil))
	require.NoError(t, d.AddColumn(NewStringColumn("region", "global")))
	col, ok := d.Column("region")
	require.True(t, ok)
	assert.Equal(t, "region", col.Name())
	_, ok = d.Column("missing")
	assert.False(t, ok)
}

func TestDataSetTable(t *testing.T) {
	d, err := New(Config{Covs: []string{"intercept", "age"}})
	require.NoError(t, err)
	d.SetLogger(slogt.New(t))
	assert.ErrorIs(t, d.SetTable(nil), ErrNoTable)

	dt := readTable(t, studyCSV)
	require.NoError(t, d.SetTable(dt))
	assert.Same(t, dt, d.Table())
	assert.Equal(t, []string{"obs_se", "intercept"}, d.Defaulted())
	assert.Equal(t, 3, d.NumRows())

	obs, err := d.Obs()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, obs)
	se, err := d.ObsSE()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, se)

	st, err := d.Studies()
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, st)
	sizes, err := d.StudySizes()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"s1": 2, "s2": 1}, sizes)
	assert.Equal(t, 2, d.NumStudies())

	mat, err := d.CovMat()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, mat.Shape().Sizes)
	assert.Equal(t, [][]float64{{1, 30}, {1, 40}, {1, 50}}, mat.Rows2D())

	mat, err = d.CovMat("age")
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 40, 50}, mat.Values)
	_, err = d.CovMat("weight")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	_, err = d.CovMat("study_id")
	assert.ErrorIs(t, err, ErrColumnType)

	// rebinding a complete table fills nothing
	require.NoError(t, d.SetTable(dt))
	assert.Empty(t, d.Defaulted())
}

func TestDataSetTableDefaults(t *testing.T) {
	d, err := New(DefaultConfig())
	require.NoError(t, err)
	dt := table.NewTable()
	require.NoError(t, dt.AddColumn("x", tensor.NewFloat64(2)))
	require.NoError(t, d.SetTable(dt))
	assert.Equal(t, []string{"obs", "obs_se", "study_id", "intercept"}, d.Defaulted())

	ids, err := d.StudyIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"Unknown", "Unknown"}, ids)
	obs, err := d.Obs()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, obs)

	bad := table.NewTable()
	require.NoError(t, bad.AddColumn("obs", tensor.NewStringFromValues("a")))
	assert.ErrorIs(t, d.SetTable(bad), ErrColumnType)
}

func TestDataSetTableKeepsBound(t *testing.T) {
	d, err := New(DefaultConfig())
	require.NoError(t, err)
	dt := table.NewTable()
	require.NoError(t, dt.AddColumn("obs", tensor.NewFloat64FromValues(1, 2)))
	require.NoError(t, d.SetTable(dt))

	bad := table.NewTable()
	require.NoError(t, bad.AddColumn("obs", tensor.NewFloat64FromValues(3, 4, 5)))
	require.NoError(t, bad.AddColumn("intercept", tensor.NewStringFromValues("a", "b", "c")))
	assert.ErrorIs(t, d.SetTable(bad), ErrColumnType)

	// the failed table is untouched and the old one stays bound
	assert.Equal(t, []string{"obs", "intercept"}, bad.ColumnNames())
	assert.Same(t, dt, d.Table())
	assert.Equal(t, 2, d.NumRows())
	obs, err := d.Obs()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, obs)
	ids, err := d.StudyIDs()
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Equal(t, []string{"obs_se", "study_id", "intercept"}, d.Defaulted())
}

func TestDataFilter(t *testing.T) {
	d, err := New(Config{})
	require.NoError(t, err)
	_, err = d.Filter(func(dt *table.Table, row int) bool { return true })
	assert.ErrorIs(t, err, ErrNoTable)

	require.NoError(t, d.SetTable(readTable(t, studyCSV)))
	ft, err := d.Filter(func(dt *table.Table, row int) bool {
		return dt.Column("study_id").String1D(row) == "s1"
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ft.NumRows())
	assert.Equal(t, 3, d.NumRows())

	require.NoError(t, d.SetTable(ft))
	assert.Equal(t, 1, d.NumStudies())
}

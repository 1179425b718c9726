// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"reflect"
	"testing"

	"github.com/ihmeuw-msca/crosswalk/tensor"
	"github.com/ihmeuw-msca/crosswalk/tensor/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeparator(t *testing.T) {
	for in, want := range map[string]Separator{
		"": NoSeparator, "none": NoSeparator,
		",": Comma, "comma": Comma,
		"|": Pipe, "pipe": Pipe,
		";": Semicolon, "semicolon": Semicolon,
		"+": Plus, "plus": Plus,
	} {
		sep, err := ParseSeparator(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, sep, in)
	}
	for _, in := range []string{" ", "/", ",,", "tab"} {
		_, err := ParseSeparator(in)
		assert.ErrorIs(t, err, ErrInvalidSeparator, in)
	}
}

func TestSeparatorSplit(t *testing.T) {
	assert.Equal(t, []string{"A,B"}, NoSeparator.Split("A,B"))
	assert.Equal(t, []string{"A", "B"}, Comma.Split("A,B"))
	assert.Equal(t, []string{"A", " B"}, Comma.Split("A, B"))
	assert.Equal(t, []string{"A", "", "B"}, Pipe.Split("A||B"))
	assert.Equal(t, []string{""}, Plus.Split(""))
}

func TestNewCategoryColumn(t *testing.T) {
	ref, err := NewRefCategoryColumn("", NoSeparator)
	require.NoError(t, err)
	assert.Equal(t, "ref_dorm", ref.Name())
	assert.Equal(t, Reference, ref.Role)
	assert.Equal(t, reflect.String, ref.Kind())

	alt, err := NewAltCategoryColumn("", Comma)
	require.NoError(t, err)
	assert.Equal(t, "alt_dorm", alt.Name())
	assert.Equal(t, Alternative, alt.Role)
	assert.Equal(t, "Alternative", alt.Role.String())

	named, err := NewAltCategoryColumn("treatment", Pipe)
	require.NoError(t, err)
	assert.Equal(t, "treatment", named.Name())

	_, err = NewRefCategoryColumn("", Separator("/"))
	assert.ErrorIs(t, err, ErrInvalidSeparator)
}

func TestCategoryColumnEmpty(t *testing.T) {
	cc, err := NewAltCategoryColumn("", Comma)
	require.NoError(t, err)
	_, err = cc.Values()
	assert.ErrorIs(t, err, ErrEmptyData)

	dt := table.NewTable()
	require.NoError(t, dt.AddColumn("alt_dorm", tensor.NewString(0)))
	cc.Attach(dt)
	_, err = cc.UniqueValues()
	assert.ErrorIs(t, err, ErrEmptyData)
	_, err = cc.ValueCounts()
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestCategoryColumnValues(t *testing.T) {
	dt := table.NewTable()
	require.NoError(t, dt.AddColumn("alt_dorm", tensor.NewStringFromValues("B,A", "C", "A,A", "")))
	cc, err := NewAltCategoryColumn("", Comma)
	require.NoError(t, err)
	def, err := cc.MaterializeDefaults(dt)
	require.NoError(t, err)
	assert.False(t, def)
	cc.Attach(dt)

	vals, err := cc.Values()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B", "A"}, {"C"}, {"A", "A"}, {""}}, vals)

	uv, err := cc.UniqueValues()
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A", "B", "C"}, uv)

	counts, err := cc.ValueCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 3, "B": 1, "C": 1, "": 1}, counts)

	ntok := 0
	for _, row := range vals {
		ntok += len(row)
	}
	total := 0
	for lb, n := range counts {
		assert.Contains(t, uv, lb)
		total += n
	}
	assert.Equal(t, ntok, total)
	assert.LessOrEqual(t, len(uv), ntok)

	whole, err := NewAltCategoryColumn("", NoSeparator)
	require.NoError(t, err)
	whole.Attach(dt)
	uv, err = whole.UniqueValues()
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A,A", "B,A", "C"}, uv)
}

func TestCategoryColumnDefaults(t *testing.T) {
	dt := table.NewTable()
	require.NoError(t, dt.AddColumn("alt_dorm", tensor.NewStringFromValues("A", "B")))
	cc, err := NewRefCategoryColumn("", NoSeparator)
	require.NoError(t, err)

	def, err := cc.MaterializeDefaults(dt)
	require.NoError(t, err)
	assert.True(t, def)
	cc.Attach(dt)
	vals, err := dt.ColumnStrings("ref_dorm")
	require.NoError(t, err)
	assert.Equal(t, []string{"ref_dorm", "ref_dorm"}, vals)

	def, err = cc.MaterializeDefaults(dt)
	require.NoError(t, err)
	assert.False(t, def)
}

func TestCategoryColumnNumeric(t *testing.T) {
	dt := table.NewTable()
	require.NoError(t, dt.AddColumn("ref_dorm", tensor.NewFloat64FromValues(1, 2.5, 1)))
	cc, err := NewRefCategoryColumn("", NoSeparator)
	require.NoError(t, err)
	def, err := cc.MaterializeDefaults(dt)
	require.NoError(t, err)
	assert.False(t, def)
	assert.True(t, dt.Column("ref_dorm").IsString())

	cc.Attach(dt)
	uv, err := cc.UniqueValues()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2.5"}, uv)
}

func TestFloatStringColumns(t *testing.T) {
	dt := table.NewTable()
	require.NoError(t, dt.AddColumn("study_id", tensor.NewStringFromValues("s1", "s2")))

	fc := NewFloatColumn("obs_se", 1)
	def, err := fc.MaterializeDefaults(dt)
	require.NoError(t, err)
	assert.True(t, def)
	fc.Attach(dt)
	vals, err := fc.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, vals)

	bad := NewFloatColumn("study_id", 0)
	_, err = bad.MaterializeDefaults(dt)
	assert.ErrorIs(t, err, ErrColumnType)

	sc := NewStringColumn("obs_se", "x")
	def, err = sc.MaterializeDefaults(dt)
	require.NoError(t, err)
	assert.False(t, def)
	sc.Attach(dt)
	svals, err := sc.Values()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1"}, svals)
}

// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"reflect"

	"github.com/ihmeuw-msca/crosswalk/tensor"
	"github.com/ihmeuw-msca/crosswalk/tensor/table"
)

// Column is a named column of a [Data] container. Each variant knows
// the value type it stores in the table and how to fill the column
// when the bound table does not provide it.
type Column interface {

	// Name is the column name, which is also the table column key.
	Name() string

	// Kind is the value type of the table column:
	// reflect.String or reflect.Float64.
	Kind() reflect.Kind

	// Check returns an error if dt has the column with a type it cannot
	// read. It does not modify dt.
	Check(dt *table.Table) error

	// MaterializeDefaults adds the column to dt, filled with its default
	// value, if dt does not already have it. It returns true if defaults
	// were filled in.
	MaterializeDefaults(dt *table.Table) (bool, error)

	// Attach binds the column to the table it reads from.
	Attach(dt *table.Table)
}

// columnBase has the name and bound table shared by all column variants.
type columnBase struct {
	name string
	dt   *table.Table
}

// Name returns the column name.
func (cb *columnBase) Name() string { return cb.name }

// Attach binds the column to the table it reads from.
func (cb *columnBase) Attach(dt *table.Table) { cb.dt = dt }

// Table returns the bound table, which may be nil.
func (cb *columnBase) Table() *table.Table { return cb.dt }

func (cb *columnBase) assertNotEmpty() error {
	if cb.dt == nil || cb.dt.NumRows() == 0 {
		return fmt.Errorf("column %q: %w", cb.name, ErrEmptyData)
	}
	return nil
}

// FloatColumn is a numeric column with a default fill value.
type FloatColumn struct {
	columnBase

	// Default is the value of every row when the table lacks the column.
	Default float64
}

// NewFloatColumn returns a new [FloatColumn].
func NewFloatColumn(name string, def float64) *FloatColumn {
	return &FloatColumn{columnBase: columnBase{name: name}, Default: def}
}

func (fc *FloatColumn) Kind() reflect.Kind { return reflect.Float64 }

// Check returns an [ErrColumnType] error if dt has a string column of
// the same name.
func (fc *FloatColumn) Check(dt *table.Table) error {
	if cl := dt.Column(fc.name); cl != nil && cl.IsString() {
		return fmt.Errorf("column %q is a string column: %w", fc.name, ErrColumnType)
	}
	return nil
}

// MaterializeDefaults adds a float64 column filled with Default if dt
// lacks the column. An existing string column is an [ErrColumnType] error.
func (fc *FloatColumn) MaterializeDefaults(dt *table.Table) (bool, error) {
	if err := fc.Check(dt); err != nil {
		return false, err
	}
	if dt.HasColumn(fc.name) {
		return false, nil
	}
	tsr := tensor.NewFloat64(dt.Columns.Rows)
	for i := range tsr.Values {
		tsr.Values[i] = fc.Default
	}
	return true, dt.AddColumn(fc.name, tsr)
}

// Values returns the column values for every row of the bound table.
func (fc *FloatColumn) Values() ([]float64, error) {
	if err := fc.assertNotEmpty(); err != nil {
		return nil, err
	}
	return fc.dt.ColumnFloats(fc.name)
}

// StringColumn is a string column with a default fill value.
// Numeric table columns are read through their string form.
type StringColumn struct {
	columnBase

	// Default is the value of every row when the table lacks the column.
	Default string
}

// NewStringColumn returns a new [StringColumn].
func NewStringColumn(name string, def string) *StringColumn {
	return &StringColumn{columnBase: columnBase{name: name}, Default: def}
}

func (sc *StringColumn) Kind() reflect.Kind { return reflect.String }

// Check accepts any column type.
func (sc *StringColumn) Check(dt *table.Table) error { return nil }

// MaterializeDefaults adds a string column filled with Default if dt
// lacks the column.
func (sc *StringColumn) MaterializeDefaults(dt *table.Table) (bool, error) {
	return materializeString(dt, sc.name, sc.Default)
}

// Values returns the column values for every row of the bound table.
func (sc *StringColumn) Values() ([]string, error) {
	if err := sc.assertNotEmpty(); err != nil {
		return nil, err
	}
	return sc.dt.ColumnStrings(sc.name)
}

// materializeString adds a string column filled with def if dt lacks it.
func materializeString(dt *table.Table, name, def string) (bool, error) {
	if dt.HasColumn(name) {
		return false, nil
	}
	tsr := tensor.NewString(dt.Columns.Rows)
	tsr.SetAll(def)
	return true, dt.AddColumn(name, tsr)
}

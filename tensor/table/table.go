// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/ihmeuw-msca/crosswalk/tensor"
)

// Table is a table of Tensor columns aligned by a common outermost row dimension.
// Use the [Table.Column] (by name) and [Table.ColumnByIndex] methods to obtain
// the raw column tensor. [Table.Indexes] provide a filtered or reordered view
// of the rows, shared by all columns; the row accessors [Table.StringValue],
// [Table.FloatValue], [Table.ColumnStrings] and [Table.ColumnFloats]
// indirect through them.
type Table struct {

	// Columns has the list of column tensor data for this table.
	// Different tables can provide different indexed views onto the same Columns.
	Columns *Columns

	// Indexes are the indexes into Tensor rows, with nil = sequential.
	// Only set if order is different from default sequential order.
	Indexes []int

	// Name is an optional name for the table.
	Name string

	// Precision is the number of significant digits used when writing
	// floats to CSV; 0 means the shortest exact representation.
	Precision int
}

// NewTable returns a new Table with its own (empty) set of Columns.
// Can pass an optional name.
func NewTable(name ...string) *Table {
	dt := &Table{Columns: NewColumns()}
	if len(name) > 0 {
		dt.Name = name[0]
	}
	return dt
}

// NewView returns a new Table with its own indexed view into the
// same underlying set of Column tensor data as the source table.
// The current source Indexes are copied.
func NewView(src *Table) *Table {
	dt := &Table{Columns: src.Columns, Name: src.Name, Precision: src.Precision}
	if src.Indexes != nil {
		dt.Indexes = slices.Clone(src.Indexes)
	}
	return dt
}

// IsValidRow returns error if the row is invalid, if error checking is needed.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.NumRows() {
		return fmt.Errorf("table.Table IsValidRow: row %d is out of valid range [0..%d]", row, dt.NumRows())
	}
	return nil
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the tensor with given column name, or nil if not found.
// The tensor is the raw column data; it does not apply [Table.Indexes].
func (dt *Table) Column(name string) tensor.Tensor {
	return dt.Columns.At(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (tensor.Tensor, error) {
	if cl, ok := dt.Columns.AtTry(name); ok {
		return cl, nil
	}
	return nil, fmt.Errorf("table.Table: Column named %q not found", name)
}

// HasColumn returns true if the table has a column with the given name.
func (dt *Table) HasColumn(name string) bool {
	return dt.Columns.IndexByKey(name) >= 0
}

// ColumnByIndex returns the tensor at the given column index.
func (dt *Table) ColumnByIndex(idx int) tensor.Tensor {
	return dt.Columns.Values[idx]
}

// ColumnName returns the name of given column.
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// ColumnNames returns a copy of the column names, in order.
func (dt *Table) ColumnNames() []string {
	return slices.Clone(dt.Columns.Keys)
}

// AddColumn adds the given tensor as a column to the table,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the shape to fit the current number of rows,
// unless this is the first column, which sets the number of rows.
func (dt *Table) AddColumn(name string, tsr tensor.Tensor) error {
	if err := dt.Columns.AddColumn(name, tsr); err != nil {
		return err
	}
	dt.ValidIndexes()
	return nil
}

// AddStringColumn adds a new String column with given name,
// sized to the current number of rows. An error adding the column
// (e.g., duplicate name) is logged and nil is returned.
func (dt *Table) AddStringColumn(name string) *tensor.String {
	tsr := tensor.NewString(dt.Columns.Rows)
	if errors.Log(dt.AddColumn(name, tsr)) != nil {
		return nil
	}
	return tsr
}

// AddFloat64Column adds a new float64 column with given name,
// sized to the current number of rows. An error adding the column
// (e.g., duplicate name) is logged and nil is returned.
func (dt *Table) AddFloat64Column(name string) *tensor.Float64 {
	tsr := tensor.NewFloat64(dt.Columns.Rows)
	if errors.Log(dt.AddColumn(name, tsr)) != nil {
		return nil
	}
	return tsr
}

// DeleteColumnName deletes column of given name.
// returns false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteByKey(name)
}

// DeleteAll deletes all columns, does full reset.
func (dt *Table) DeleteAll() {
	dt.Columns.Reset()
	dt.Columns.Rows = 0
	dt.Indexes = nil
}

// AddRows adds n rows to end of underlying Table, and to the indexes in this view.
func (dt *Table) AddRows(n int) *Table {
	return dt.SetNumRows(dt.Columns.Rows + n)
}

// SetNumRows sets the number of rows in the table, across all columns.
// Any Indexes view is extended with the new rows, or pruned of
// rows that no longer exist.
func (dt *Table) SetNumRows(rows int) *Table {
	strow := dt.Columns.Rows
	dt.Columns.SetNumRows(rows)
	if dt.Indexes == nil {
		return dt
	}
	if rows > strow {
		for i := range rows - strow {
			dt.Indexes = append(dt.Indexes, strow+i)
		}
	} else {
		dt.ValidIndexes()
	}
	return dt
}

// Clone returns a complete copy of this table, including cloning
// the underlying Columns tensors, and the current [Table.Indexes].
// See also [Table.New] to flatten the current indexes.
func (dt *Table) Clone() *Table {
	cp := &Table{Name: dt.Name, Precision: dt.Precision}
	cp.Columns = dt.Columns.Clone()
	if dt.Indexes != nil {
		cp.Indexes = slices.Clone(dt.Indexes)
	}
	return cp
}

// StringValue returns the string value of the named column at the
// given row of this view, or "" if the column does not exist.
func (dt *Table) StringValue(name string, row int) string {
	cl := dt.Column(name)
	if cl == nil {
		return ""
	}
	return cl.String1D(dt.RowIndex(row))
}

// FloatValue returns the float64 value of the named column at the
// given row of this view, or 0 if the column does not exist.
func (dt *Table) FloatValue(name string, row int) float64 {
	cl := dt.Column(name)
	if cl == nil {
		return 0
	}
	return cl.Float1D(dt.RowIndex(row))
}

// ColumnStrings returns the values of the named scalar column
// for every row of this view, as strings.
func (dt *Table) ColumnStrings(name string) ([]string, error) {
	cl, err := dt.scalarColumn(name)
	if err != nil {
		return nil, err
	}
	n := dt.NumRows()
	vals := make([]string, n)
	for i := range n {
		vals[i] = cl.String1D(dt.RowIndex(i))
	}
	return vals, nil
}

// ColumnFloats returns the values of the named scalar column
// for every row of this view, as float64.
func (dt *Table) ColumnFloats(name string) ([]float64, error) {
	cl, err := dt.scalarColumn(name)
	if err != nil {
		return nil, err
	}
	n := dt.NumRows()
	vals := make([]float64, n)
	for i := range n {
		vals[i] = cl.Float1D(dt.RowIndex(i))
	}
	return vals, nil
}

func (dt *Table) scalarColumn(name string) (tensor.Tensor, error) {
	cl, err := dt.ColumnTry(name)
	if err != nil {
		return nil, err
	}
	if _, cells := cl.RowCellSize(); cells != 1 {
		return nil, fmt.Errorf("table.Table: Column %q has %d cells per row, not a scalar column", name, cells)
	}
	return cl, nil
}

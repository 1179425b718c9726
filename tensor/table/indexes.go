// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "slices"

// RowIndex returns the actual index into underlying tensor row based on given
// index value.  If Indexes == nil, index is passed through.
func (dt *Table) RowIndex(idx int) int {
	if dt.Indexes == nil {
		return idx
	}
	return dt.Indexes[idx]
}

// NumRows returns the number of rows, which is the number of Indexes if present,
// else actual number of [Columns.Rows].
func (dt *Table) NumRows() int {
	if dt.Indexes == nil {
		return dt.Columns.Rows
	}
	return len(dt.Indexes)
}

// Sequential sets Indexes to nil, resulting in sequential row-wise access into tensor.
func (dt *Table) Sequential() {
	dt.Indexes = nil
}

// IndexesNeeded is called prior to an operation that needs actual indexes,
// e.g., Filter.  If Indexes == nil, they are set to all rows, otherwise
// current indexes are left as is. Use Sequential, then IndexesNeeded to ensure
// all rows are represented.
func (dt *Table) IndexesNeeded() {
	if dt.Indexes != nil {
		return
	}
	dt.Indexes = make([]int, dt.Columns.Rows)
	for i := range dt.Indexes {
		dt.Indexes[i] = i
	}
}

// ValidIndexes deletes all invalid indexes from the list.
// Call this if rows (could) have been deleted from table.
func (dt *Table) ValidIndexes() {
	if dt.Indexes == nil {
		return
	}
	dt.Indexes = slices.DeleteFunc(dt.Indexes, func(i int) bool {
		return i >= dt.Columns.Rows
	})
}

// Filter filters the indexes into our Table using given Filter function.
// The Filter function operates directly on row numbers into the Table
// as these row numbers have already been projected through the indexes.
func (dt *Table) Filter(filterer func(dt *Table, row int) bool) {
	dt.IndexesNeeded()
	sz := len(dt.Indexes)
	for i := sz - 1; i >= 0; i-- { // always go in reverse for filtering
		if !filterer(dt, dt.Indexes[i]) { // delete
			dt.Indexes = append(dt.Indexes[:i], dt.Indexes[i+1:]...)
		}
	}
}

// New returns a new table with column data organized according to
// the indexes.  If Indexes are nil, a clone of the current table is returned
// but this function is only sensible if there is an indexed view in place.
func (dt *Table) New() *Table {
	if dt.Indexes == nil {
		return dt.Clone()
	}
	rows := len(dt.Indexes)
	nt := dt.Clone()
	nt.Indexes = nil
	nt.SetNumRows(rows)
	if rows == 0 {
		return nt
	}
	for ci, cl := range nt.Columns.Values {
		scl := dt.Columns.Values[ci]
		_, csz := cl.RowCellSize()
		for i, srw := range dt.Indexes {
			cl.CopyCellsFrom(scl, i*csz, srw*csz, csz)
		}
	}
	return nt
}

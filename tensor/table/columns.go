// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"github.com/ihmeuw-msca/crosswalk/base/keylist"
	"github.com/ihmeuw-msca/crosswalk/tensor"
)

// Columns is the underlying column list and number of rows for Table.
// Each column is a raw [tensor.Tensor] whose outermost dimension is the row.
// Column names are unique; registration order is the column order.
type Columns struct {
	keylist.List[string, tensor.Tensor]

	// number of rows, which is enforced to be the size of the
	// outermost row dimension of the column tensors.
	Rows int
}

// NewColumns returns a new Columns.
func NewColumns() *Columns {
	return &Columns{}
}

// SetNumRows sets the number of rows in the table, across all columns.
func (cl *Columns) SetNumRows(rows int) *Columns {
	cl.Rows = max(0, rows)
	for _, tsr := range cl.Values {
		tsr.SetNumRows(cl.Rows)
	}
	return cl
}

// AddColumn adds the given tensor as a column,
// returning an error and not adding if the name is not unique.
// If this is the first column, its row count becomes the table row count;
// otherwise the tensor is resized to the current number of rows.
func (cl *Columns) AddColumn(name string, tsr tensor.Tensor) error {
	if tsr == nil {
		return fmt.Errorf("table.AddColumn: column %q is nil", name)
	}
	if tsr.NumDims() == 0 {
		tsr.SetNumRows(cl.Rows)
	}
	if cl.Len() == 0 {
		cl.Rows = tsr.NumRows()
	} else if tsr.NumRows() != cl.Rows {
		tsr.SetNumRows(cl.Rows)
	}
	if err := cl.Add(name, tsr); err != nil {
		return fmt.Errorf("table.AddColumn: %w", err)
	}
	return nil
}

// Clone returns a complete copy of this set of columns,
// cloning each of the column tensors.
func (cl *Columns) Clone() *Columns {
	cp := NewColumns()
	cp.Rows = cl.Rows
	for i, nm := range cl.Keys {
		cp.Set(nm, cl.Values[i].Clone())
	}
	return cp
}

// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/ihmeuw-msca/crosswalk/tensor"
	"github.com/ihmeuw-msca/crosswalk/tensor/table"
)

// Separator joins multiple category labels within one cell.
type Separator string

const (
	// NoSeparator treats every cell as a single label.
	NoSeparator Separator = ""

	// Comma separates labels with ",".
	Comma Separator = ","

	// Pipe separates labels with "|".
	Pipe Separator = "|"

	// Semicolon separates labels with ";".
	Semicolon Separator = ";"

	// Plus separates labels with "+".
	Plus Separator = "+"
)

// ParseSeparator returns the [Separator] for s, or an
// [ErrInvalidSeparator] error if s is not a supported separator.
// The names "none", "comma", "pipe", "semicolon" and "plus" are
// accepted as well as the separator characters themselves.
func ParseSeparator(s string) (Separator, error) {
	switch s {
	case "", "none":
		return NoSeparator, nil
	case ",", "comma":
		return Comma, nil
	case "|", "pipe":
		return Pipe, nil
	case ";", "semicolon":
		return Semicolon, nil
	case "+", "plus":
		return Plus, nil
	}
	return NoSeparator, fmt.Errorf("%q: %w", s, ErrInvalidSeparator)
}

// Validate returns an [ErrInvalidSeparator] error for an unsupported separator.
func (s Separator) Validate() error {
	_, err := ParseSeparator(string(s))
	return err
}

// Split returns the labels in cell. With [NoSeparator] the whole cell
// is one label. Labels are not trimmed and empty labels are kept.
func (s Separator) Split(cell string) []string {
	if s == NoSeparator {
		return []string{cell}
	}
	return strings.Split(cell, string(s))
}

// Role marks which arm of a pairwise comparison a category column holds.
type Role int32

const (
	// Reference is the baseline arm.
	Reference Role = iota

	// Alternative is the comparison arm.
	Alternative
)

// DefaultName returns the default column name for the role.
func (r Role) DefaultName() string {
	if r == Alternative {
		return "alt_dorm"
	}
	return "ref_dorm"
}

func (r Role) String() string {
	switch r {
	case Reference:
		return "Reference"
	case Alternative:
		return "Alternative"
	}
	return fmt.Sprintf("Role(%d)", int32(r))
}

// CategoryColumn is a string column whose cells hold zero or more
// category ("dorm") labels joined by a [Separator]. When the bound
// table lacks the column, every row gets the column's own name as
// its single label.
type CategoryColumn struct {
	columnBase

	// Sep splits cells into labels.
	Sep Separator

	// Role is the comparison arm of the column.
	Role Role
}

// NewCategoryColumn returns a new [CategoryColumn] for the given role.
// An empty name selects [Role.DefaultName].
func NewCategoryColumn(role Role, name string, sep Separator) (*CategoryColumn, error) {
	if err := sep.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		name = role.DefaultName()
	}
	return &CategoryColumn{columnBase: columnBase{name: name}, Sep: sep, Role: role}, nil
}

// NewRefCategoryColumn returns a new reference [CategoryColumn],
// named "ref_dorm" when name is empty.
func NewRefCategoryColumn(name string, sep Separator) (*CategoryColumn, error) {
	return NewCategoryColumn(Reference, name, sep)
}

// NewAltCategoryColumn returns a new alternative [CategoryColumn],
// named "alt_dorm" when name is empty.
func NewAltCategoryColumn(name string, sep Separator) (*CategoryColumn, error) {
	return NewCategoryColumn(Alternative, name, sep)
}

func (cc *CategoryColumn) Kind() reflect.Kind { return reflect.String }

// Check accepts any column type. Numeric columns are converted by
// [CategoryColumn.MaterializeDefaults].
func (cc *CategoryColumn) Check(dt *table.Table) error { return nil }

// MaterializeDefaults adds a string column filled with the column name
// if dt lacks the column. A numeric column of the same name, as read from
// a CSV file with numeric labels, is converted in place to strings.
func (cc *CategoryColumn) MaterializeDefaults(dt *table.Table) (bool, error) {
	cl := dt.Column(cc.name)
	if cl == nil {
		return materializeString(dt, cc.name, cc.name)
	}
	if !cl.IsString() {
		st := tensor.NewString(cl.NumRows())
		st.CopyCellsFrom(cl, 0, 0, cl.Len())
		dt.Columns.Set(cc.name, st)
	}
	return false, nil
}

// Values returns the labels of every row of the bound table.
func (cc *CategoryColumn) Values() ([][]string, error) {
	if err := cc.assertNotEmpty(); err != nil {
		return nil, err
	}
	cells, err := cc.dt.ColumnStrings(cc.name)
	if err != nil {
		return nil, err
	}
	vals := make([][]string, len(cells))
	for i, cell := range cells {
		vals[i] = cc.Sep.Split(cell)
	}
	return vals, nil
}

// UniqueValues returns the sorted distinct labels over all rows.
func (cc *CategoryColumn) UniqueValues() ([]string, error) {
	vals, err := cc.Values()
	if err != nil {
		return nil, err
	}
	return sortedUnique(slices.Concat(vals...)), nil
}

// ValueCounts returns the number of occurrences of each label over all
// rows. A label listed twice in one cell counts twice.
func (cc *CategoryColumn) ValueCounts() (map[string]int, error) {
	vals, err := cc.Values()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, row := range vals {
		for _, lb := range row {
			counts[lb]++
		}
	}
	return counts, nil
}

// sortedUnique sorts labels in place and returns them without duplicates.
func sortedUnique(labels []string) []string {
	slices.Sort(labels)
	return slices.Compact(labels)
}

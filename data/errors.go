// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import "errors"

// Sentinel errors returned by this package, matched with errors.Is.
// Returned errors usually wrap these with the operation and the
// offending column, row or label.
var (
	// ErrEmptyData is returned when a table-dependent value is read
	// before a non-empty table has been bound.
	ErrEmptyData = errors.New("data: empty data")

	// ErrLabelNotFound is returned when the relation matrix meets a
	// category label that is not in the cached vocabulary.
	ErrLabelNotFound = errors.New("data: label not found in vocabulary")

	// ErrDuplicateColumn is returned when a column name is registered twice.
	ErrDuplicateColumn = errors.New("data: duplicate column name")

	// ErrInvalidSeparator is returned for an unsupported label separator.
	ErrInvalidSeparator = errors.New("data: invalid separator")

	// ErrColumnNotFound is returned when a named column is not registered.
	ErrColumnNotFound = errors.New("data: column not found")

	// ErrColumnType is returned when a table column has the wrong value type.
	ErrColumnType = errors.New("data: wrong column type")

	// ErrNoTable is returned when a nil table is bound.
	ErrNoTable = errors.New("data: nil table")
)

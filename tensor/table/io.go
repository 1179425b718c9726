// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/ihmeuw-msca/crosswalk/tensor"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file -- reads the first line and detects tabs or commas
	Detect
)

// Rune returns the delimiter rune; Detect maps to Tab.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// String returns the lower-case name of the delimiter.
func (dl Delims) String() string {
	switch dl {
	case Tab:
		return "tab"
	case Comma:
		return "comma"
	case Space:
		return "space"
	case Detect:
		return "detect"
	}
	return "Delims(" + strconv.Itoa(int(dl)) + ")"
}

// SetString sets the delimiter from its name, as returned by [Delims.String].
func (dl *Delims) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tab", "tsv":
		*dl = Tab
	case "comma", "csv":
		*dl = Comma
	case "space":
		*dl = Space
	case "detect", "":
		*dl = Detect
	default:
		return fmt.Errorf("table.Delims: unknown delimiter %q", s)
	}
	return nil
}

// DetectDelim returns Tab if the given header line contains
// more tabs than commas, and Comma otherwise.
func DetectDelim(line string) Delims {
	if strings.Count(line, "\t") > strings.Count(line, ",") {
		return Tab
	}
	return Comma
}

const (
	// Headers is passed to CSV methods for the headers arg, to use headers
	// that capture the type of each column.
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg, to write
	// only the plain column names.
	NoHeaders = false
)

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then generate column headers that capture the type
// of the columns, enabling full reloading of exactly the same table
// format and data. Otherwise, plain column names are written.
func (dt *Table) SaveCSV(filename string, delim Delims, headers bool) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := dt.WriteCSV(bw, delim, headers); err != nil {
		return err
	}
	return bw.Flush()
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// See [Table.ReadCSV] for details.
func (dt *Table) OpenCSV(filename string, delim Delims, strs ...string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim, strs...)
}

// OpenFS is the version of [Table.OpenCSV] that uses an [fs.FS] filesystem.
func (dt *Table) OpenFS(fsys fs.FS, filename string, delim Delims, strs ...string) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim, strs...)
}

// ReadCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// The first row of the file is always the header row and any existing
// columns are replaced. If the headers carry type characters
// (as written by [Table.WriteCSV] with [Headers]), those types are used;
// otherwise each column is float64 if every non-empty value parses as a
// number, and string otherwise. The columns named in strs are always
// string, keeping their text as written. Values are trimmed of
// surrounding space. Empty or NaN / Inf cells in float columns are NaN.
func (dt *Table) ReadCSV(r io.Reader, delim Delims, strs ...string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if delim == Detect {
		line, _, _ := bytes.Cut(data, []byte("\n"))
		delim = DetectDelim(string(line))
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim.Rune()
	rec, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("table.ReadCSV: %w", err)
	}
	if len(rec) == 0 {
		return fmt.Errorf("table.ReadCSV: no header row")
	}
	dt.DeleteAll()
	if err := ConfigFromHeaders(dt, rec[0], rec[1:], strs...); err != nil {
		return err
	}
	rows := len(rec) - 1
	dt.SetNumRows(rows)
	for ri := range rows {
		dt.ReadCSVRow(rec[ri+1], ri)
	}
	return nil
}

// ReadCSVRow reads a record of CSV data into given row in table
func (dt *Table) ReadCSVRow(rec []string, row int) {
	nan := math.NaN()
	for ci, tsr := range dt.Columns.Values {
		if ci >= len(rec) {
			return
		}
		str := strings.TrimSpace(rec[ci])
		if !tsr.IsString() && isMissing(str) {
			tsr.SetFloat1D(nan, row)
			continue
		}
		tsr.SetString1D(str, row)
	}
}

func isMissing(str string) bool {
	switch str {
	case "", "NaN", "-NaN", "nan", "NA":
		return true
	}
	return false
}

// ConfigFromHeaders configures a Table based on the headers.
// For non-table headers, data is examined to determine types,
// except for the columns named in strs, which are string.
func ConfigFromHeaders(dt *Table, hdrs []string, rec [][]string, strs ...string) error {
	if DetectTableHeaders(hdrs) {
		return ConfigFromTableHeaders(dt, hdrs)
	}
	return ConfigFromDataValues(dt, hdrs, rec, strs...)
}

// DetectTableHeaders looks for special header characters -- returns true if found
// on every non-empty header.
func DetectTableHeaders(hdrs []string) bool {
	found := false
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		if _, ok := TableHeaderToType[hd[0]]; !ok { // all must be table
			return false
		}
		found = true
	}
	return found
}

// ConfigFromTableHeaders configures a Table based on special table headers.
func ConfigFromTableHeaders(dt *Table, hdrs []string) error {
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("$col_%d", ci)
		}
		typ, nm := TableColumnType(hd)
		tsr, err := tensor.NewOfType(typ, 0)
		if err != nil {
			return err
		}
		if err := dt.AddColumn(nm, tsr); err != nil {
			return err
		}
	}
	return nil
}

// TableHeaderToType maps special header characters to data type
var TableHeaderToType = map[byte]reflect.Kind{
	'$': reflect.String,
	'#': reflect.Float64,
	'|': reflect.Int,
}

// TableHeaderChar returns the special header character based on given data type
func TableHeaderChar(typ reflect.Kind) byte {
	switch {
	case typ == reflect.Float32 || typ == reflect.Float64:
		return '#'
	case typ >= reflect.Int && typ <= reflect.Uintptr:
		return '|'
	default:
		return '$'
	}
}

// TableColumnType parses the column header for special table type information
func TableColumnType(nm string) (reflect.Kind, string) {
	typ, ok := TableHeaderToType[nm[0]]
	if ok {
		nm = nm[1:]
	} else {
		typ = reflect.String // most general, default
	}
	return typ, nm
}

// ConfigFromDataValues configures a Table based on data types inferred
// from the string representation of given records, using header names.
// A column is float64 when it has at least one non-missing value and
// all of them parse as numbers; otherwise it is string.
// The columns named in strs are string.
func ConfigFromDataValues(dt *Table, hdrs []string, rec [][]string, strs ...string) error {
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		typ := reflect.String
		for _, row := range rec {
			if slices.Contains(strs, hd) {
				break
			}
			if ci >= len(row) {
				continue
			}
			rv := strings.TrimSpace(row[ci])
			if isMissing(rv) {
				continue
			}
			if InferDataType(rv) == reflect.String {
				typ = reflect.String
				break
			}
			typ = reflect.Float64
		}
		tsr, err := tensor.NewOfType(typ, 0)
		if err != nil {
			return err
		}
		if err := dt.AddColumn(hd, tsr); err != nil {
			return err
		}
	}
	return nil
}

// InferDataType returns the inferred data type for the given string
// only deals with float64, int, and string types
func InferDataType(str string) reflect.Kind {
	if _, err := strconv.ParseInt(str, 10, 64); err == nil {
		return reflect.Int
	}
	if _, err := strconv.ParseFloat(str, 64); err == nil {
		return reflect.Float64
	}
	return reflect.String
}

//////// WriteCSV

// WriteCSV writes the rows of this table view to a comma-separated-values
// (CSV) file (where comma = any delimiter, specified in the delim arg).
// If headers = true then generate column headers that capture the type
// of the columns, enabling full reloading of exactly the same table
// format and data (recommended). Otherwise, plain column names are written.
// Only scalar (one cell per row) columns are supported.
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	if delim == Detect {
		delim = Comma
	}
	for i, tsr := range dt.Columns.Values {
		if _, cells := tsr.RowCellSize(); cells != 1 {
			return fmt.Errorf("table.WriteCSV: column %q has %d cells per row, only scalar columns are supported", dt.Columns.Keys[i], cells)
		}
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	hdrs := dt.ColumnNames()
	if headers {
		hdrs = dt.TableHeaders()
	}
	if err := cw.Write(hdrs); err != nil {
		return err
	}
	nrow := dt.NumRows()
	for ri := range nrow {
		if err := cw.Write(dt.csvRecord(dt.RowIndex(ri))); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvRecord returns the string values of the given underlying row.
func (dt *Table) csvRecord(row int) []string {
	rec := make([]string, dt.NumColumns())
	for i, tsr := range dt.Columns.Values {
		if tsr.IsString() || dt.Precision <= 0 {
			rec[i] = tsr.String1D(row)
			continue
		}
		rec[i] = strconv.FormatFloat(tsr.Float1D(row), 'g', dt.Precision, 64)
	}
	return rec
}

// TableHeaders generates special header strings from the table
// with full information about the type of each column.
func (dt *Table) TableHeaders() []string {
	hdrs := make([]string, dt.NumColumns())
	for i, tsr := range dt.Columns.Values {
		hdrs[i] = string([]byte{TableHeaderChar(tsr.DataType())}) + dt.Columns.Keys[i]
	}
	return hdrs
}

// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"github.com/ihmeuw-msca/crosswalk/base/keylist"
	"github.com/ihmeuw-msca/crosswalk/tensor"
	"github.com/ihmeuw-msca/crosswalk/tensor/table"
)

// Config has the column names of a [Data] container.
// Empty names are replaced by their defaults.
type Config struct {

	// Obs is the observation column.
	Obs string `default:"obs"`

	// ObsSE is the observation standard error column.
	ObsSE string `default:"obs_se"`

	// StudyID is the study id column.
	StudyID string `default:"study_id"`

	// Covs are the covariate columns. Nil means just "intercept".
	Covs []string
}

// DefaultConfig returns a [Config] with the default column names.
func DefaultConfig() Config {
	cfg := Config{}
	errors.Log(reflectx.SetFromDefaultTags(&cfg))
	return cfg
}

// withDefaults returns cfg with empty names set to their defaults.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Obs == "" {
		cfg.Obs = def.Obs
	}
	if cfg.ObsSE == "" {
		cfg.ObsSE = def.ObsSE
	}
	if cfg.StudyID == "" {
		cfg.StudyID = def.StudyID
	}
	if cfg.Covs == nil {
		cfg.Covs = []string{"intercept"}
	}
	return cfg
}

// Data is a container of typed columns bound to a [table.Table].
// Columns are registered once, in order, and every registered column
// is materialized into the table when it is bound with [Data.SetTable].
type Data struct {

	// Config has the column names used at construction.
	Config Config

	columns   *keylist.List[string, Column]
	dt        *table.Table
	defaulted []string
	logger    *slog.Logger
}

// New returns a new [Data] with obs, obs_se, study_id and the
// covariate columns registered.
func New(cfg Config) (*Data, error) {
	cfg = cfg.withDefaults()
	d := &Data{Config: cfg, columns: keylist.New[string, Column]()}
	if err := d.AddColumn(NewFloatColumn(cfg.Obs, 0)); err != nil {
		return nil, err
	}
	if err := d.AddColumn(NewFloatColumn(cfg.ObsSE, 1)); err != nil {
		return nil, err
	}
	if err := d.AddColumn(NewStringColumn(cfg.StudyID, "Unknown")); err != nil {
		return nil, err
	}
	for _, cov := range cfg.Covs {
		if err := d.AddColumn(NewFloatColumn(cov, 1)); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// SetLogger sets the logger, which defaults to [slog.Default].
func (d *Data) SetLogger(logger *slog.Logger) { d.logger = logger }

// Logger returns the logger.
func (d *Data) Logger() *slog.Logger {
	if d.logger == nil {
		return slog.Default()
	}
	return d.logger
}

// AddColumn registers a column. Names must be unique.
// A column added after a table is bound is materialized on the next [Data.SetTable].
func (d *Data) AddColumn(col Column) error {
	if col == nil {
		return fmt.Errorf("data.AddColumn: nil column")
	}
	if err := d.columns.Add(col.Name(), col); err != nil {
		return fmt.Errorf("data.AddColumn %q: %w", col.Name(), ErrDuplicateColumn)
	}
	return nil
}

// Column returns the registered column of the given name.
func (d *Data) Column(name string) (Column, bool) {
	return d.columns.AtTry(name)
}

// ColumnNames returns the registered column names in registration order.
func (d *Data) ColumnNames() []string {
	return slices.Clone(d.columns.Keys)
}

// SetTable binds dt, adding every registered column that dt lacks with
// its default values. The table is referenced, not copied.
// Every column is checked before dt is modified, and on error the
// previously bound table stays bound.
func (d *Data) SetTable(dt *table.Table) error {
	if dt == nil {
		return ErrNoTable
	}
	for _, col := range d.columns.Values {
		if err := col.Check(dt); err != nil {
			return fmt.Errorf("data.SetTable: %w", err)
		}
	}
	var filled []string
	for _, col := range d.columns.Values {
		def, err := col.MaterializeDefaults(dt)
		if err != nil {
			return fmt.Errorf("data.SetTable: %w", err)
		}
		if def {
			filled = append(filled, col.Name())
			d.Logger().Debug("filled column with defaults", "column", col.Name(), "rows", dt.NumRows())
		}
	}
	for _, col := range d.columns.Values {
		col.Attach(dt)
	}
	d.dt = dt
	d.defaulted = filled
	return nil
}

// Table returns the bound table, which may be nil.
func (d *Data) Table() *table.Table { return d.dt }

// Defaulted returns the names of the columns filled with defaults at the
// last [Data.SetTable].
func (d *Data) Defaulted() []string { return slices.Clone(d.defaulted) }

// NumRows returns the number of rows of the bound table.
func (d *Data) NumRows() int {
	if d.dt == nil {
		return 0
	}
	return d.dt.NumRows()
}

// IsEmpty returns true if no table is bound or the table has no rows.
func (d *Data) IsEmpty() bool { return d.NumRows() == 0 }

// AssertNotEmpty returns [ErrEmptyData] if [Data.IsEmpty].
func (d *Data) AssertNotEmpty() error {
	if d.IsEmpty() {
		return ErrEmptyData
	}
	return nil
}

// floatColumn returns the float values of a registered column.
func (d *Data) floatColumn(name string) ([]float64, error) {
	if err := d.AssertNotEmpty(); err != nil {
		return nil, err
	}
	col, ok := d.Column(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	fc, ok := col.(*FloatColumn)
	if !ok {
		return nil, fmt.Errorf("%q is not a float column: %w", name, ErrColumnType)
	}
	return fc.Values()
}

// Obs returns the observations.
func (d *Data) Obs() ([]float64, error) { return d.floatColumn(d.Config.Obs) }

// ObsSE returns the observation standard errors.
func (d *Data) ObsSE() ([]float64, error) { return d.floatColumn(d.Config.ObsSE) }

// StudyIDs returns the study id of every row.
func (d *Data) StudyIDs() ([]string, error) {
	if err := d.AssertNotEmpty(); err != nil {
		return nil, err
	}
	return d.dt.ColumnStrings(d.Config.StudyID)
}

// Studies returns the sorted distinct study ids.
func (d *Data) Studies() ([]string, error) {
	ids, err := d.StudyIDs()
	if err != nil {
		return nil, err
	}
	return sortedUnique(ids), nil
}

// StudySizes returns the number of rows of each study.
func (d *Data) StudySizes() (map[string]int, error) {
	ids, err := d.StudyIDs()
	if err != nil {
		return nil, err
	}
	sizes := make(map[string]int)
	for _, id := range ids {
		sizes[id]++
	}
	return sizes, nil
}

// NumStudies returns the number of distinct studies, 0 when empty.
func (d *Data) NumStudies() int {
	st, err := d.Studies()
	if err != nil {
		return 0
	}
	return len(st)
}

// CovMat returns the rows x len(names) covariate matrix.
// With no names all configured covariates are used.
func (d *Data) CovMat(names ...string) (*tensor.Float64, error) {
	if err := d.AssertNotEmpty(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = d.Config.Covs
	}
	nr := d.NumRows()
	mat := tensor.NewFloat64(nr, len(names))
	for j, nm := range names {
		vals, err := d.floatColumn(nm)
		if err != nil {
			return nil, fmt.Errorf("data.CovMat: %w", err)
		}
		for i, v := range vals {
			mat.Set(v, i, j)
		}
	}
	return mat, nil
}

// Filter returns a new table with the rows of the bound table for which
// keep returns true. The row passed to keep indexes the raw column tensors.
// The result is not bound: pass it to SetTable to use it.
func (d *Data) Filter(keep func(dt *table.Table, row int) bool) (*table.Table, error) {
	if d.dt == nil {
		return nil, ErrNoTable
	}
	view := table.NewView(d.dt)
	view.Filter(keep)
	return view.New(), nil
}

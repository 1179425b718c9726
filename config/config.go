// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the netmat tool, read from TOML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"github.com/ihmeuw-msca/crosswalk/data"
	"github.com/ihmeuw-msca/crosswalk/logx"
	"github.com/ihmeuw-msca/crosswalk/tensor/table"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct
// that contains all of the configuration
// options for the netmat tool.
type Config struct {

	// Delim is the input file delimiter: tab, comma, space or detect.
	Delim string `toml:"delim" default:"detect"`

	// LogLevel is the log level: debug, info, warn or error.
	LogLevel string `toml:"log_level" default:"info"`

	// Columns has the column names of the input table.
	Columns Columns `toml:"columns"`

	// Vocab is an explicit dorm vocabulary. If empty, the vocabulary
	// is computed from the input table.
	Vocab []string `toml:"vocab,omitempty"`
}

// Columns has the column names and label separator of the input table.
type Columns struct {

	// Ref is the reference dorm column.
	Ref string `toml:"ref" default:"ref_dorm"`

	// Alt is the alternative dorm column.
	Alt string `toml:"alt" default:"alt_dorm"`

	// Sep separates labels within a dorm cell: "", ",", "|", ";" or "+".
	Sep string `toml:"sep"`

	// Obs is the observation column.
	Obs string `toml:"obs" default:"obs"`

	// ObsSE is the observation standard error column.
	ObsSE string `toml:"obs_se" default:"obs_se"`

	// StudyID is the study id column.
	StudyID string `toml:"study_id" default:"study_id"`

	// Covs are the covariate columns.
	Covs []string `toml:"covs,omitempty"`
}

// Default returns a new [Config] with the default values.
func Default() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Defaults sets the default values from the `default:` struct tags.
func (cfg *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// Open reads the given TOML file into cfg, on top of the current values.
// A leading ~ in filename is expanded to the home directory.
func (cfg *Config) Open(filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := cfg.Read(bytes.NewReader(b)); err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// Read reads TOML from r into cfg. Unknown keys are an error.
func (cfg *Config) Read(r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Write writes cfg to w as TOML.
func (cfg *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Save writes cfg to the given TOML file.
func (cfg *Config) Save(filename string) error {
	var b bytes.Buffer
	if err := cfg.Write(&b); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// Delims returns the input file delimiter.
func (cfg *Config) Delims() (table.Delims, error) {
	var dl table.Delims
	err := dl.SetString(cfg.Delim)
	return dl, err
}

// Level returns the log level.
func (cfg *Config) Level() (slog.Level, error) {
	return logx.ParseLevel(cfg.LogLevel)
}

// Network returns the [data.NetworkConfig] for the configured columns.
func (cfg *Config) Network() (data.NetworkConfig, error) {
	sep, err := data.ParseSeparator(cfg.Columns.Sep)
	if err != nil {
		return data.NetworkConfig{}, err
	}
	return data.NetworkConfig{
		Config: data.Config{
			Obs:     cfg.Columns.Obs,
			ObsSE:   cfg.Columns.ObsSE,
			StudyID: cfg.Columns.StudyID,
			Covs:    cfg.Columns.Covs,
		},
		RefDorm:       cfg.Columns.Ref,
		AltDorm:       cfg.Columns.Alt,
		DormSeparator: sep,
	}, nil
}

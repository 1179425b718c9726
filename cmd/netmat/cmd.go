// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/ihmeuw-msca/crosswalk/config"
	"github.com/ihmeuw-msca/crosswalk/data"
	"github.com/ihmeuw-msca/crosswalk/logx"
	"github.com/ihmeuw-msca/crosswalk/tensor"
	"github.com/ihmeuw-msca/crosswalk/tensor/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// options are the flag values shared by all commands.
type options struct {
	configPath string
	ref        string
	alt        string
	sep        string
	delim      string
	logLevel   string
	vocab      []string

	// verbosity flags, which override the log level when set
	veryVerbose bool
	verbose     bool
	quiet       bool
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "netmat",
		Short: "Network meta-analysis dorm tool",
		Long: `Netmat reads a table with reference and alternative dorm
(treatment arm) columns from a CSV or TSV file and prints the sorted
dorm vocabulary, the dorm counts, or the signed relation matrix.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	pf.StringVar(&opts.ref, "ref", "", "reference dorm column (default ref_dorm)")
	pf.StringVar(&opts.alt, "alt", "", "alternative dorm column (default alt_dorm)")
	pf.StringVar(&opts.sep, "sep", "", "dorm label separator: none, comma, pipe, semicolon or plus")
	pf.StringVar(&opts.delim, "delim", "", "input delimiter: tab, comma, space or detect (default detect)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (default info)")
	pf.StringSliceVar(&opts.vocab, "vocab", nil, "explicit dorm vocabulary, comma separated")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "log at debug level")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log at info level")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "log errors only")

	cmd.AddCommand(dormsCmd(opts), countsCmd(opts), relationCmd(opts))
	return cmd
}

func dormsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dorms <file>",
		Short: "Print the dorm vocabulary, one label per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nd, err := opts.load(cmd, args[0])
			if err != nil {
				return errors.Log(err)
			}
			for _, lb := range nd.UniqueDorms() {
				fmt.Fprintln(cmd.OutOrStdout(), lb)
			}
			return nil
		},
	}
}

func countsCmd(opts *options) *cobra.Command {
	var asTable bool
	cmd := &cobra.Command{
		Use:   "counts <file>",
		Short: "Print the number of occurrences of each dorm as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nd, err := opts.load(cmd, args[0])
			if err != nil {
				return errors.Log(err)
			}
			if asTable {
				dt, err := nd.DormCountsTable()
				if err != nil {
					return errors.Log(err)
				}
				return errors.Log(dt.WriteCSV(cmd.OutOrStdout(), table.Comma, table.NoHeaders))
			}
			counts, err := nd.DormCounts()
			if err != nil {
				return errors.Log(err)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(counts); err != nil {
				return errors.Log(err)
			}
			return errors.Log(enc.Close())
		},
	}
	cmd.Flags().BoolVar(&asTable, "table", false, "print per-arm counts as CSV instead")
	return cmd
}

func relationCmd(opts *options) *cobra.Command {
	var headers bool
	cmd := &cobra.Command{
		Use:   "relation <file>",
		Short: "Print the relation matrix as CSV, one column per dorm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nd, err := opts.load(cmd, args[0])
			if err != nil {
				return errors.Log(err)
			}
			dt, err := relationTable(nd)
			if err != nil {
				return errors.Log(err)
			}
			return errors.Log(dt.WriteCSV(cmd.OutOrStdout(), table.Comma, headers))
		},
	}
	cmd.Flags().BoolVar(&headers, "typed-headers", false, "write typed column headers (#name)")
	return cmd
}

// relationTable returns the relation matrix of nd as a table
// with one float64 column per dorm.
func relationTable(nd *data.NetworkData) (*table.Table, error) {
	mat, err := nd.RelationMat()
	if err != nil {
		return nil, err
	}
	dt := table.NewTable("relation")
	rows := nd.NumRows()
	for j, lb := range nd.UniqueDorms() {
		cl := tensor.NewFloat64(rows)
		for i := range rows {
			cl.Values[i] = mat.Value(i, j)
		}
		if err := dt.AddColumn(lb, cl); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// config returns the config file values overridden by the set flags.
func (opts *options) config(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		if err := cfg.Open(opts.configPath); err != nil {
			return nil, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("ref") {
		cfg.Columns.Ref = opts.ref
	}
	if fl.Changed("alt") {
		cfg.Columns.Alt = opts.alt
	}
	if fl.Changed("sep") {
		cfg.Columns.Sep = opts.sep
	}
	if fl.Changed("delim") {
		cfg.Delim = opts.delim
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if fl.Changed("vocab") {
		cfg.Vocab = opts.vocab
	}
	return cfg, nil
}

// load reads the given file into a new [data.NetworkData].
func (opts *options) load(cmd *cobra.Command, filename string) (*data.NetworkData, error) {
	cfg, err := opts.config(cmd)
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if opts.veryVerbose || opts.verbose || opts.quiet {
		level = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
	}
	logx.UserLevel = level
	logger := logx.SetDefaultLogger(cmd.ErrOrStderr())

	dl, err := cfg.Delims()
	if err != nil {
		return nil, err
	}
	nc, err := cfg.Network()
	if err != nil {
		return nil, err
	}
	nd, err := data.NewNetworkData(nc)
	if err != nil {
		return nil, err
	}
	nd.SetLogger(logger)
	if len(cfg.Vocab) > 0 {
		nd.SetUniqueDorms(cfg.Vocab)
	}

	dt := table.NewTable(filename)
	if err := dt.OpenCSV(filename, dl, nd.CategoryNames()...); err != nil {
		return nil, err
	}
	if err := nd.SetTable(dt); err != nil {
		return nil, err
	}
	logger.Info("loaded table", "file", filename, "rows", nd.NumRows(), "dorms", len(nd.UniqueDorms()), "defaulted", nd.Defaulted())
	return nd, nil
}

// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/ihmeuw-msca/crosswalk/tensor"
	"github.com/ihmeuw-msca/crosswalk/tensor/table"
)

// NetworkConfig has the column names and label separator of a [NetworkData].
type NetworkConfig struct {
	Config

	// RefDorm is the reference category column.
	RefDorm string `default:"ref_dorm"`

	// AltDorm is the alternative category column.
	AltDorm string `default:"alt_dorm"`

	// DormSeparator splits cells into labels. Empty means no splitting.
	DormSeparator Separator
}

// DefaultNetworkConfig returns a [NetworkConfig] with the default names.
func DefaultNetworkConfig() NetworkConfig {
	cfg := NetworkConfig{}
	errors.Log(reflectx.SetFromDefaultTags(&cfg))
	return cfg
}

// Vocabulary is the sorted, duplicate-free set of category labels that
// defines the columns of the relation matrix. A nil *Vocabulary is the
// uncomputed state.
type Vocabulary struct {
	labels []string
	index  map[string]int
}

// NewVocabulary returns a computed [Vocabulary] of the sorted distinct labels.
func NewVocabulary(labels []string) *Vocabulary {
	lbs := sortedUnique(slices.Clone(labels))
	vc := &Vocabulary{labels: lbs, index: make(map[string]int, len(lbs))}
	for i, lb := range lbs {
		vc.index[lb] = i
	}
	return vc
}

// Labels returns a copy of the labels in order.
func (vc *Vocabulary) Labels() []string {
	if vc == nil {
		return []string{}
	}
	return slices.Clone(vc.labels)
}

// Len returns the number of labels.
func (vc *Vocabulary) Len() int {
	if vc == nil {
		return 0
	}
	return len(vc.labels)
}

// Index returns the column index of label, and false if it is not present.
func (vc *Vocabulary) Index(label string) (int, bool) {
	if vc == nil {
		return -1, false
	}
	i, ok := vc.index[label]
	return i, ok
}

// Contains returns true if label is present.
func (vc *Vocabulary) Contains(label string) bool {
	_, ok := vc.Index(label)
	return ok
}

// Closest returns the label most similar to s by Levenshtein
// similarity, and false if the vocabulary is empty.
func (vc *Vocabulary) Closest(s string) (string, bool) {
	if vc.Len() == 0 {
		return "", false
	}
	lev := metrics.NewLevenshtein()
	best, bsim := "", -1.0
	for _, lb := range vc.labels {
		if sim := strutil.Similarity(s, lb, lev); sim > bsim {
			best, bsim = lb, sim
		}
	}
	return best, true
}

// NetworkData is a [Data] container with reference and alternative
// category columns, describing pairwise comparisons between treatment
// arms ("dorms") in a network meta-analysis.
type NetworkData struct {
	*Data

	// RefDorm is the reference category column.
	RefDorm *CategoryColumn

	// AltDorm is the alternative category column.
	AltDorm *CategoryColumn

	vocab *Vocabulary
}

// NewNetworkData returns a new [NetworkData]. The category columns are
// registered after the base columns. The vocabulary starts uncomputed.
func NewNetworkData(cfg NetworkConfig) (*NetworkData, error) {
	def := DefaultNetworkConfig()
	if cfg.RefDorm == "" {
		cfg.RefDorm = def.RefDorm
	}
	if cfg.AltDorm == "" {
		cfg.AltDorm = def.AltDorm
	}
	ref, err := NewRefCategoryColumn(cfg.RefDorm, cfg.DormSeparator)
	if err != nil {
		return nil, err
	}
	alt, err := NewAltCategoryColumn(cfg.AltDorm, cfg.DormSeparator)
	if err != nil {
		return nil, err
	}
	d, err := New(cfg.Config)
	if err != nil {
		return nil, err
	}
	if err := d.AddColumn(ref); err != nil {
		return nil, err
	}
	if err := d.AddColumn(alt); err != nil {
		return nil, err
	}
	return &NetworkData{Data: d, RefDorm: ref, AltDorm: alt}, nil
}

// CategoryNames returns the reference and alternative column names.
// Pass them to [table.Table.ReadCSV] so labels such as "007" keep their text.
func (nd *NetworkData) CategoryNames() []string {
	return []string{nd.RefDorm.Name(), nd.AltDorm.Name()}
}

// SetTable binds dt as [Data.SetTable] does, then computes the vocabulary
// from both category columns if it is uncomputed. A computed vocabulary
// is kept as is. With an uncomputed vocabulary an empty dt is bound but
// returns an [ErrEmptyData] error, and the vocabulary stays uncomputed.
func (nd *NetworkData) SetTable(dt *table.Table) error {
	if err := nd.Data.SetTable(dt); err != nil {
		return err
	}
	if nd.vocab != nil {
		return nil
	}
	return nd.RecomputeUniqueDorms()
}

// RecomputeUniqueDorms sets the vocabulary to the labels of the bound table.
func (nd *NetworkData) RecomputeUniqueDorms() error {
	ref, err := nd.RefDorm.UniqueValues()
	if err != nil {
		return err
	}
	alt, err := nd.AltDorm.UniqueValues()
	if err != nil {
		return err
	}
	nd.vocab = NewVocabulary(slices.Concat(ref, alt))
	nd.Logger().Debug("computed dorm vocabulary", "dorms", nd.vocab.Len())
	return nil
}

// SetUniqueDorms sets the vocabulary to the sorted distinct labels.
// The vocabulary is computed even when labels is empty, so an empty
// vocabulary is kept by later [NetworkData.SetTable] calls.
func (nd *NetworkData) SetUniqueDorms(labels []string) {
	nd.vocab = NewVocabulary(labels)
}

// UniqueDorms returns the vocabulary labels, empty when uncomputed.
func (nd *NetworkData) UniqueDorms() []string { return nd.vocab.Labels() }

// Vocabulary returns the vocabulary, nil when uncomputed.
func (nd *NetworkData) Vocabulary() *Vocabulary { return nd.vocab }

// VocabularyComputed returns true if the vocabulary has been computed or set.
func (nd *NetworkData) VocabularyComputed() bool { return nd.vocab != nil }

// ResetUniqueDorms makes the vocabulary uncomputed, so the next
// [NetworkData.SetTable] computes it again.
func (nd *NetworkData) ResetUniqueDorms() { nd.vocab = nil }

// DormCounts returns the number of occurrences of each label over both
// category columns.
func (nd *NetworkData) DormCounts() (map[string]int, error) {
	ref, err := nd.RefDorm.ValueCounts()
	if err != nil {
		return nil, err
	}
	alt, err := nd.AltDorm.ValueCounts()
	if err != nil {
		return nil, err
	}
	for lb, n := range alt {
		ref[lb] += n
	}
	return ref, nil
}

// DormCount is the number of occurrences of a label in each arm.
type DormCount struct {
	Dorm  string `table:"dorm"`
	Ref   int    `table:"ref"`
	Alt   int    `table:"alt"`
	Total int    `table:"total"`
}

// DormCountsTable returns a table with one [DormCount] row per label of
// the bound table, sorted by label.
func (nd *NetworkData) DormCountsTable() (*table.Table, error) {
	ref, err := nd.RefDorm.ValueCounts()
	if err != nil {
		return nil, err
	}
	alt, err := nd.AltDorm.ValueCounts()
	if err != nil {
		return nil, err
	}
	lbs := sortedUnique(slices.AppendSeq(slices.Collect(maps.Keys(ref)), maps.Keys(alt)))
	rows := make([]DormCount, len(lbs))
	for i, lb := range lbs {
		rows[i] = DormCount{Dorm: lb, Ref: ref[lb], Alt: alt[lb], Total: ref[lb] + alt[lb]}
	}
	return table.NewSliceTable(rows)
}

// RelationMat returns the rows x vocabulary relation matrix: for each row,
// +1 at every alternative label and -1 at every reference label.
// A label that is in both arms of a row cancels to 0. A label that is not
// in the vocabulary is an [ErrLabelNotFound] error.
func (nd *NetworkData) RelationMat() (*tensor.Float64, error) {
	if err := nd.AssertNotEmpty(); err != nil {
		return nil, err
	}
	ref, err := nd.RefDorm.Values()
	if err != nil {
		return nil, err
	}
	alt, err := nd.AltDorm.Values()
	if err != nil {
		return nil, err
	}
	mat := tensor.NewFloat64(nd.NumRows(), nd.vocab.Len())
	mark := func(row int, labels []string, set func(val float64, i ...int)) error {
		for _, lb := range labels {
			j, ok := nd.vocab.Index(lb)
			if !ok {
				if cl, has := nd.vocab.Closest(lb); has {
					return fmt.Errorf("data.RelationMat: row %d: label %q (closest %q): %w", row, lb, cl, ErrLabelNotFound)
				}
				return fmt.Errorf("data.RelationMat: row %d: label %q: %w", row, lb, ErrLabelNotFound)
			}
			set(1, row, j)
		}
		return nil
	}
	for i := range ref {
		if err := mark(i, alt[i], mat.SetAdd); err != nil {
			return nil, err
		}
		if err := mark(i, ref[i], mat.SetSub); err != nil {
			return nil, err
		}
	}
	return mat, nil
}

// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package data provides the data containers consumed by meta-regression
models: a generic [Data] container that binds typed columns (observations,
standard errors, study ids, covariates) to a [table.Table], and
[NetworkData], which adds the reference and alternative "dorm"
(treatment-arm) category columns of a network meta-analysis.

Category cells may hold several labels joined by a [Separator].
[NetworkData.RelationMat] maps every row onto the sorted label vocabulary,
with +1 for each alternative label and -1 for each reference label.

The vocabulary is computed once, when the first non-empty table is bound,
and is never invalidated automatically: binding a filtered or extended
table keeps the old vocabulary, so the relation matrix keeps its column
schema. Labels outside the vocabulary make [NetworkData.RelationMat]
fail with [ErrLabelNotFound]; call [NetworkData.SetUniqueDorms] or
[NetworkData.RecomputeUniqueDorms] to change it.
*/
package data

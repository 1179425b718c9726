// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"strings"
)

var (
	_ Tensor = (*Float64)(nil)
	_ Tensor = (*Int)(nil)
	_ Tensor = (*String)(nil)
)

// MaxSprintLength is the default maximum length of a String() representation
// of a tensor, as generated by the Sprintf function.
var MaxSprintLength = 1000

// Sprintf returns a string representation of the given tensor,
// with the shape on the first line and then one line per row,
// values separated by tabs. If format is empty, %g is used for
// numbers and %s for strings. Output stops after MaxSprintLength values.
func Sprintf(tsr Tensor, format string) string {
	if format == "" {
		format = "%g"
		if tsr.IsString() {
			format = "%s"
		}
	}
	var b strings.Builder
	b.WriteString(tsr.Shape().String())
	b.WriteString("\n")
	rows, cells := tsr.RowCellSize()
	n := 0
	for r := range rows {
		if n >= MaxSprintLength {
			b.WriteString("...\n")
			break
		}
		fmt.Fprintf(&b, "[%d]:", r)
		for c := range cells {
			i := r*cells + c
			b.WriteString("\t")
			if tsr.IsString() {
				fmt.Fprintf(&b, format, tsr.String1D(i))
			} else {
				fmt.Fprintf(&b, format, tsr.Float1D(i))
			}
			n++
		}
		b.WriteString("\n")
	}
	return b.String()
}

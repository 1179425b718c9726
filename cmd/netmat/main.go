// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command netmat reads a network meta-analysis table from a CSV file
// and prints its dorm vocabulary, dorm counts or relation matrix.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

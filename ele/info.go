// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds all information required by the external engine to set a
// simulation stage
type Info struct {

	// essential
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["p", "ux", "uy", "T"], ["p", "ux", "uy", "T"]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "T" => "q", "ux" => "fx"

	// t1 variables (first-order time-derivatives)
	T1vars []string // e.g. "T", "ux", "uy"
}

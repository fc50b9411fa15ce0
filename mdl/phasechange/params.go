// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phasechange

// P holds one model parameter
type P struct {
	N string  `json:"n"` // name of parameter
	V float64 `json:"v"` // value of parameter
}

// Params holds a set of model parameters
type Params []*P

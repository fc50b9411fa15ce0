// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mixed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mixed01. Taylor-Hood pairing")

	// the velocity degree is the pressure degree plus one, for any degree
	for pdeg := 1; pdeg <= 4; pdeg++ {
		m := NewTaylorHood(2, pdeg, pdeg)
		chk.IntAssert(m.P.Degree, pdeg)
		chk.IntAssert(m.U.Degree, pdeg+1)
		chk.IntAssert(m.T.Degree, pdeg)
		chk.IntAssert(m.U.Ncomp, 2)
		chk.IntAssert(m.P.Ncomp, 1)
	}

	// temperature degree is independent
	m := NewTaylorHood(3, 2, 1)
	chk.IntAssert(m.U.Degree, 3)
	chk.IntAssert(m.U.Ncomp, 3)
	chk.IntAssert(m.T.Degree, 1)

	chk.String(tst, NewTaylorHood(2, 1, 1).String(), "Mixed[P1, P2^2, P1]")
	chk.String(tst, NewTaylorHood(3, 2, 2).String(), "Mixed[P2, P3^3, P2]")
}

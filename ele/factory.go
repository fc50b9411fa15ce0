// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/HwayGuo/phaseflow-fenics/inp"
	"github.com/cpmech/gosl/chk"
)

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(sim *inp.Simulation) *Info

// AllocatorType defines a function that allocates an element
type AllocatorType func(sim *inp.Simulation) Element

// GetInfo returns information about elements from factory
func GetInfo(elementName string, sim *inp.Simulation) (info *Info, err error) {
	fcn, ok := infofactory[elementName]
	if !ok {
		return nil, chk.Err("cannot get info for element type %q", elementName)
	}
	info = fcn(sim)
	if info == nil {
		err = chk.Err("info for element type %q is not available", elementName)
	}
	return
}

// New returns a new element from factory
func New(elementName string, sim *inp.Simulation) (element Element, err error) {
	fcn, ok := allocators[elementName]
	if !ok {
		return nil, chk.Err("cannot get allocator for element type %q", elementName)
	}
	element = fcn(sim)
	if element == nil {
		err = chk.Err("element type %q is not available", elementName)
	}
	return
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package netparams holds the consensus parameters of the network the process
// operates on.
//
// A network is selected once at startup by name.  Every component that needs
// the parameters afterwards obtains the same read-only instance from
// ActiveParams.  Accessing the parameters before a network was selected is a
// programming error and panics.
package netparams

import (
	"fmt"

	"github.com/bitgreen/bitgreend/chaincfg"
	"go.uber.org/atomic"
)

// CreateParams builds the parameters of the network with the passed name.  The
// argument source is only consulted by the regression test network, which
// applies the deployment overrides it holds.  A nil source is allowed.
func CreateParams(name string, args chaincfg.ArgSource) (*chaincfg.Params, error) {
	switch name {
	case chaincfg.MainNetName:
		return chaincfg.MainNetParams(), nil

	case chaincfg.TestNetName:
		return chaincfg.TestNetParams(), nil

	case chaincfg.RegNetName:
		overrides, err := chaincfg.ParseDeploymentOverrides(args)
		if err != nil {
			return nil, err
		}
		return chaincfg.RegNetParamsWithOverrides(overrides)
	}

	str := fmt.Sprintf("unknown network %q", name)
	return nil, contextError(ErrUnknownNetwork, str)
}

// Selector holds at most one active set of network parameters.  The zero value
// has no network selected.
//
// It is safe for concurrent access, however, selecting a network while other
// goroutines read the active parameters is only intended for tests.
type Selector struct {
	active atomic.Pointer[chaincfg.Params]
}

// SelectNetwork builds the parameters of the network with the passed name and
// installs them as the active parameters, replacing any previous selection.
// The previous selection is kept when an error is returned.
func (s *Selector) SelectNetwork(name string, args chaincfg.ArgSource) error {
	params, err := CreateParams(name, args)
	if err != nil {
		return err
	}
	if prev := s.active.Swap(params); prev != nil {
		log.Debugf("Replacing active network %s with %s", prev.Name,
			params.Name)
	}
	log.Infof("Using %s network parameters", params.Name)
	return nil
}

// ActiveParams returns the active network parameters.  It panics when no
// network has been selected.
func (s *Selector) ActiveParams() *chaincfg.Params {
	params := s.active.Load()
	if params == nil {
		panic("network parameters accessed before a network was selected")
	}
	return params
}

// IsSelected returns whether or not a network has been selected.
func (s *Selector) IsSelected() bool {
	return s.active.Load() != nil
}

// Reset removes the active network parameters.
func (s *Selector) Reset() {
	s.active.Store(nil)
}

// defaultSelector is the process-wide selector used by the package level
// functions.
var defaultSelector Selector

// SelectNetwork selects the process-wide network.  See Selector.SelectNetwork.
func SelectNetwork(name string, args chaincfg.ArgSource) error {
	return defaultSelector.SelectNetwork(name, args)
}

// ActiveParams returns the process-wide network parameters.  It panics when no
// network has been selected.
func ActiveParams() *chaincfg.Params {
	return defaultSelector.ActiveParams()
}

// IsSelected returns whether or not the process-wide network was selected.
func IsSelected() bool {
	return defaultSelector.IsSelected()
}

// Reset removes the process-wide network parameters.
func Reset() {
	defaultSelector.Reset()
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main BitGreen network, which is intended for the transfer
// of monetary value, there also exists two currently active standard networks:
// the public test network and the regression test network.  These networks are
// incompatible with each other (each sharing a different genesis block) and
// software should handle errors where input intended for one network is used
// on an application instance running on a different network.
//
// Each network is built by its constructor (MainNetParams, TestNetParams and
// RegNetParams).  Constructors build the genesis block from its literal
// description and panic when the result does not hash to the expected value or
// when any hard-coded value violates its invariants, so an invalid build can
// not start.  The returned parameters must be treated as read-only.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//
//		"github.com/bitgreen/bitgreend/chaincfg"
//	)
//
//	func main() {
//		var testnet = flag.Bool("testnet", false, "operate on the test network")
//		flag.Parse()
//
//		// By default (without -testnet), use mainnet.
//		var chainParams = chaincfg.MainNetParams()
//
//		// Modify active network parameters if operating on testnet.
//		if *testnet {
//			chainParams = chaincfg.TestNetParams()
//		}
//
//		// later...
//
//		fmt.Println(chainParams.DefaultPort, chainParams.PowLimitZeroBits())
//	}
//
// Deployment start times and timeouts may only be changed on the regression
// test network, through RegNetParamsWithOverrides.
//
// The package also keeps a registry of the address prefixes of every known
// network.  The standard networks are registered at initialization and others
// may be added with Register.
package chaincfg

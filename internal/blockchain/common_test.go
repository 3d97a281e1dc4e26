// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/bitgreen/bitgreend/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	// testWindow and testThreshold are the confirmation window and the
	// activation threshold used by the synthetic chains.
	testWindow    = 10
	testThreshold = 8

	// baseTime is the timestamp of the first block of synthetic chains and
	// blockSpacing is the number of seconds between each block.
	baseTime     = 1600000000
	blockSpacing = 600

	// regNetPowLimitBits is the compact pow limit used by synthetic blocks.
	regNetPowLimitBits = 0x207fffff
)

// testParams returns regression test network parameters with a small
// confirmation window so deployment transitions can be exercised with short
// chains.
func testParams() *chaincfg.Params {
	params := chaincfg.RegNetParams()
	params.MinerConfirmationWindow = testWindow
	params.RuleChangeActivationThreshold = testThreshold
	return params
}

// newFakeNode creates a block node connected to the passed parent with the
// provided fields populated and fake values for the other fields.
func newFakeNode(parent *BlockNode, blockVersion int32, timestamp time.Time) *BlockNode {
	var prevHash chainhash.Hash
	var nonce uint32
	if parent != nil {
		prevHash = parent.hash
		nonce = uint32(parent.height + 1)
	}
	header := &wire.BlockHeader{
		Version:   blockVersion,
		PrevBlock: prevHash,
		Timestamp: timestamp,
		Bits:      regNetPowLimitBits,
		Nonce:     nonce,
	}
	return NewBlockNode(header, parent)
}

// fakeBlockTime returns the timestamp of the synthetic block at the passed
// height.
func fakeBlockTime(height int32) time.Time {
	return time.Unix(baseTime+int64(height)*blockSpacing, 0)
}

// extendChain appends the given number of blocks with the provided version to
// the passed tip, which may be nil to start a new chain, and returns the new
// tip.  Blocks are spaced evenly by height.
func extendChain(tip *BlockNode, numBlocks int, blockVersion int32) *BlockNode {
	for i := 0; i < numBlocks; i++ {
		var height int32
		if tip != nil {
			height = tip.height + 1
		}
		tip = newFakeNode(tip, blockVersion, fakeBlockTime(height))
	}
	return tip
}

// nodeAt returns the ancestor of the tip at the passed height, or nil when the
// height is negative.
func nodeAt(tip *BlockNode, height int32) *BlockNode {
	if height < 0 {
		return nil
	}
	return tip.Ancestor(height)
}

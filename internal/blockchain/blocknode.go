// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/blockchain/standalone/v2"
)

// medianTimeBlocks is the number of previous blocks which should be used to
// calculate the median time used to validate block timestamps and to gate
// deployment start times and timeouts.
const medianTimeBlocks = 11

// BlockNode represents a block within the block chain as seen by the deployment
// state machine.  The fields are immutable once the node is created.
type BlockNode struct {
	// parent is the parent block for this node.
	parent *BlockNode

	// skipToAncestor is used to provide a skip list to significantly speed up
	// traversal to ancestors deep in history.
	skipToAncestor *BlockNode

	// hash is the hash of the block this node represents.
	hash chainhash.Hash

	// workSum is the total amount of work in the chain up to and including
	// this node.
	workSum *big.Int

	// Fields from the block header needed to reconstruct it.
	height     int32
	version    int32
	bits       uint32
	nonce      uint32
	timestamp  int64
	merkleRoot chainhash.Hash
}

// clearLowestOneBit clears the lowest set bit in the passed value.
func clearLowestOneBit(n int32) int32 {
	return n & (n - 1)
}

// calcSkipListHeight calculates the height of an ancestor block to use when
// constructing the ancestor traversal skip list.  The result is always less
// than the provided height.
func calcSkipListHeight(height int32) int32 {
	if height < 0 {
		return 0
	}
	return clearLowestOneBit(clearLowestOneBit(height))
}

// NewBlockNode returns a new block node for the given block header and parent
// node.  The height is one more than the parent, or zero when no parent is
// provided.
func NewBlockNode(header *wire.BlockHeader, parent *BlockNode) *BlockNode {
	node := &BlockNode{
		hash:       header.BlockHash(),
		workSum:    standalone.CalcWork(header.Bits),
		version:    header.Version,
		bits:       header.Bits,
		nonce:      header.Nonce,
		timestamp:  header.Timestamp.Unix(),
		merkleRoot: header.MerkleRoot,
	}
	if parent != nil {
		node.parent = parent
		node.height = parent.height + 1
		node.skipToAncestor = parent.Ancestor(calcSkipListHeight(node.height))
		node.workSum = node.workSum.Add(parent.workSum, node.workSum)
	}
	return node
}

// Hash returns the hash of the block the node represents.
func (node *BlockNode) Hash() chainhash.Hash {
	return node.hash
}

// Height returns the height of the block the node represents.
func (node *BlockNode) Height() int32 {
	return node.height
}

// Version returns the version of the block the node represents.
func (node *BlockNode) Version() int32 {
	return node.version
}

// Timestamp returns the time of the block the node represents.
func (node *BlockNode) Timestamp() time.Time {
	return time.Unix(node.timestamp, 0)
}

// Parent returns the parent of the node or nil for the genesis block.
func (node *BlockNode) Parent() *BlockNode {
	return node.parent
}

// WorkSum returns the total amount of work in the chain up to and including
// the node.  The returned value must not be modified.
func (node *BlockNode) WorkSum() *big.Int {
	return node.workSum
}

// Header constructs a block header from the node and returns it.
//
// This function is safe for concurrent access.
func (node *BlockNode) Header() wire.BlockHeader {
	// No lock is needed because all accessed fields are immutable.
	var prevHash chainhash.Hash
	if node.parent != nil {
		prevHash = node.parent.hash
	}
	return wire.BlockHeader{
		Version:    node.version,
		PrevBlock:  prevHash,
		MerkleRoot: node.merkleRoot,
		Timestamp:  time.Unix(node.timestamp, 0),
		Bits:       node.bits,
		Nonce:      node.nonce,
	}
}

// Ancestor returns the ancestor block node at the provided height by following
// the chain backwards from this node.  The returned block will be nil when a
// height is requested that is after the height of the passed node or is less
// than zero.
//
// This function is safe for concurrent access.
func (node *BlockNode) Ancestor(height int32) *BlockNode {
	if height < 0 || height > node.height {
		return nil
	}

	n := node
	for n != nil && n.height != height {
		// Skip to the linked ancestor when it won't overshoot the target
		// height.
		if n.skipToAncestor != nil && calcSkipListHeight(n.height) >= height {
			n = n.skipToAncestor
			continue
		}

		n = n.parent
	}

	return n
}

// RelativeAncestor returns the ancestor block node a relative 'distance' blocks
// before this node.  This is equivalent to calling Ancestor with the node's
// height minus provided distance.
//
// This function is safe for concurrent access.
func (node *BlockNode) RelativeAncestor(distance int32) *BlockNode {
	return node.Ancestor(node.height - distance)
}

// CalcPastMedianTime calculates the median time of the previous few blocks
// prior to, and including, the block node.
//
// This function is safe for concurrent access.
func (node *BlockNode) CalcPastMedianTime() time.Time {
	timestamps := make([]int64, 0, medianTimeBlocks)
	iterNode := node
	for i := 0; i < medianTimeBlocks && iterNode != nil; i++ {
		timestamps = append(timestamps, iterNode.timestamp)
		iterNode = iterNode.parent
	}
	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i] < timestamps[j]
	})

	// NOTE: The consensus rules take the upper middle element for even
	// numbers of blocks, which only happens near the beginning of the chain.
	medianTimestamp := timestamps[len(timestamps)/2]
	return time.Unix(medianTimestamp, 0)
}

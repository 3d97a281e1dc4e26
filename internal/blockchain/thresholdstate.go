// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2017-2023 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"sync"

	"github.com/bitgreen/bitgreend/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/container/lru"
)

const (
	// VersionBitsTopBits is the value of the top bits of a block version that
	// signals version bits semantics.
	VersionBitsTopBits = 0x20000000

	// VersionBitsTopMask is the bitmask used to determine whether or not a
	// block version uses version bits semantics.
	VersionBitsTopMask = 0xe0000000

	// thresholdStateCacheSize is the maximum number of window states kept
	// for each deployment.  Entries evicted from the cache are recalculated
	// on demand.
	thresholdStateCacheSize = 2048
)

// ThresholdState define the various threshold states used when signalling
// consensus changes.
type ThresholdState byte

// These constants are used to identify specific threshold states.
const (
	// ThresholdInvalid is an invalid state and exists for use as the zero value
	// in error paths.
	ThresholdInvalid ThresholdState = iota

	// ThresholdDefined is the initial state for each deployment and is the
	// state for the genesis block has by definition for all deployments.
	ThresholdDefined

	// ThresholdStarted is the state for a deployment once its start time has
	// been reached.
	ThresholdStarted

	// ThresholdLockedIn is the state for a deployment during the window which
	// is after the ThresholdStarted state window and the number of blocks
	// that have signalled for the deployment equal or exceed the required
	// number of blocks for the deployment.
	ThresholdLockedIn

	// ThresholdActive is the state for a deployment for all blocks after a
	// window in which the deployment was in the ThresholdLockedIn state.
	ThresholdActive

	// ThresholdFailed is the state for a deployment once its timeout has
	// been reached and it did not reach the ThresholdLockedIn state.
	ThresholdFailed
)

// thresholdStateStrings is a map of ThresholdState values back to their
// constant names for pretty printing.
var thresholdStateStrings = map[ThresholdState]string{
	ThresholdInvalid:  "ThresholdInvalid",
	ThresholdDefined:  "ThresholdDefined",
	ThresholdStarted:  "ThresholdStarted",
	ThresholdLockedIn: "ThresholdLockedIn",
	ThresholdActive:   "ThresholdActive",
	ThresholdFailed:   "ThresholdFailed",
}

// String returns the ThresholdState as a human-readable name.
func (t ThresholdState) String() string {
	if s := thresholdStateStrings[t]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ThresholdState (%d)", int(t))
}

// ThresholdStats houses the signalling statistics of a deployment for the
// window that contains the block after a given node.
type ThresholdStats struct {
	// Period is the number of blocks in each window.
	Period uint32

	// Threshold is the number of signalling blocks required for lock in.
	Threshold uint32

	// Elapsed is the number of blocks of the current window that exist.
	Elapsed uint32

	// Count is the number of signalling blocks in the current window.
	Count uint32

	// Possible reports whether or not the threshold can still be reached in
	// the current window.
	Possible bool
}

// thresholdStateCache caches the threshold state of each window for a single
// deployment keyed by the hash of the last block of the previous window.
type thresholdStateCache = lru.Map[chainhash.Hash, ThresholdState]

// ThresholdChecker evaluates the deployment states of a chain for a given set
// of network parameters.  It keeps a bounded cache of window states for every
// deployment so repeated queries do not walk the chain again.
//
// It is safe for concurrent access.
type ThresholdChecker struct {
	params *chaincfg.Params

	mtx    sync.Mutex
	caches [chaincfg.DefinedDeployments]*thresholdStateCache
}

// NewThresholdChecker returns a threshold checker for the provided network
// parameters.
func NewThresholdChecker(params *chaincfg.Params) *ThresholdChecker {
	c := &ThresholdChecker{params: params}
	for i := range c.caches {
		c.caches[i] = lru.NewMap[chainhash.Hash, ThresholdState](
			thresholdStateCacheSize)
	}
	return c
}

// deployment returns the deployment for the provided id along with the cache
// of its window states.
func (c *ThresholdChecker) deployment(id chaincfg.DeploymentID) (*chaincfg.ConsensusDeployment, *thresholdStateCache, error) {
	if id >= chaincfg.DefinedDeployments {
		str := fmt.Sprintf("deployment ID %d does not exist", id)
		return nil, nil, contextError(ErrUnknownDeploymentID, str)
	}
	return &c.params.Deployments[id], c.caches[id], nil
}

// windowSize returns the number of blocks in each threshold window.
func (c *ThresholdChecker) windowSize() int32 {
	return int32(c.params.MinerConfirmationWindow)
}

// windowEnd returns the last block of the window prior to the window that
// contains the block after the provided node.  It returns nil when the block
// after the provided node is part of the first window.
func (c *ThresholdChecker) windowEnd(prevNode *BlockNode) *BlockNode {
	if prevNode == nil {
		return nil
	}
	window := c.windowSize()
	return prevNode.Ancestor(prevNode.height - (prevNode.height+1)%window)
}

// isSignalling returns whether or not the passed block version signals for
// the given deployment bit.
func isSignalling(version int32, bit uint8) bool {
	v := uint32(version)
	return v&VersionBitsTopMask == VersionBitsTopBits && v&(uint32(1)<<bit) != 0
}

// countSignals returns the number of blocks signalling for the deployment in
// the window that ends with the provided node.
func (c *ThresholdChecker) countSignals(node *BlockNode, deployment *chaincfg.ConsensusDeployment) uint32 {
	var count uint32
	for i := int32(0); i < c.windowSize() && node != nil; i++ {
		if isSignalling(node.version, deployment.BitNumber) {
			count++
		}
		node = node.parent
	}
	return count
}

// nextThresholdState returns the current rule change threshold state for the
// block AFTER the given node and deployment.  The cached value (if any) is
// used to avoid recalculating states of windows that were already evaluated.
//
// This function MUST be called with the checker lock held.
func (c *ThresholdChecker) nextThresholdState(prevNode *BlockNode, id chaincfg.DeploymentID, deployment *chaincfg.ConsensusDeployment, cache *thresholdStateCache) ThresholdState {
	// Deployments that are always active never go through the state machine.
	if deployment.IsAlwaysActive() {
		return ThresholdActive
	}

	// The threshold state for the window that contains the first block is
	// always defined, so walk back to the end of the previous window.
	prevNode = c.windowEnd(prevNode)

	// Iterate backwards through each of the previous confirmation windows to
	// find the most recently cached threshold state.
	window := c.windowSize()
	state := ThresholdDefined
	var neededStates []*BlockNode
	for prevNode != nil {
		// Nothing more to do if the state of the block is already
		// cached.
		if cached, ok := cache.Get(prevNode.hash); ok {
			state = cached
			break
		}

		// The state is simply defined if the start time hasn't been reached
		// yet.
		medianTime := prevNode.CalcPastMedianTime()
		if medianTime.Unix() < deployment.StartTime {
			cache.Put(prevNode.hash, ThresholdDefined)
			break
		}

		// Add this node to the list of nodes that need the state
		// calculated and cached.
		neededStates = append(neededStates, prevNode)

		// Get the ancestor that is the last block of the previous
		// confirmation window.
		prevNode = prevNode.RelativeAncestor(window)
	}

	// Since each threshold state depends on the state of the previous
	// window, iterate starting from the oldest unknown window.
	threshold := c.params.RuleChangeActivationThreshold
	for neededNum := len(neededStates) - 1; neededNum >= 0; neededNum-- {
		prevNode := neededStates[neededNum]
		prevState := state

		switch state {
		case ThresholdDefined:
			// The deployment of the rule change fails if it times out
			// before it is started.
			medianTime := prevNode.CalcPastMedianTime().Unix()
			if deployment.HasTimeout() && medianTime >= deployment.Timeout {
				state = ThresholdFailed
				break
			}

			// The state for the rule moves to the started state once its
			// start time has been reached.
			if medianTime >= deployment.StartTime {
				state = ThresholdStarted
			}

		case ThresholdStarted:
			// The rule change locks in once enough blocks in the window
			// signalled for it.
			if c.countSignals(prevNode, deployment) >= threshold {
				state = ThresholdLockedIn
				break
			}

			// Otherwise the deployment fails when it times out.
			medianTime := prevNode.CalcPastMedianTime().Unix()
			if deployment.HasTimeout() && medianTime >= deployment.Timeout {
				state = ThresholdFailed
			}

		case ThresholdLockedIn:
			// The new rule becomes active when its previous state
			// was locked in.
			state = ThresholdActive

		// Nothing to do if the previous state is active or failed since
		// they are both terminal states.
		case ThresholdActive:
		case ThresholdFailed:
		}

		if state != prevState {
			log.Debugf("Deployment %s moved from %v to %v at height %d", id,
				prevState, state, prevNode.height+1)
		}

		// Update the cache to avoid recalculating the state in the
		// future.
		cache.Put(prevNode.hash, state)
	}

	return state
}

// DeploymentState returns the current rule change threshold state of the
// given deployment ID for the block AFTER the provided node.  A nil node
// requests the state for the genesis block.
//
// This function is safe for concurrent access.
func (c *ThresholdChecker) DeploymentState(prevNode *BlockNode, id chaincfg.DeploymentID) (ThresholdState, error) {
	deployment, cache, err := c.deployment(id)
	if err != nil {
		return ThresholdInvalid, err
	}

	c.mtx.Lock()
	state := c.nextThresholdState(prevNode, id, deployment, cache)
	c.mtx.Unlock()
	return state, nil
}

// IsDeploymentActive returns whether or not the given deployment is active for
// the block AFTER the provided node.
//
// This function is safe for concurrent access.
func (c *ThresholdChecker) IsDeploymentActive(prevNode *BlockNode, id chaincfg.DeploymentID) (bool, error) {
	state, err := c.DeploymentState(prevNode, id)
	if err != nil {
		return false, err
	}
	return state == ThresholdActive, nil
}

// StateSinceHeight returns the height of the first block of the window in
// which the given deployment entered the state it has for the block AFTER the
// provided node.  Deployments that are still defined, along with those that
// are always active, report zero.
//
// This function is safe for concurrent access.
func (c *ThresholdChecker) StateSinceHeight(prevNode *BlockNode, id chaincfg.DeploymentID) (int32, error) {
	deployment, cache, err := c.deployment(id)
	if err != nil {
		return 0, err
	}
	if deployment.IsAlwaysActive() {
		return 0, nil
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	initialState := c.nextThresholdState(prevNode, id, deployment, cache)
	if initialState == ThresholdDefined {
		return 0, nil
	}

	// Walk back one window at a time for as long as the state of the
	// previous window matches.  The end of each window is the previous node
	// of the first block of the next one.
	window := c.windowSize()
	prevNode = c.windowEnd(prevNode)
	previousWindowEnd := prevNode.RelativeAncestor(window)
	for previousWindowEnd != nil {
		state := c.nextThresholdState(previousWindowEnd, id, deployment, cache)
		if state != initialState {
			break
		}
		prevNode = previousWindowEnd
		previousWindowEnd = prevNode.RelativeAncestor(window)
	}

	return prevNode.height + 1, nil
}

// Stats returns the signalling statistics of the given deployment for the
// window that contains the block AFTER the provided node.
//
// This function is safe for concurrent access.
func (c *ThresholdChecker) Stats(prevNode *BlockNode, id chaincfg.DeploymentID) (ThresholdStats, error) {
	deployment, _, err := c.deployment(id)
	if err != nil {
		return ThresholdStats{}, err
	}

	stats := ThresholdStats{
		Period:    c.params.MinerConfirmationWindow,
		Threshold: c.params.RuleChangeActivationThreshold,
	}
	// Count the signalling blocks from the start of the window through the
	// provided node.
	if prevNode != nil {
		stats.Elapsed = uint32((prevNode.height + 1) % c.windowSize())
	}
	for i, node := uint32(0), prevNode; i < stats.Elapsed && node != nil; i++ {
		if isSignalling(node.version, deployment.BitNumber) {
			stats.Count++
		}
		node = node.parent
	}
	stats.Possible = stats.Period-stats.Threshold >= stats.Elapsed-stats.Count
	return stats, nil
}

// ComputeBlockVersion returns the block version a miner should use for the
// block AFTER the provided node.  The top bits signal version bits semantics
// and the bit of every deployment that is started or locked in is set.
//
// This function is safe for concurrent access.
func (c *ThresholdChecker) ComputeBlockVersion(prevNode *BlockNode) (int32, error) {
	version := uint32(VersionBitsTopBits)
	for id := chaincfg.DeploymentID(0); id < chaincfg.DefinedDeployments; id++ {
		state, err := c.DeploymentState(prevNode, id)
		if err != nil {
			return 0, err
		}
		if state == ThresholdStarted || state == ThresholdLockedIn {
			version |= uint32(1) << c.params.Deployments[id].BitNumber
		}
	}
	return int32(version), nil
}

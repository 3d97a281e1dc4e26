// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// LLMQType identifies a long living masternode quorum configuration.  The
// numeric values are part of the network protocol.
type LLMQType uint8

// These constants define the known quorum types.
const (
	LLMQNone LLMQType = 0xff

	// LLMQ50_60 is a 50 member quorum where 60% must sign.
	LLMQ50_60 LLMQType = 1

	// LLMQ400_60 is a 400 member quorum where 60% must sign.
	LLMQ400_60 LLMQType = 2

	// LLMQ400_85 is a 400 member quorum where 85% must sign.
	LLMQ400_85 LLMQType = 3

	// LLMQ5_60 is a 5 member quorum where 60% must sign.  It is only used
	// on the regression test network.
	LLMQ5_60 LLMQType = 100
)

// String returns the LLMQType as a human-readable name.
func (t LLMQType) String() string {
	if q, ok := QuorumParamsByType(t); ok {
		return q.Name
	}
	if t == LLMQNone {
		return "llmq_none"
	}
	return fmt.Sprintf("Unknown LLMQType (%d)", uint8(t))
}

// QuorumParams describes the size, signing threshold and distributed key
// generation schedule of a quorum type.
type QuorumParams struct {
	Type LLMQType
	Name string

	// Size is the number of members in a quorum.  MinSize is the smallest
	// number of valid members a quorum may be formed with.
	Size    int32
	MinSize int32

	// Threshold is the number of members required to create a recovered
	// threshold signature.
	Threshold int32

	// DKGInterval is the number of blocks between the starts of consecutive
	// key generation sessions.
	DKGInterval int32

	// DKGPhaseBlocks is the number of blocks of each key generation phase.
	DKGPhaseBlocks int32

	// DKGMiningWindowStart and DKGMiningWindowEnd delimit, as offsets from
	// the session start, the blocks that may include the final commitment.
	DKGMiningWindowStart int32
	DKGMiningWindowEnd   int32

	// DKGBadVotesThreshold is the number of complaints needed to mark a
	// member as bad.
	DKGBadVotesThreshold int32

	// SigningActiveQuorumCount is the number of recent quorums that take
	// part in signing.
	SigningActiveQuorumCount int32

	// KeepOldConnections is the number of old quorums whose connections are
	// kept open.
	KeepOldConnections int32
}

// Validate returns an error when the record is internally inconsistent.  It is
// never called while constructing network parameters.
func (q *QuorumParams) Validate() error {
	switch {
	case q.MinSize <= 0 || q.MinSize > q.Size:
		str := fmt.Sprintf("quorum %s minimum size %d is not in (0, %d]",
			q.Name, q.MinSize, q.Size)
		return contextError(ErrInvalidQuorum, str)

	case q.Threshold <= 0 || q.Threshold > q.MinSize:
		str := fmt.Sprintf("quorum %s threshold %d is not in (0, %d]",
			q.Name, q.Threshold, q.MinSize)
		return contextError(ErrInvalidQuorum, str)

	case q.DKGPhaseBlocks <= 0 ||
		q.DKGMiningWindowStart < 5*q.DKGPhaseBlocks:
		str := fmt.Sprintf("quorum %s mining window starts at %d before "+
			"the five key generation phases of %d blocks end", q.Name,
			q.DKGMiningWindowStart, q.DKGPhaseBlocks)
		return contextError(ErrInvalidQuorum, str)

	case q.DKGMiningWindowEnd < q.DKGMiningWindowStart ||
		q.DKGMiningWindowEnd >= q.DKGInterval:
		str := fmt.Sprintf("quorum %s mining window [%d, %d] is not "+
			"within the %d block interval", q.Name,
			q.DKGMiningWindowStart, q.DKGMiningWindowEnd, q.DKGInterval)
		return contextError(ErrInvalidQuorum, str)

	// The bad votes threshold may exceed the quorum size, which disables
	// marking members as bad.
	case q.DKGBadVotesThreshold <= 0:
		str := fmt.Sprintf("quorum %s bad votes threshold %d is not "+
			"positive", q.Name, q.DKGBadVotesThreshold)
		return contextError(ErrInvalidQuorum, str)

	case q.SigningActiveQuorumCount <= 0:
		str := fmt.Sprintf("quorum %s has no active signing quorums",
			q.Name)
		return contextError(ErrInvalidQuorum, str)
	}
	return nil
}

// The quorum catalog.  Networks refer to these records by pointer and they
// are never modified after package initialization.
var (
	llmq5_60 = QuorumParams{
		Type:                     LLMQ5_60,
		Name:                     "llmq_5_60",
		Size:                     5,
		MinSize:                  3,
		Threshold:                3,
		DKGInterval:              24, // one DKG per hour
		DKGPhaseBlocks:           2,
		DKGMiningWindowStart:     10, // DKGPhaseBlocks * 5 = after finalization
		DKGMiningWindowEnd:       18,
		DKGBadVotesThreshold:     8,
		SigningActiveQuorumCount: 2, // just a few ones to allow easier testing
		KeepOldConnections:       3,
	}

	llmq50_60 = QuorumParams{
		Type:                     LLMQ50_60,
		Name:                     "llmq_50_60",
		Size:                     50,
		MinSize:                  40,
		Threshold:                30,
		DKGInterval:              24, // one DKG per hour
		DKGPhaseBlocks:           2,
		DKGMiningWindowStart:     10, // DKGPhaseBlocks * 5 = after finalization
		DKGMiningWindowEnd:       18,
		DKGBadVotesThreshold:     40,
		SigningActiveQuorumCount: 24, // a full day worth of LLMQs
		KeepOldConnections:       25,
	}

	llmq400_60 = QuorumParams{
		Type:                     LLMQ400_60,
		Name:                     "llmq_400_60",
		Size:                     400,
		MinSize:                  300,
		Threshold:                240,
		DKGInterval:              24 * 12, // one DKG every 12 hours
		DKGPhaseBlocks:           4,
		DKGMiningWindowStart:     20, // DKGPhaseBlocks * 5 = after finalization
		DKGMiningWindowEnd:       28,
		DKGBadVotesThreshold:     300,
		SigningActiveQuorumCount: 4, // two days worth of LLMQs
		KeepOldConnections:       5,
	}

	// Used for deployment and min-proto-version signalling, so it needs a
	// higher threshold.
	llmq400_85 = QuorumParams{
		Type:                     LLMQ400_85,
		Name:                     "llmq_400_85",
		Size:                     400,
		MinSize:                  350,
		Threshold:                340,
		DKGInterval:              24 * 24, // one DKG every 24 hours
		DKGPhaseBlocks:           4,
		DKGMiningWindowStart:     20, // DKGPhaseBlocks * 5 = after finalization
		DKGMiningWindowEnd:       48, // give it a larger mining window
		DKGBadVotesThreshold:     300,
		SigningActiveQuorumCount: 4, // four days worth of LLMQs
		KeepOldConnections:       5,
	}

	quorumCatalog = map[LLMQType]*QuorumParams{
		LLMQ5_60:   &llmq5_60,
		LLMQ50_60:  &llmq50_60,
		LLMQ400_60: &llmq400_60,
		LLMQ400_85: &llmq400_85,
	}
)

// QuorumParamsByType returns the catalog record for the passed quorum type
// along with whether or not the type is known.  The returned record is a copy
// of the catalog entry.
func QuorumParamsByType(t LLMQType) (*QuorumParams, bool) {
	q, ok := quorumCatalog[t]
	if !ok {
		return nil, false
	}
	qCopy := *q
	return &qCopy, true
}

// quorumSelection builds a network quorum map from the passed catalog types.
func quorumSelection(types ...LLMQType) map[LLMQType]*QuorumParams {
	m := make(map[LLMQType]*QuorumParams, len(types))
	for _, t := range types {
		q, ok := quorumCatalog[t]
		if !ok {
			panic(fmt.Sprintf("quorum type %d is not in the catalog", t))
		}
		m[t] = q
	}
	return m
}

// QuorumParams returns the parameters of the passed quorum type when the
// network uses it.  The record is shared by every network and must not be
// modified.
func (p *Params) QuorumParams(t LLMQType) (*QuorumParams, error) {
	q, ok := p.LLMQs[t]
	if !ok {
		str := fmt.Sprintf("quorum type %v is not used on network %s", t,
			p.Name)
		return nil, contextError(ErrUnknownQuorumType, str)
	}
	return q, nil
}

// ChainLocksQuorum returns the parameters of the quorum type used to sign
// chain locks.
func (p *Params) ChainLocksQuorum() *QuorumParams {
	return p.LLMQs[p.LLMQTypeChainLocks]
}

// InstantSendQuorum returns the parameters of the quorum type used to sign
// instant send locks.
func (p *Params) InstantSendQuorum() *QuorumParams {
	return p.LLMQs[p.LLMQTypeInstantSend]
}

// IsLLMQActive returns whether quorums are formed at the passed height.
func (p *Params) IsLLMQActive(height int32) bool {
	return height >= p.LLMQActivationHeight
}

// Copyright (c) 2017-2019 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/bitgreen/bitgreend/blockchainutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/jrick/bitset"
)

// MaxDeploymentBit is the highest block version bit that may be assigned to a
// deployment.  The bits above it form the version bits top mask.
const MaxDeploymentBit = 28

// validateCheckpoints ensures checkpoints are ordered by strictly increasing
// height and carry a hash.
func validateCheckpoints(p *Params) error {
	for i, cp := range p.Checkpoints {
		if cp.Hash == nil {
			str := fmt.Sprintf("checkpoint at height %d has no hash",
				cp.Height)
			return contextError(ErrInvalidParams, str)
		}
		if i > 0 && cp.Height <= p.Checkpoints[i-1].Height {
			str := fmt.Sprintf("checkpoint at height %d follows height %d",
				cp.Height, p.Checkpoints[i-1].Height)
			return contextError(ErrInvalidParams, str)
		}
	}
	return nil
}

// validateHeightTables ensures every height-indexed stake table is usable.
func validateHeightTables(p *Params) error {
	tables := []struct {
		name  string
		table HeightTable
	}{
		{"MinStakeAge", p.MinStakeAge},
		{"MaxStakeAge", p.MaxStakeAge},
		{"MinStakeWeight", p.MinStakeWeight},
		{"MinStakeAmount", p.MinStakeAmount},
	}
	for _, t := range tables {
		if err := t.table.validate(t.name); err != nil {
			return err
		}
	}
	return nil
}

// validateQuorumRefs ensures the quorum types used for chain locks and instant
// send are part of the network quorum selection and that every selected record
// is the catalog record of its key.
func validateQuorumRefs(p *Params) error {
	for t, q := range p.LLMQs {
		if q == nil || q.Type != t {
			str := fmt.Sprintf("quorum selection entry %d does not hold "+
				"its own catalog record", uint8(t))
			return contextError(ErrInvalidParams, str)
		}
	}
	refs := []struct {
		name string
		t    LLMQType
	}{
		{"chain locks", p.LLMQTypeChainLocks},
		{"instant send", p.LLMQTypeInstantSend},
	}
	for _, ref := range refs {
		if _, ok := p.LLMQs[ref.t]; !ok {
			str := fmt.Sprintf("%s quorum type %v is not selected on "+
				"network %s", ref.name, ref.t, p.Name)
			return contextError(ErrInvalidParams, str)
		}
	}
	return nil
}

// validateDeployments ensures each deployment uses a distinct usable version
// bit.
func validateDeployments(p *Params) error {
	used := bitset.NewBytes(MaxDeploymentBit + 1)
	for id := range p.Deployments {
		d := &p.Deployments[id]
		bit := int(d.BitNumber)
		if bit > MaxDeploymentBit {
			str := fmt.Sprintf("deployment %s uses bit %d above the maximum "+
				"of %d", DeploymentID(id), bit, MaxDeploymentBit)
			return contextError(ErrInvalidParams, str)
		}
		if used.Get(bit) {
			str := fmt.Sprintf("deployment %s reuses bit %d",
				DeploymentID(id), bit)
			return contextError(ErrInvalidParams, str)
		}
		used.Set(bit)
	}
	if p.RuleChangeActivationThreshold == 0 ||
		p.RuleChangeActivationThreshold > p.MinerConfirmationWindow {
		str := fmt.Sprintf("rule change activation threshold %d is not in "+
			"(0, %d]", p.RuleChangeActivationThreshold,
			p.MinerConfirmationWindow)
		return contextError(ErrInvalidParams, str)
	}
	return nil
}

// validateSporkAddresses ensures every spork address is a base58check encoded
// pay-to-pubkey-hash address of the network.
func validateSporkAddresses(p *Params) error {
	if p.MinSporkKeys <= 0 || p.MinSporkKeys > len(p.SporkAddresses) {
		str := fmt.Sprintf("minimum spork keys %d is not in (0, %d]",
			p.MinSporkKeys, len(p.SporkAddresses))
		return contextError(ErrInvalidParams, str)
	}
	for _, addr := range p.SporkAddresses {
		payload, version, err := base58.CheckDecode(addr)
		if err != nil {
			str := fmt.Sprintf("spork address %s: %v", addr, err)
			return contextError(ErrInvalidParams, str)
		}
		if version != p.PubKeyHashAddrID || len(payload) != 20 {
			str := fmt.Sprintf("spork address %s is not a pay-to-pubkey-"+
				"hash address of network %s", addr, p.Name)
			return contextError(ErrInvalidParams, str)
		}
	}
	return nil
}

// validatePowLimit ensures the compact proof of work limit matches the full
// limit and that the genesis block satisfies it.
func validatePowLimit(p *Params) error {
	limit := blockchainutil.NewDifficultyFromBigInt(p.PowLimit)
	if limit.ToCompact() != p.PowLimitBits {
		str := fmt.Sprintf("proof of work limit bits %08x do not encode "+
			"limit %064x", p.PowLimitBits, p.PowLimit)
		return contextError(ErrInvalidParams, str)
	}
	if err := p.CheckGenesisProofOfWork(); err != nil {
		str := fmt.Sprintf("genesis block of network %s: %v", p.Name, err)
		return contextError(ErrInvalidParams, str)
	}
	return nil
}

// validateParams ensures hard-coded network parameters satisfy their
// structural invariants.
func validateParams(p *Params) error {
	checks := []func(*Params) error{
		validateCheckpoints,
		validateHeightTables,
		validateQuorumRefs,
		validateDeployments,
		validateSporkAddresses,
		validatePowLimit,
	}
	for _, check := range checks {
		if err := check(p); err != nil {
			return err
		}
	}
	return nil
}

// mustValidateParams panics when the passed parameters are invalid.  It must
// only be called with hard-coded parameters.
func mustValidateParams(p *Params) {
	if err := validateParams(p); err != nil {
		panic(fmt.Sprintf("invalid parameters for network %s: %v", p.Name,
			err))
	}
}

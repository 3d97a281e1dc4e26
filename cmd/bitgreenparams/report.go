// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/bitgreen/bitgreend/blockchainutil"
	"github.com/bitgreen/bitgreend/chaincfg"
	"github.com/bitgreen/bitgreend/internal/blockchain"
	"github.com/davecgh/go-spew/spew"
)

// formatDeploymentTime returns a human-readable form of a deployment start
// time or timeout.
func formatDeploymentTime(t int64) string {
	switch t {
	case chaincfg.AlwaysActive:
		return "always active"
	case chaincfg.NoTimeout:
		return "never"
	}
	return fmt.Sprintf("%d (%s)", t, time.Unix(t, 0).UTC().Format(time.RFC3339))
}

// writeSummary writes the identity, genesis, proof of work and staking
// parameters of the network.
func writeSummary(w io.Writer, p *chaincfg.Params) {
	powLimit := blockchainutil.NewDifficultyFromBigInt(p.PowLimit)

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "Network:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Message start:\t%08x\n", uint32(p.Net))
	fmt.Fprintf(tw, "Default port:\t%s\n", p.DefaultPort)
	fmt.Fprintf(tw, "Genesis hash:\t%v\n", p.GenesisHash)
	fmt.Fprintf(tw, "Genesis merkle root:\t%v\n", p.GenesisBlock.Header.MerkleRoot)
	fmt.Fprintf(tw, "Genesis time:\t%s\n", p.Genesis.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(tw, "Pow limit:\t%s\n", powLimit.ToHexString())
	fmt.Fprintf(tw, "Pow limit bits:\t%08x (%d leading zero bits)\n",
		p.PowLimitBits, p.PowLimitZeroBits())
	fmt.Fprintf(tw, "Pow target spacing:\t%v\n", p.PowTargetSpacing)
	fmt.Fprintf(tw, "Last pow block:\t%d\n", p.LastPoWBlock)
	fmt.Fprintf(tw, "Pos target spacing:\t%v\n", p.PosTargetSpacing)
	fmt.Fprintf(tw, "Stake enforcement height:\t%d\n", p.StakeEnforcementHeight)
	fmt.Fprintf(tw, "Min stake amount:\t%v BITG\n",
		p.MinStakeAmountAt(p.LastPoWBlock+1).ToBTC())
	fmt.Fprintf(tw, "Min stake age:\t%v\n", p.MinStakeAgeAt(p.LastPoWBlock+1))
	fmt.Fprintf(tw, "Superblock cycle:\t%d from height %d\n", p.SuperblockCycle,
		p.SuperblockStartBlock)
	fmt.Fprintf(tw, "Address prefixes:\tpubkey hash %d, script hash %d, "+
		"private key %d\n", p.PubKeyHashAddrID, p.ScriptHashAddrID,
		p.PrivateKeyID)
	fmt.Fprintf(tw, "HD key ids:\tprivate %x, public %x\n", p.HDPrivateKeyID,
		p.HDPublicKeyID)
	fmt.Fprintf(tw, "Bech32 prefix:\t%s\n", p.Bech32HRPSegwit)
	fmt.Fprintf(tw, "Spork keys required:\t%d of %d\n", p.MinSporkKeys,
		len(p.SporkAddresses))
	tw.Flush()
}

// writeCheckpoints writes the checkpoints of the network from oldest to newest.
func writeCheckpoints(w io.Writer, p *chaincfg.Params) {
	fmt.Fprintf(w, "Checkpoints (%d):\n", len(p.Checkpoints))
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', tabwriter.AlignRight)
	for _, checkpoint := range p.Checkpoints {
		fmt.Fprintf(tw, "\t%d\t %v\t\n", checkpoint.Height, checkpoint.Hash)
	}
	tw.Flush()
}

// writeQuorums writes the quorums of the network ordered by type along with
// the roles they serve.  It returns an error when any quorum is inconsistent.
func writeQuorums(w io.Writer, p *chaincfg.Params) error {
	types := make([]chaincfg.LLMQType, 0, len(p.LLMQs))
	for t := range p.LLMQs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fmt.Fprintf(w, "Quorums (%d, active from height %d):\n", len(types),
		p.LLMQActivationHeight)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  name\tsize\tmin\tthreshold\tinterval\tphase\twindow\tbad votes\tsigning\troles")
	for _, t := range types {
		q := p.LLMQs[t]
		if err := q.Validate(); err != nil {
			tw.Flush()
			return err
		}
		var roles string
		if t == p.LLMQTypeChainLocks {
			roles += "chainlocks "
		}
		if t == p.LLMQTypeInstantSend {
			roles += "instantsend"
		}
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%d\t%d\t%d-%d\t%d\t%d\t%s\n", q.Name,
			q.Size, q.MinSize, q.Threshold, q.DKGInterval, q.DKGPhaseBlocks,
			q.DKGMiningWindowStart, q.DKGMiningWindowEnd,
			q.DKGBadVotesThreshold, q.SigningActiveQuorumCount, roles)
	}
	return tw.Flush()
}

// writeDeployments writes the deployments of the network along with their
// state for the block after the genesis block and the block version a miner
// would use for it.
func writeDeployments(w io.Writer, p *chaincfg.Params) error {
	checker := blockchain.NewThresholdChecker(p)
	genesis := blockchain.NewBlockNode(&p.GenesisBlock.Header, nil)

	fmt.Fprintf(w, "Deployments (threshold %d of %d blocks):\n",
		p.RuleChangeActivationThreshold, p.MinerConfirmationWindow)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  name\tbit\tstart\ttimeout\tstate")
	for id := chaincfg.DeploymentID(0); id < chaincfg.DefinedDeployments; id++ {
		d, err := p.Deployment(id)
		if err != nil {
			return err
		}
		state, err := checker.DeploymentState(genesis, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\t%v\n", id, d.BitNumber,
			formatDeploymentTime(d.StartTime), formatDeploymentTime(d.Timeout),
			state)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	blockVersion, err := checker.ComputeBlockVersion(genesis)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Block version after genesis: %08x\n", uint32(blockVersion))
	return nil
}

// writeReport writes every section of the report requested by the config.
func writeReport(w io.Writer, cfg *config, p *chaincfg.Params) error {
	if cfg.Dump {
		spew.Fdump(w, p)
		return nil
	}

	writeSummary(w, p)
	if cfg.Checkpoints {
		fmt.Fprintln(w)
		writeCheckpoints(w, p)
	}
	if cfg.Quorums {
		fmt.Fprintln(w)
		if err := writeQuorums(w, p); err != nil {
			return err
		}
	}
	if cfg.Deployments {
		fmt.Fprintln(w)
		if err := writeDeployments(w, p); err != nil {
			return err
		}
	}
	return nil
}

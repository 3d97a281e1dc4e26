// Copyright (c) 2018-2021 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/bitgreen/bitgreend/blockchainutil"
	"github.com/btcsuite/btcd/btcutil"
)

// RegNetParams returns the network parameters for the regression test network.
// This should not be confused with the public test network.  The purpose of
// this network is primarily for unit tests and functional tests of a single
// node.
//
// Since this network is only intended for unit testing, its values are subject
// to change even if it would cause a hard fork.
func RegNetParams() *Params {
	// The default deployments never fail to apply.
	p, err := RegNetParamsWithOverrides(nil)
	if err != nil {
		panic(err)
	}
	return p
}

// RegNetParamsWithOverrides returns the network parameters for the regression
// test network with the passed deployment start times and timeouts applied in
// order.  It is the only way to change deployment parameters of any network.
func RegNetParamsWithOverrides(overrides []DeploymentOverride) (*Params, error) {
	// regNetPowLimit is the highest proof of work value a block can have
	// for the regression test network.  It is the value 2^255 - 1.
	regNetPowLimit := blockchainutil.NewDifficultyFromHashString(
		"7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	genesis := GenesisSpec{
		Message:      genesisMessage,
		OutputScript: payToPubKeyScript(hexDecode(genesisPubKey)),
		Timestamp:    time.Unix(1565017975, 0), // 2019-08-05 15:12:55 +0000 UTC
		Nonce:        20542302,
		Bits:         0x207fffff,
		Version:      1,
		Reward:       0,
	}
	genesisBlock, genesisHash := mustBuildGenesis(genesis,
		"100a3271b95d1a817101bcbd7045ad14c9799cb34e1cb6071973c8932ae48b6a",
		genesisMerkleRoot)

	const lastPoWBlock = 1000

	p := &Params{
		Name:                  RegNetName,
		Net:                   0x78b590f2,
		DefaultPort:           "29333",
		PruneAfterHeight:      1000,
		AssumedBlockchainSize: 0,
		AssumedChainStateSize: 0,

		// Chain parameters
		GenesisBlock:                genesisBlock,
		GenesisHash:                 genesisHash,
		Genesis:                     genesis,
		PowLimit:                    regNetPowLimit.ToBigInt(),
		PowLimitBits:                regNetPowLimit.ToCompact(),
		PowTargetTimespan:           time.Hour * 24 * 14,
		PowTargetSpacing:            time.Minute * 10,
		PowAllowMinDifficultyBlocks: true,
		PowNoRetargeting:            true,
		SubsidyHalvingInterval:      150,

		// Proof of stake parameters
		PosTargetSpacing:       time.Minute * 2,
		PosTargetTimespan:      time.Minute * 40,
		ModifierInterval:       time.Minute,
		LastPoWBlock:           lastPoWBlock,
		StakeEnforcementHeight: 0,
		MinStakeHistory:        0,
		MinStakeAge:            zeroHeightTable(),
		MaxStakeAge:            zeroHeightTable(),
		MinStakeWeight:         zeroHeightTable(),
		MinStakeAmount: HeightTable{
			{Height: 200, Value: 1 * btcutil.SatoshiPerBitcoin},
		},

		// The script rules activate with the switch to proof of stake.
		BIP34Height: lastPoWBlock,
		BIP65Height: lastPoWBlock,
		BIP66Height: lastPoWBlock,

		// Consensus rule change deployments.
		RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
		MinerConfirmationWindow:       144,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber: 28,
				StartTime: 0,
				Timeout:   NoTimeout,
			},
			DeploymentCSV: {
				BitNumber: 0,
				StartTime: 0,
				Timeout:   NoTimeout,
			},
			DeploymentSegwit: {
				BitNumber: 1,
				StartTime: AlwaysActive,
				Timeout:   NoTimeout,
			},
		},

		// Governance
		SuperblockCycle:                10,
		SuperblockStartBlock:           1500,
		GovernanceMinQuorum:            1,
		GovernanceFilterElements:       100,
		BudgetPaymentsStartBlock:       1000,
		BudgetPaymentsCycleBlocks:      50,
		BudgetPaymentsWindowBlocks:     10,
		MasternodeMinimumConfirmations: 1,
		FulfilledRequestExpireTime:     time.Minute * 5,

		// Long living quorums
		LLMQs:                quorumSelection(LLMQ5_60, LLMQ50_60),
		LLMQTypeChainLocks:   LLMQ5_60,
		LLMQTypeInstantSend:  LLMQ5_60,
		LLMQActivationHeight: 500,

		InstantSendConfirmationsRequired: 2,
		InstantSendKeepLock:              6,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: nil,

		MinimumChainWork: new(big.Int),
		SporkAddresses:   []string{"gprpehZBigGDp7sNMjEKY46afAd9BWtd29"},
		MinSporkKeys:     1,

		DefaultConsistencyChecks: true,
		RequireStandard:          true,
		IsTestChain:              true,
		MiningRequiresPeers:      false,
		AllowMultiplePorts:       true,

		// Address encoding magics
		PubKeyHashAddrID: 98, // starts with g
		ScriptHashAddrID: 12,
		PrivateKeyID:     108,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		// Human-readable part for Bech32 encoded segwit addresses, as defined in
		// BIP 173.
		Bech32HRPSegwit: "bgrt",
	}
	if err := p.applyDeploymentOverrides(overrides); err != nil {
		return nil, err
	}
	if err := validateParams(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
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

// zeroHeightTable is used for height-indexed stake values a network does not
// define.
func zeroHeightTable() HeightTable {
	return HeightTable{{Height: 0, Value: 0}}
}

// TestNetParams returns the network parameters for the public test network.
// Every call returns a newly built and validated instance.
func TestNetParams() *Params {
	// testPowLimit is the highest proof of work value a block can have for
	// the test network.  It is the value 0xffff * 2^220.
	testPowLimit := blockchainutil.NewDifficultyFromHashString(
		"00000ffff0000000000000000000000000000000000000000000000000000000")

	genesis := GenesisSpec{
		Message:      genesisMessage,
		OutputScript: payToPubKeyScript(hexDecode(genesisPubKey)),
		Timestamp:    time.Unix(1565017975, 0), // 2019-08-05 15:12:55 +0000 UTC
		Nonce:        21212214,
		Bits:         0x1e0ffff0,
		Version:      1,
		Reward:       0,
	}
	genesisBlock, genesisHash := mustBuildGenesis(genesis,
		"00000546a6b03a54ae05f94119e37c55202e90a953058c35364d112d41ded06a",
		genesisMerkleRoot)

	p := &Params{
		Name:                  TestNetName,
		Net:                   0x4bb06ba3,
		DefaultPort:           "19333",
		PruneAfterHeight:      1000,
		AssumedBlockchainSize: 1,
		AssumedChainStateSize: 0,

		// Chain parameters
		GenesisBlock:                genesisBlock,
		GenesisHash:                 genesisHash,
		Genesis:                     genesis,
		PowLimit:                    testPowLimit.ToBigInt(),
		PowLimitBits:                testPowLimit.ToCompact(),
		PowTargetTimespan:           time.Hour * 24 * 14,
		PowTargetSpacing:            time.Minute,
		PowAllowMinDifficultyBlocks: true,
		PowNoRetargeting:            false,
		SubsidyHalvingInterval:      210000,

		// Proof of stake parameters
		PosTargetSpacing:       time.Minute * 2,
		PosTargetTimespan:      time.Minute * 40,
		ModifierInterval:       time.Minute,
		LastPoWBlock:           200,
		StakeEnforcementHeight: 200,
		MinStakeHistory:        10,
		MinStakeAge:            zeroHeightTable(),
		MaxStakeAge:            zeroHeightTable(),
		MinStakeWeight:         zeroHeightTable(),
		MinStakeAmount: HeightTable{
			{Height: 200, Value: 1 * btcutil.SatoshiPerBitcoin},
		},

		// Chain rule activation
		BIP34Height: 200,
		BIP65Height: 200,
		BIP66Height: 200,

		// Consensus rule change deployments.
		RuleChangeActivationThreshold: 1512, // 75% of MinerConfirmationWindow
		MinerConfirmationWindow:       2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber: 28,
				StartTime: 1199145601, // January 1, 2008 UTC
				Timeout:   1230767999, // December 31, 2008 UTC
			},
			DeploymentCSV: {
				BitNumber: 0,
				StartTime: 1456790400, // March 1st, 2016
				Timeout:   1493596800, // May 1st, 2017
			},
			DeploymentSegwit: {
				BitNumber: 1,
				StartTime: 1462060800, // May 1st, 2016
				Timeout:   1493596800, // May 1st, 2017
			},
		},

		// Governance.  Superblocks can be issued hourly.
		SuperblockCycle:                24,
		SuperblockStartBlock:           300,
		GovernanceMinQuorum:            1,
		GovernanceFilterElements:       500,
		BudgetPaymentsStartBlock:       200,
		BudgetPaymentsCycleBlocks:      50,
		BudgetPaymentsWindowBlocks:     10,
		MasternodeMinimumConfirmations: 1,
		FulfilledRequestExpireTime:     time.Minute * 5,

		// Long living quorums
		LLMQs:                quorumSelection(LLMQ50_60, LLMQ400_60, LLMQ400_85),
		LLMQTypeChainLocks:   LLMQ50_60,
		LLMQTypeInstantSend:  LLMQ50_60,
		LLMQActivationHeight: 50,

		InstantSendConfirmationsRequired: 2,
		InstantSendKeepLock:              6,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: nil,

		MinimumChainWork: new(big.Int),
		SporkAddresses:   []string{"gprpehZBigGDp7sNMjEKY46afAd9BWtd29"},
		MinSporkKeys:     1,

		DefaultConsistencyChecks: false,
		RequireStandard:          false,
		IsTestChain:              true,
		MiningRequiresPeers:      true,
		AllowMultiplePorts:       false,

		// Address encoding magics
		PubKeyHashAddrID: 98, // starts with g
		ScriptHashAddrID: 12,
		PrivateKeyID:     108,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		// Human-readable part for Bech32 encoded segwit addresses, as defined in
		// BIP 173.
		Bech32HRPSegwit: "tbg",
	}
	mustValidateParams(p)
	return p
}

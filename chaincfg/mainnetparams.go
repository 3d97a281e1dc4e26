// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
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

// MainNetParams returns the network parameters for the main BitGreen network.
// Every call returns a newly built and validated instance.
func MainNetParams() *Params {
	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^236 - 1.
	mainPowLimit := blockchainutil.NewDifficultyFromHashString(
		"00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	genesis := GenesisSpec{
		Message:      genesisMessage,
		OutputScript: payToPubKeyScript(hexDecode(genesisPubKey)),
		Timestamp:    time.Unix(1574334000, 0), // 2019-11-21 11:00:00 +0000 UTC
		Nonce:        27296764,
		Bits:         0x1e0ffff0,
		Version:      1,
		Reward:       0,
	}
	genesisBlock, genesisHash := mustBuildGenesis(genesis,
		"0000025289d6b03cbda4950e825cd865185f34fbb3e098295534b63d78beba15",
		genesisMerkleRoot)

	p := &Params{
		Name:                  MainNetName,
		Net:                   0x1f06a4e4,
		DefaultPort:           "9333",
		PruneAfterHeight:      100000,
		AssumedBlockchainSize: 1,
		AssumedChainStateSize: 0,

		// Chain parameters
		GenesisBlock:                genesisBlock,
		GenesisHash:                 genesisHash,
		Genesis:                     genesis,
		PowLimit:                    mainPowLimit.ToBigInt(),
		PowLimitBits:                mainPowLimit.ToCompact(),
		PowTargetTimespan:           time.Hour * 24,
		PowTargetSpacing:            time.Minute,
		PowAllowMinDifficultyBlocks: false,
		PowNoRetargeting:            false,
		SubsidyHalvingInterval:      525600,

		// Proof of stake parameters
		PosTargetSpacing:       time.Minute * 2,
		PosTargetTimespan:      time.Minute * 40,
		ModifierInterval:       time.Minute,
		LastPoWBlock:           1500,
		StakeEnforcementHeight: 70000,
		MinStakeHistory:        360,
		MinStakeAge: HeightTable{
			{Height: 0, Value: 60 * 60 * 12},
			{Height: 175000, Value: 60 * 60 * 24},
		},
		MaxStakeAge: HeightTable{
			{Height: 0, Value: 60 * 60 * 48},
			{Height: 175000, Value: 60 * 60 * 96},
		},
		MinStakeWeight: HeightTable{
			{Height: 0, Value: 200},
			{Height: 175000, Value: 1000},
		},
		MinStakeAmount: HeightTable{
			{Height: 70000, Value: 200 * btcutil.SatoshiPerBitcoin},
		},

		// Chain rule activation
		BIP16Exception: nil,
		BIP34Height:    1,
		BIP34Hash:      nil,
		BIP65Height:    1,
		BIP66Height:    1,

		// Consensus rule change deployments.
		//
		// The miner confirmation window is defined as:
		//   target proof of work timespan / target proof of work spacing
		RuleChangeActivationThreshold: 1916, // 95% of MinerConfirmationWindow
		MinerConfirmationWindow:       2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {
				BitNumber: 28,
				StartTime: 1199145601, // January 1, 2008 UTC
				Timeout:   1230767999, // December 31, 2008 UTC
			},
			DeploymentCSV: {
				BitNumber: 0,
				StartTime: 1462060800, // May 1st, 2016
				Timeout:   1493596800, // May 1st, 2017
			},
			DeploymentSegwit: {
				BitNumber: 1,
				StartTime: AlwaysActive,
				Timeout:   NoTimeout,
			},
		},

		// Governance
		SuperblockCycle:                20571, // ~(60*24*30)/2.1
		SuperblockStartBlock:           12000,
		GovernanceMinQuorum:            10,
		GovernanceFilterElements:       20000,
		BudgetPaymentsStartBlock:       10000,
		BudgetPaymentsCycleBlocks:      20571,
		BudgetPaymentsWindowBlocks:     100,
		MasternodeMinimumConfirmations: 15,
		FulfilledRequestExpireTime:     time.Hour,

		// Long living quorums
		LLMQs:                quorumSelection(LLMQ50_60, LLMQ400_60, LLMQ400_85),
		LLMQTypeChainLocks:   LLMQ400_60,
		LLMQTypeInstantSend:  LLMQ50_60,
		LLMQActivationHeight: 50,

		InstantSendConfirmationsRequired: 6,
		InstantSendKeepLock:              24,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{1, newHashFromStr("0000062cf9ac97b1582474e313770e4609c338ed6fae01142da65722353465f3")},
			{100, newHashFromStr("000005faf4d7d9dccd3a1986eb7150a22f21f80664d5deb91cb1ca38eb305e7e")},
			{6439, newHashFromStr("7c6f9621fe18f22e57d042a3804be45a9ace2d17a305036242d7ba90b68345cb")},
			{70004, newHashFromStr("2da7cf773e5032a76aa4480b033c1ac6978ff64531f168c92d022c90f5bf7996")},
			{80000, newHashFromStr("1f6545f0cd4a07a02a5b0175f22b371fc1839839df8d835c04f6420a08d43877")},
			{90000, newHashFromStr("1d4a1b059b96fa871e9aa09eca0e2ed18ef369556ef8ee88bacf3b3705812e26")},
			{100000, newHashFromStr("8a58bc2b0d6b13229f4ec1d9733317a82e62dbc035e09384ee9e73b77a3e3c76")},
			{105000, newHashFromStr("a9e075e368ebc428c223055d4c3db108106098237dc9f55af687f56781c4d932")},
			{110000, newHashFromStr("fc62dddbd615c0c5d34fc24cb4f6d6b86f02465c036ac42d1bda585e1ac3d066")},
		},

		// Data from getchaintxstats 70004.
		ChainTxData: ChainTxData{
			Time:    1583583293,
			TxCount: 268247,
			TxRate:  0.02924633374616526,
		},

		MinimumChainWork:   new(big.Int),
		DefaultAssumeValid: nil,
		SporkAddresses:     []string{"GMWbuDW6m6WCc7Zc9W3CSuviXzqPKK3eBj"},
		MinSporkKeys:       1,

		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		IsTestChain:              false,
		MiningRequiresPeers:      true,
		AllowMultiplePorts:       true,

		// Address encoding magics
		PubKeyHashAddrID: 38, // starts with G
		ScriptHashAddrID: 6,
		PrivateKeyID:     46,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

		// Human-readable part for Bech32 encoded segwit addresses, as defined in
		// BIP 173.
		Bech32HRPSegwit: "bg",
	}
	mustValidateParams(p)
	return p
}

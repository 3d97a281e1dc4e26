// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"math/big"
	"sort"
	"time"

	"github.com/bitgreen/bitgreend/blockchainutil"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These constants name the supported networks.  They are the values accepted
// by network selection and the value of Params.Name for each network.
const (
	MainNetName = "main"
	TestNetName = "test"
	RegNetName  = "regtest"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// ChainTxData holds statistics about the transaction count of the chain at a
// known point in time.  It is used to estimate verification progress.
type ChainTxData struct {
	// Time is the unix timestamp of the last known number of transactions.
	Time int64

	// TxCount is the total number of transactions between genesis and that
	// timestamp.
	TxCount int64

	// TxRate is the estimated number of transactions per second after that
	// timestamp.
	TxRate float64
}

// Params defines a BitGreen network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// A Params instance is fully built by its network constructor and must be
// treated as read-only afterwards.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight int32

	// AssumedBlockchainSize and AssumedChainStateSize are the expected
	// on-disk sizes, in gigabytes, of the block data and the chain state.
	AssumedBlockchainSize uint64
	AssumedChainStateSize uint64

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Genesis holds the literal inputs the genesis block was built from.
	Genesis GenesisSpec

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PowTargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	PowTargetTimespan time.Duration

	// PowTargetSpacing is the desired amount of time to generate each
	// proof of work block.
	PowTargetSpacing time.Duration

	// PowAllowMinDifficultyBlocks defines whether the network allows blocks
	// at the minimum difficulty after a long enough period of time has
	// passed without finding a block.
	PowAllowMinDifficultyBlocks bool

	// PowNoRetargeting disables difficulty adjustment entirely.
	PowNoRetargeting bool

	// SubsidyHalvingInterval is the number of blocks between reductions of
	// the block subsidy.
	SubsidyHalvingInterval int32

	// PosTargetSpacing is the desired amount of time to generate each
	// proof of stake block.
	PosTargetSpacing time.Duration

	// PosTargetTimespan is the stake difficulty adjustment timespan.
	PosTargetTimespan time.Duration

	// ModifierInterval is the time between stake modifier recomputations.
	ModifierInterval time.Duration

	// LastPoWBlock is the height of the last block that may be produced by
	// proof of work.  Every later block must be proof of stake.
	LastPoWBlock int32

	// StakeEnforcementHeight is the height from which the stake amount and
	// stake history rules are enforced.
	StakeEnforcementHeight int32

	// MinStakeHistory is the number of blocks of history a staking output
	// must have.
	MinStakeHistory int32

	// MinStakeAge and MaxStakeAge are height-indexed stake age bounds in
	// seconds.
	MinStakeAge HeightTable
	MaxStakeAge HeightTable

	// MinStakeWeight is the height-indexed minimum stake weight.
	MinStakeWeight HeightTable

	// MinStakeAmount is the height-indexed minimum amount, in atoms, an
	// output must hold in order to stake.
	MinStakeAmount HeightTable

	// BIP16Exception is the hash of the one block allowed to violate the
	// pay-to-script-hash rules, if any.
	BIP16Exception *chainhash.Hash

	// BIP34Height and BIP34Hash identify the block at which the coinbase
	// height requirement activates.
	BIP34Height int32
	BIP34Hash   *chainhash.Hash

	// BIP65Height is the height at which OP_CHECKLOCKTIMEVERIFY activates.
	BIP65Height int32

	// BIP66Height is the height at which strict DER signatures activate.
	BIP66Height int32

	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change.
	RuleChangeActivationThreshold uint32

	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	MinerConfirmationWindow uint32

	// Deployments define the specific consensus rule changes to be voted
	// on.
	Deployments [DefinedDeployments]ConsensusDeployment

	// Governance and budget parameters.
	SuperblockCycle            int32
	SuperblockStartBlock       int32
	GovernanceMinQuorum        int32
	GovernanceFilterElements   int32
	BudgetPaymentsStartBlock   int32
	BudgetPaymentsCycleBlocks  int32
	BudgetPaymentsWindowBlocks int32

	// MasternodeMinimumConfirmations is the number of confirmations a
	// masternode collateral output requires.
	MasternodeMinimumConfirmations int32

	// FulfilledRequestExpireTime is how long a fulfilled network request is
	// remembered.
	FulfilledRequestExpireTime time.Duration

	// LLMQs is the quorum selection of the network.  The values point into
	// the shared catalog and must not be modified.
	LLMQs map[LLMQType]*QuorumParams

	// LLMQTypeChainLocks and LLMQTypeInstantSend select the quorum types
	// used for chain locks and instant send.  Both are keys of LLMQs.
	LLMQTypeChainLocks  LLMQType
	LLMQTypeInstantSend LLMQType

	// LLMQActivationHeight is the height from which quorums are formed.
	LLMQActivationHeight int32

	// InstantSendConfirmationsRequired is the number of confirmations an
	// input requires before it may be locked.
	InstantSendConfirmationsRequired int32

	// InstantSendKeepLock is the number of blocks a lock is kept after the
	// locking transaction is mined.
	InstantSendKeepLock int32

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// ChainTxData holds transaction count statistics.
	ChainTxData ChainTxData

	// MinimumChainWork is the minimum amount of total work a chain must
	// have before it is considered during initial download.
	MinimumChainWork *big.Int

	// DefaultAssumeValid is the block hash below which scripts are assumed
	// valid, if any.
	DefaultAssumeValid *chainhash.Hash

	// SporkAddresses are the addresses whose keys may sign sporks and
	// MinSporkKeys is the number of them required to agree.
	SporkAddresses []string
	MinSporkKeys   int

	// Node policy flags.
	DefaultConsistencyChecks bool
	RequireStandard          bool
	IsTestChain              bool
	MiningRequiresPeers      bool
	AllowMultiplePorts       bool

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// Bech32HRPSegwit is the human-readable part for Bech32 encoded segwit
	// addresses.
	Bech32HRPSegwit string
}

// HDPrivKeyVersion returns the hierarchical deterministic extended private key
// magic version bytes for the network the parameters define.
func (p *Params) HDPrivKeyVersion() [4]byte {
	return p.HDPrivateKeyID
}

// HDPubKeyVersion returns the hierarchical deterministic extended public key
// magic version bytes for the network the parameters define.
func (p *Params) HDPubKeyVersion() [4]byte {
	return p.HDPublicKeyID
}

// Checkpoint returns the hash of the checkpoint at the passed height along
// with whether or not a checkpoint exists there.
func (p *Params) Checkpoint(height int32) (*chainhash.Hash, bool) {
	idx := sort.Search(len(p.Checkpoints), func(i int) bool {
		return p.Checkpoints[i].Height >= height
	})
	if idx == len(p.Checkpoints) || p.Checkpoints[idx].Height != height {
		return nil, false
	}
	return p.Checkpoints[idx].Hash, true
}

// LatestCheckpointHeight is the height of the latest checkpoint block in the
// parameters.
func (p *Params) LatestCheckpointHeight() int32 {
	if len(p.Checkpoints) == 0 {
		return 0
	}
	return p.Checkpoints[len(p.Checkpoints)-1].Height
}

// MinStakeAgeAt returns the minimum age an output must reach before it may
// stake at the passed height.
func (p *Params) MinStakeAgeAt(height int32) time.Duration {
	return time.Duration(p.MinStakeAge.Lookup(height)) * time.Second
}

// MaxStakeAgeAt returns the age after which an output no longer gains stake
// weight at the passed height.
func (p *Params) MaxStakeAgeAt(height int32) time.Duration {
	return time.Duration(p.MaxStakeAge.Lookup(height)) * time.Second
}

// MinStakeWeightAt returns the minimum stake weight in effect at the passed
// height.
func (p *Params) MinStakeWeightAt(height int32) int64 {
	return p.MinStakeWeight.Lookup(height)
}

// MinStakeAmountAt returns the minimum amount an output must hold to stake at
// the passed height.
func (p *Params) MinStakeAmountAt(height int32) btcutil.Amount {
	return btcutil.Amount(p.MinStakeAmount.Lookup(height))
}

// IsProofOfWorkHeight returns whether a block at the passed height may be
// produced by proof of work.
func (p *Params) IsProofOfWorkHeight(height int32) bool {
	return height <= p.LastPoWBlock
}

// IsSuperblockHeight returns whether a governance superblock is due at the
// passed height.
func (p *Params) IsSuperblockHeight(height int32) bool {
	return height >= p.SuperblockStartBlock && p.SuperblockCycle > 0 &&
		height%p.SuperblockCycle == 0
}

// PowLimitZeroBits returns the number of leading zero bits of the 256-bit
// proof of work limit.
func (p *Params) PowLimitZeroBits() uint {
	return blockchainutil.NewDifficultyFromBigInt(p.PowLimit).LeadingZeroBits()
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// The only way this can panic is if there is an error in the
		// hard-coded hashes.  Thus it will only ever potentially panic
		// on init and therefore is predictable.
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs. This is only provided for the hard-coded constants
// so errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

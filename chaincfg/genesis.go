// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/bitgreen/bitgreend/blockchainutil"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisCoinbaseBits is the compact difficulty pushed as the first
	// element of every genesis coinbase signature script.
	genesisCoinbaseBits = 486604799

	// genesisMessage is the headline embedded in the genesis coinbase of
	// every network.
	genesisMessage = "Even With Energy Surplus, Canada Unable to Meet " +
		"Electricity Demands of Bitcoin Miners"

	// genesisPubKey is the public key the genesis coinbase output pays to.
	genesisPubKey = "04e5a8143f86ad8ac63791fbbdb8e0b91a8da88c8c693a95f6c2c13" +
		"c063ea790f7960b8025a9047a7bc671d5cfe707a2dd2e13b86182e1064a0ee" +
		"a7bf863636363"

	// genesisMerkleRoot is the merkle root shared by the genesis blocks of
	// all networks since they carry the same single coinbase transaction.
	genesisMerkleRoot = "07cbcacfc822fba6bbeb05312258fa43b96a68fc310af8dfce" +
		"c604591763f7cf"
)

// GenesisSpec describes the inputs a genesis block is built from.
type GenesisSpec struct {
	// Message is the text embedded in the coinbase signature script.
	Message string

	// OutputScript is the public key script of the single coinbase output.
	OutputScript []byte

	// Timestamp, Nonce, Bits and Version are copied into the header.
	Timestamp time.Time
	Nonce     uint32
	Bits      uint32
	Version   int32

	// Reward is the value of the coinbase output.
	Reward btcutil.Amount
}

// payToPubKeyScript returns a script that pays to the passed uncompressed
// public key.  It panics since it is only called with hard-coded keys.
func payToPubKeyScript(pubKey []byte) []byte {
	script, err := txscript.NewScriptBuilder().AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).Script()
	if err != nil {
		panic(err)
	}
	return script
}

// genesisSignatureScript returns the coinbase signature script for the passed
// message.
func genesisSignatureScript(message string) ([]byte, error) {
	// The number four is pushed as a one byte data push rather than OP_4
	// so the serialized script matches the deployed chains.
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, 4}).
		AddData([]byte(message)).
		Script()
}

// BuildGenesisBlock constructs the genesis block described by spec.  The block
// holds a single coinbase transaction which pays spec.Reward to
// spec.OutputScript, so the merkle root is the hash of that transaction.
func BuildGenesisBlock(spec GenesisSpec) (*wire.MsgBlock, error) {
	sigScript, err := genesisSignatureScript(spec.Message)
	if err != nil {
		return nil, err
	}

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(&wire.TxOut{
		Value:    int64(spec.Reward),
		PkScript: spec.OutputScript,
	})

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    spec.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: coinbase.TxHash(),
			Timestamp:  time.Unix(spec.Timestamp.Unix(), 0),
			Bits:       spec.Bits,
			Nonce:      spec.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	return block, nil
}

// checkGenesis ensures the passed block hashes to wantHash and commits to
// wantMerkle.
func checkGenesis(block *wire.MsgBlock, wantHash, wantMerkle *chainhash.Hash) error {
	if block.Header.MerkleRoot != *wantMerkle {
		str := fmt.Sprintf("genesis merkle root %v does not match expected "+
			"%v", block.Header.MerkleRoot, wantMerkle)
		return contextError(ErrGenesisMismatch, str)
	}
	if hash := block.BlockHash(); hash != *wantHash {
		str := fmt.Sprintf("genesis block hash %v does not match expected "+
			"%v", hash, wantHash)
		return contextError(ErrGenesisMismatch, str)
	}
	return nil
}

// mustBuildGenesis builds the genesis block described by spec and ensures it
// matches the expected hash and merkle root.  It panics on any mismatch since
// it is only called with hard-coded network values.
func mustBuildGenesis(spec GenesisSpec, wantHash, wantMerkle string) (*wire.MsgBlock, *chainhash.Hash) {
	block, err := BuildGenesisBlock(spec)
	if err != nil {
		panic(err)
	}
	hash := newHashFromStr(wantHash)
	if err := checkGenesis(block, hash, newHashFromStr(wantMerkle)); err != nil {
		panic(err)
	}
	return block, hash
}

// CheckGenesisProofOfWork ensures the genesis block hash satisfies its own
// difficulty bits and that those bits do not exceed the network proof of work
// limit.
func (p *Params) CheckGenesisProofOfWork() error {
	hash := p.GenesisBlock.BlockHash()
	return blockchainutil.NewDifficultyFromBigInt(p.PowLimit).CheckHash(&hash,
		p.GenesisBlock.Header.Bits)
}

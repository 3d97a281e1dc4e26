// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
)

// mainGenesisBlockHex is the serialized genesis block of the main network.
const mainGenesisBlockHex = "010000000000000000000000000000000000000000" +
	"000000000000000000000000000000cff763175904c6cedff80a31fc686ab943fa5822" +
	"3105ebbba6fb22c8cfcacb07306ed65df0ff0f1efc83a0010101000000010000000000" +
	"000000000000000000000000000000000000000000000000000000ffffffff5e04ffff" +
	"001d01044c554576656e205769746820456e6572677920537572706c75732c2043616e" +
	"61646120556e61626c6520746f204d65657420456c6563747269636974792044656d61" +
	"6e6473206f6620426974636f696e204d696e657273ffffffff01000000000000000043" +
	"4104e5a8143f86ad8ac63791fbbdb8e0b91a8da88c8c693a95f6c2c13c063ea790f796" +
	"0b8025a9047a7bc671d5cfe707a2dd2e13b86182e1064a0eea7bf863636363ac000000" +
	"00"

// TestGenesisBlock tests the genesis block of the main network for validity by
// checking the encoded bytes and hashes.
func TestGenesisBlock(t *testing.T) {
	t.Parallel()

	genesisBlockBytes, _ := hex.DecodeString(mainGenesisBlockHex)

	// Encode the genesis block to raw bytes.
	params := MainNetParams()
	var buf bytes.Buffer
	err := params.GenesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("TestGenesisBlock: %v", err)
	}

	// Ensure the encoded block matches the expected bytes.
	if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
		t.Fatalf("TestGenesisBlock: Genesis block does not appear valid - "+
			"got %v, want %v", spew.Sdump(buf.Bytes()),
			spew.Sdump(genesisBlockBytes))
	}

	// Check hash of the block against expected hash.
	hash := params.GenesisBlock.BlockHash()
	if !params.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestGenesisBlock: Genesis block hash does not "+
			"appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(params.GenesisHash))
	}
}

// TestGenesisHashes ensures the genesis block of every network hashes to the
// expected value and commits to the shared coinbase transaction.
func TestGenesisHashes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		params *Params
		hash   string
		bits   uint32
		nonce  uint32
	}{{
		params: MainNetParams(),
		hash:   "0000025289d6b03cbda4950e825cd865185f34fbb3e098295534b63d78beba15",
		bits:   0x1e0ffff0,
		nonce:  27296764,
	}, {
		params: TestNetParams(),
		hash:   "00000546a6b03a54ae05f94119e37c55202e90a953058c35364d112d41ded06a",
		bits:   0x1e0ffff0,
		nonce:  21212214,
	}, {
		params: RegNetParams(),
		hash:   "100a3271b95d1a817101bcbd7045ad14c9799cb34e1cb6071973c8932ae48b6a",
		bits:   0x207fffff,
		nonce:  20542302,
	}}

	wantMerkle := newHashFromStr(genesisMerkleRoot)
	for _, test := range tests {
		block := test.params.GenesisBlock
		hash := block.BlockHash()
		if hash.String() != test.hash {
			t.Errorf("%s: mismatched genesis hash: got %v, want %v",
				test.params.Name, hash, test.hash)
			continue
		}
		if block.Header.MerkleRoot != *wantMerkle {
			t.Errorf("%s: mismatched merkle root: got %v, want %v",
				test.params.Name, block.Header.MerkleRoot, wantMerkle)
		}
		if block.Header.Bits != test.bits || block.Header.Nonce != test.nonce {
			t.Errorf("%s: mismatched header: %v", test.params.Name,
				spew.Sdump(block.Header))
		}
		if len(block.Transactions) != 1 || block.Transactions[0].TxOut[0].Value != 0 {
			t.Errorf("%s: unexpected coinbase: %v", test.params.Name,
				spew.Sdump(block.Transactions))
		}
		if err := test.params.CheckGenesisProofOfWork(); err != nil {
			t.Errorf("%s: genesis does not satisfy its own difficulty: %v",
				test.params.Name, err)
		}
	}
}

// TestGenesisSignatureScript ensures the coinbase signature script keeps the
// one byte data push of the number four.
func TestGenesisSignatureScript(t *testing.T) {
	t.Parallel()

	script, err := genesisSignatureScript(genesisMessage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantPrefix := hexDecode("04ffff001d01044c55")
	if !bytes.HasPrefix(script, wantPrefix) {
		t.Fatalf("unexpected script prefix: got %x, want %x", script,
			wantPrefix)
	}
	if !bytes.HasSuffix(script, []byte(genesisMessage)) {
		t.Fatalf("script does not end with the message: %x", script)
	}
}

// TestCheckGenesisMismatch ensures a changed genesis recipe is detected.
func TestCheckGenesisMismatch(t *testing.T) {
	t.Parallel()

	spec := MainNetParams().Genesis
	spec.Nonce++
	block, err := BuildGenesisBlock(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mainHash := newHashFromStr("0000025289d6b03cbda4950e825cd865185f34fbb3e098295534b63d78beba15")
	merkle := newHashFromStr(genesisMerkleRoot)
	err = checkGenesis(block, mainHash, merkle)
	if !errors.Is(err, ErrGenesisMismatch) {
		t.Fatalf("changed nonce: got %v, want %v", err, ErrGenesisMismatch)
	}

	// A different message changes the merkle root.
	spec.Message = "different"
	block, err = BuildGenesisBlock(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = checkGenesis(block, mainHash, merkle)
	if !errors.Is(err, ErrGenesisMismatch) {
		t.Fatalf("changed message: got %v, want %v", err, ErrGenesisMismatch)
	}

	// The panicking variant must reject the mismatch as well.
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("mustBuildGenesis did not panic on mismatch")
		}
	}()
	mustBuildGenesis(spec, mainHash.String(), genesisMerkleRoot)
}

// TestBuildGenesisBlockFields ensures the built block carries the passed
// header fields and reward.
func TestBuildGenesisBlockFields(t *testing.T) {
	t.Parallel()

	spec := GenesisSpec{
		Message:      "test",
		OutputScript: []byte{0x51},
		Timestamp:    time.Unix(1600000000, 0),
		Nonce:        7,
		Bits:         0x207fffff,
		Version:      4,
		Reward:       50,
	}
	block, err := BuildGenesisBlock(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hdr := &block.Header
	if hdr.Version != 4 || hdr.Nonce != 7 || hdr.Bits != 0x207fffff ||
		hdr.Timestamp.Unix() != 1600000000 ||
		hdr.PrevBlock != (chainhash.Hash{}) {

		t.Fatalf("unexpected header: %v", spew.Sdump(hdr))
	}
	tx := block.Transactions[0]
	if hdr.MerkleRoot != tx.TxHash() {
		t.Fatalf("merkle root %v is not the coinbase hash %v",
			hdr.MerkleRoot, tx.TxHash())
	}
	if tx.TxIn[0].PreviousOutPoint.Index != 0xffffffff ||
		tx.TxIn[0].Sequence != 0xffffffff {

		t.Fatalf("unexpected coinbase input: %v", spew.Sdump(tx.TxIn[0]))
	}
	if tx.TxOut[0].Value != 50 || !bytes.Equal(tx.TxOut[0].PkScript, []byte{0x51}) {
		t.Fatalf("unexpected coinbase output: %v", spew.Sdump(tx.TxOut[0]))
	}
}

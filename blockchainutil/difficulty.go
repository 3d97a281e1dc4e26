// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchainutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strings"

	btcchainhash "github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"
)

// Difficulty models a proof of work target: the value a block hash must not
// exceed (https://en.bitcoin.it/wiki/Difficulty).
//
// A target has three common representations:
//  1. Hex string
//     example: `00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff`
//  2. big.Int
//     example: `new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256-20), bigOne)`
//  3. Bits, or in a compact form
//     example: `0x1e0fffff`
//
// Difficulty converts between all of them so that each network limit is
// written down exactly once.
type Difficulty struct {
	bigInt big.Int
}

// Fprint writes the difficulty in all representations to w.
func (dif *Difficulty) Fprint(w io.Writer) *Difficulty {
	fmt.Fprintln(w, "hexstring: ", dif.ToHexString())
	fmt.Fprintln(w, "     Bits: ", dif.ToCompact())
	fmt.Fprintf(w, "  BitsHex:  %08x\n", dif.ToCompact())
	fmt.Fprintln(w, "   bigInt: ", dif.ToBigInt())
	fmt.Fprintln(w, "zero bits: ", dif.LeadingZeroBits())
	return dif
}

// ToCompact projects instance into compact representation.
func (dif *Difficulty) ToCompact() uint32 {
	return standalone.BigToCompact(&dif.bigInt)
}

// ToBigInt projects instance into big integer representation.  The returned
// value is a copy and may be freely modified.
func (dif *Difficulty) ToBigInt() *big.Int {
	return new(big.Int).Set(&dif.bigInt)
}

// ToHexString projects instance into hex string representation.
func (dif *Difficulty) ToHexString() string {
	return fmt.Sprintf("%064x", &dif.bigInt)
}

// LeadingZeroBits returns the number of leading zero bits of the target when
// written as a 256-bit number.
func (dif *Difficulty) LeadingZeroBits() uint {
	bitLen := dif.bigInt.BitLen()
	if bitLen >= 256 {
		return 0
	}
	return uint(256 - bitLen)
}

// Work returns the expected number of hashes needed to find a block at the
// compact form of the target.
func (dif *Difficulty) Work() *big.Int {
	return standalone.CalcWork(dif.ToCompact())
}

// CheckHash returns an error when the passed block hash is above the target
// encoded by bits or when that target exceeds this difficulty, which is
// treated as the proof of work limit.
func (dif *Difficulty) CheckHash(hash *btcchainhash.Hash, bits uint32) error {
	return standalone.CheckProofOfWork((*chainhash.Hash)(hash), bits,
		&dif.bigInt)
}

// HashToBig converts a block hash into a big integer that can be compared
// against a target.
func HashToBig(hash *btcchainhash.Hash) *big.Int {
	return standalone.HashToBig((*chainhash.Hash)(hash))
}

// NewDifficultyFromHashString creates a new instance from 64-digits hex
// string. Spaces are allowed for readability. Valid examples include:
// 00 00 0f ff ffffffffffffffffffffffffffffffffffffffffffffffffffffffffff
// 00 00 0f ff f0 00000000000000000000000000000000000000000000000000000000
// 7f ff ff ff ffffffffffffffffffffffffffffffffffffffffffffffffffffffff
//
// It panics on invalid input since it must only be called with hard-coded
// values.
func NewDifficultyFromHashString(hexstring string) *Difficulty {
	noSpaces := strings.ReplaceAll(hexstring, " ", "")
	bytes, err := hex.DecodeString(noSpaces)
	if err != nil {
		panic(err)
	}
	if len(bytes) != 32 {
		panic(fmt.Sprintf("difficulty hex string %q is %d bytes instead "+
			"of 32", hexstring, len(bytes)))
	}

	var dif Difficulty
	dif.bigInt.SetBytes(bytes)
	return &dif
}

// NewDifficultyFromCompact creates a new instance from compact form (Bits).
func NewDifficultyFromCompact(compact uint32) *Difficulty {
	var dif Difficulty
	dif.bigInt.Set(standalone.CompactToBig(compact))
	return &dif
}

// NewDifficultyFromBigInt creates a new instance holding a copy of n.
func NewDifficultyFromBigInt(n *big.Int) *Difficulty {
	var dif Difficulty
	dif.bigInt.Set(n)
	return &dif
}

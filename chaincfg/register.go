// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/bech32"
)

// addrRegistry holds the address prefixes of every registered network.
type addrRegistry struct {
	mtx                  sync.RWMutex
	nets                 map[wire.BitcoinNet]*Params
	pubKeyHashAddrIDs    map[byte]struct{}
	scriptHashAddrIDs    map[byte]struct{}
	bech32SegwitPrefixes map[string]*Params
	hdPrivToPubKeyIDs    map[[4]byte][]byte
}

var registry = addrRegistry{
	nets:                 make(map[wire.BitcoinNet]*Params),
	pubKeyHashAddrIDs:    make(map[byte]struct{}),
	scriptHashAddrIDs:    make(map[byte]struct{}),
	bech32SegwitPrefixes: make(map[string]*Params),
	hdPrivToPubKeyIDs:    make(map[[4]byte][]byte),
}

// Register registers the network parameters for a BitGreen network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	registry.mtx.Lock()
	defer registry.mtx.Unlock()

	if _, ok := registry.nets[params.Net]; ok {
		str := fmt.Sprintf("network %s with magic %v is already registered",
			params.Name, params.Net)
		return contextError(ErrDuplicateNet, str)
	}
	registry.nets[params.Net] = params
	registry.pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	registry.scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	registry.hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]

	// A valid Bech32 encoded segwit address always has as prefix the
	// human-readable part for the given net followed by '1'.
	registry.bech32SegwitPrefixes[params.Bech32HRPSegwit+"1"] = params
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.  This is
// used when decoding an address string into a specific address type.  It is up
// to the caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func IsPubKeyHashAddrID(id byte) bool {
	registry.mtx.RLock()
	_, ok := registry.pubKeyHashAddrIDs[id]
	registry.mtx.RUnlock()
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default or registered network.  See
// IsPubKeyHashAddrID for details.
func IsScriptHashAddrID(id byte) bool {
	registry.mtx.RLock()
	_, ok := registry.scriptHashAddrIDs[id]
	registry.mtx.RUnlock()
	return ok
}

// IsBech32SegwitPrefix returns whether the prefix is a known prefix for segwit
// addresses on any default or registered network.  This is used when decoding
// an address string into a specific address type.
func IsBech32SegwitPrefix(prefix string) bool {
	prefix = strings.ToLower(prefix)
	registry.mtx.RLock()
	_, ok := registry.bech32SegwitPrefixes[prefix]
	registry.mtx.RUnlock()
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.  The
// returned id is a copy the caller may modify.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		str := fmt.Sprintf("hd private key id %x is not 4 bytes", id)
		return nil, contextError(ErrUnknownHDKeyID, str)
	}

	var key [4]byte
	copy(key[:], id)
	registry.mtx.RLock()
	pubBytes, ok := registry.hdPrivToPubKeyIDs[key]
	registry.mtx.RUnlock()
	if !ok {
		str := fmt.Sprintf("hd private key id %x is not registered", id)
		return nil, contextError(ErrUnknownHDKeyID, str)
	}

	return append([]byte(nil), pubBytes...), nil
}

// ParamsForBech32Address returns the registered network whose human-readable
// part prefixes the passed bech32 encoded address.
func ParamsForBech32Address(addr string) (*Params, error) {
	hrp, _, err := bech32.Decode(addr)
	if err != nil {
		return nil, err
	}

	registry.mtx.RLock()
	params, ok := registry.bech32SegwitPrefixes[hrp+"1"]
	registry.mtx.RUnlock()
	if !ok {
		str := fmt.Sprintf("address %s uses unknown human-readable part %q",
			addr, hrp)
		return nil, contextError(ErrUnknownBech32Prefix, str)
	}
	return params, nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(MainNetParams())
	mustRegister(TestNetParams())
	mustRegister(RegNetParams())
}

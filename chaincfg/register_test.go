// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/decred/dcrd/bech32"
)

// TestMustRegisterPanic ensures the mustRegister function panics when used to
// register an invalid network.
func TestMustRegisterPanic(t *testing.T) {
	t.Parallel()

	// Setup a defer to catch the expected panic to ensure it actually
	// paniced.
	defer func() {
		if err := recover(); err == nil {
			t.Error("mustRegister did not panic as expected")
		}
	}()

	// Intentionally try to register duplicate params to force a panic.
	mustRegister(MainNetParams())
}

// TestRegisterDuplicate ensures registering a default network again fails
// with ErrDuplicateNet.
func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	for _, params := range allDefaultNetParams() {
		err := Register(params)
		if !errors.Is(err, ErrDuplicateNet) {
			t.Errorf("%s: got %v, want %v", params.Name, err, ErrDuplicateNet)
		}
	}
}

// TestRegisterCustomNet ensures a network with a new magic can be registered
// and its prefixes become known.
func TestRegisterCustomNet(t *testing.T) {
	t.Parallel()

	custom := RegNetParams()
	custom.Name = "custom"
	custom.Net = 0x0badf00d
	custom.PubKeyHashAddrID = 0x7f
	custom.ScriptHashAddrID = 0x7e
	custom.HDPrivateKeyID = [4]byte{0x01, 0x02, 0x03, 0x04}
	custom.HDPublicKeyID = [4]byte{0x05, 0x06, 0x07, 0x08}
	custom.Bech32HRPSegwit = "cust"

	if err := Register(custom); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsPubKeyHashAddrID(0x7f) || !IsScriptHashAddrID(0x7e) {
		t.Fatal("custom address prefixes are not registered")
	}
	if !IsBech32SegwitPrefix("cust1") {
		t.Fatal("custom bech32 prefix is not registered")
	}
	pub, err := HDPrivateKeyToPublicKeyID(custom.HDPrivateKeyID[:])
	if err != nil || !bytes.Equal(pub, custom.HDPublicKeyID[:]) {
		t.Fatalf("unexpected custom hd public key id %x: %v", pub, err)
	}
}

// TestRegisteredPrefixes ensures the prefixes of the default networks are
// known.
func TestRegisteredPrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"main pubkey hash", IsPubKeyHashAddrID(38), true},
		{"test pubkey hash", IsPubKeyHashAddrID(98), true},
		{"script hash as pubkey hash", IsPubKeyHashAddrID(6), false},
		{"main script hash", IsScriptHashAddrID(6), true},
		{"test script hash", IsScriptHashAddrID(12), true},
		{"pubkey hash as script hash", IsScriptHashAddrID(38), false},
		{"main segwit", IsBech32SegwitPrefix("bg1"), true},
		{"main segwit upper case", IsBech32SegwitPrefix("BG1"), true},
		{"test segwit", IsBech32SegwitPrefix("tbg1"), true},
		{"regtest segwit", IsBech32SegwitPrefix("bgrt1"), true},
		{"missing separator", IsBech32SegwitPrefix("bg"), false},
		{"bitcoin segwit", IsBech32SegwitPrefix("bc1"), false},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

// TestHDKeyIDs ensures private extended key ids map to their public
// counterparts.
func TestHDKeyIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		priv    []byte
		want    []byte
		wantErr error
	}{{
		name: "main",
		priv: []byte{0x04, 0x88, 0xad, 0xe4},
		want: []byte{0x04, 0x88, 0xb2, 0x1e},
	}, {
		name: "test",
		priv: []byte{0x04, 0x35, 0x83, 0x94},
		want: []byte{0x04, 0x35, 0x87, 0xcf},
	}, {
		name:    "unknown",
		priv:    []byte{0xff, 0xff, 0xff, 0xff},
		wantErr: ErrUnknownHDKeyID,
	}, {
		name:    "short",
		priv:    []byte{0x04, 0x88},
		wantErr: ErrUnknownHDKeyID,
	}}

	for _, test := range tests {
		got, err := HDPrivateKeyToPublicKeyID(test.priv)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: got error %v, want %v", test.name, err,
				test.wantErr)
			continue
		}
		if !bytes.Equal(got, test.want) {
			t.Errorf("%s: got %x, want %x", test.name, got, test.want)
		}
	}

	// The returned id must not alias the registered parameters.
	got, err := HDPrivateKeyToPublicKeyID([]byte{0x04, 0x88, 0xad, 0xe4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got[0] = 0xff
	again, err := HDPrivateKeyToPublicKeyID([]byte{0x04, 0x88, 0xad, 0xe4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x04, 0x88, 0xb2, 0x1e}
	if !bytes.Equal(again, want) {
		t.Fatalf("registered id was modified: got %x, want %x", again, want)
	}
}

// encodeTestAddr bech32 encodes a zero witness program with the passed
// human-readable part.
func encodeTestAddr(t *testing.T, hrp string) string {
	t.Helper()

	program := make([]byte, 20)
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		t.Fatalf("unable to convert bits: %v", err)
	}
	data := append([]byte{0}, converted...)
	addr, err := bech32.Encode(hrp, data)
	if err != nil {
		t.Fatalf("unable to encode address: %v", err)
	}
	return addr
}

// TestParamsForBech32Address ensures segwit addresses resolve to the network
// owning their human-readable part.
func TestParamsForBech32Address(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hrp  string
		want string
	}{
		{"bg", MainNetName},
		{"tbg", TestNetName},
		{"bgrt", RegNetName},
	}
	for _, test := range tests {
		params, err := ParamsForBech32Address(encodeTestAddr(t, test.hrp))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.hrp, err)
			continue
		}
		if params.Name != test.want {
			t.Errorf("%s: got network %s, want %s", test.hrp, params.Name,
				test.want)
		}
	}

	_, err := ParamsForBech32Address(encodeTestAddr(t, "zz"))
	if !errors.Is(err, ErrUnknownBech32Prefix) {
		t.Fatalf("unknown prefix: got %v, want %v", err,
			ErrUnknownBech32Prefix)
	}
	if _, err := ParamsForBech32Address("not an address"); err == nil {
		t.Fatal("invalid address did not fail")
	}
}

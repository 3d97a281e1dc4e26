// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	"strings"
	"testing"
)

// TestBitgreenParams ensures the embedded sample config is present and
// documents the network options.
func TestBitgreenParams(t *testing.T) {
	t.Parallel()

	conf := BitgreenParams()
	if !strings.HasPrefix(conf, "[Application Options]") {
		t.Fatal("sample config does not start with the application section")
	}
	for _, opt := range []string{"; testnet=1", "; regtest=1", "; vbparams=",
		"; debuglevel=info"} {

		if !strings.Contains(conf, opt) {
			t.Errorf("sample config does not document %q", opt)
		}
	}
}

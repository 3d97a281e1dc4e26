// Copyright (c) 2017-2022 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	_ "embed"
)

// sampleBitgreenParamsConf is a string containing the commented example config
// for bitgreenparams.
//
//go:embed sample-bitgreenparams.conf
var sampleBitgreenParamsConf string

// BitgreenParams returns a string containing the commented example config for
// bitgreenparams.
func BitgreenParams() string {
	return sampleBitgreenParamsConf
}

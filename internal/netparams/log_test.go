// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitgreen/bitgreend/chaincfg"
	"github.com/decred/slog"
)

// TestSelectionLogging ensures network selection and replacement are logged.
func TestSelectionLogging(t *testing.T) {
	var buf bytes.Buffer
	testLogger := slog.NewBackend(&buf).Logger("TEST")
	testLogger.SetLevel(slog.LevelDebug)
	UseLogger(testLogger)
	defer UseLogger(slog.Disabled)

	var s Selector
	if err := s.SelectNetwork(chaincfg.RegNetName, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SelectNetwork(chaincfg.TestNetName, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Using regtest network parameters",
		"Replacing active network regtest with test",
		"Using test network parameters",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output %q does not contain %q", buf.String(), want)
		}
	}
}

// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bitgreen/bitgreend/chaincfg"
)

// TestFormatDeploymentTime ensures the special deployment times are named.
func TestFormatDeploymentTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{chaincfg.AlwaysActive, "always active"},
		{chaincfg.NoTimeout, "never"},
		{0, "0 (1970-01-01T00:00:00Z)"},
		{1462060800, "1462060800 (2016-05-01T00:00:00Z)"},
	}
	for _, test := range tests {
		if got := formatDeploymentTime(test.in); got != test.want {
			t.Errorf("%d: got %q, want %q", test.in, got, test.want)
		}
	}
}

// TestWriteReport ensures each requested section of the report is written.
func TestWriteReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config
		params  *chaincfg.Params
		want    []string
		wantNot []string
	}{{
		name:   "main summary only",
		params: chaincfg.MainNetParams(),
		want: []string{
			"Network:",
			"main",
			"9333",
			"0000025289d6b03cbda4950e825cd865185f34fbb3e098295534b63d78beba15",
			"1e0fffff (20 leading zero bits)",
			"bg",
		},
		wantNot: []string{"Checkpoints", "Quorums", "Deployments"},
	}, {
		name:   "main checkpoints",
		cfg:    config{Checkpoints: true},
		params: chaincfg.MainNetParams(),
		want: []string{
			"Checkpoints (",
			"0000062cf9ac97b1582474e313770e4609c338ed6fae01142da65722353465f3",
		},
	}, {
		name:   "main quorums",
		cfg:    config{Quorums: true},
		params: chaincfg.MainNetParams(),
		want: []string{
			"Quorums (3, active from height 50)",
			"llmq_50_60",
			"llmq_400_60",
			"llmq_400_85",
			"chainlocks",
			"instantsend",
		},
	}, {
		name:   "regtest deployments",
		cfg:    config{Deployments: true},
		params: chaincfg.RegNetParams(),
		want: []string{
			"Deployments (threshold 108 of 144 blocks)",
			"testdummy",
			"csv",
			"segwit",
			"ThresholdDefined",
			"Block version after genesis: 20000000",
		},
	}, {
		name:    "dump",
		cfg:     config{Dump: true, Checkpoints: true},
		params:  chaincfg.TestNetParams(),
		want:    []string{"Name:", "(string) (len=4) \"test\"", "LLMQs:"},
		wantNot: []string{"Checkpoints ("},
	}}

	for _, test := range tests {
		var buf bytes.Buffer
		cfg := test.cfg
		if err := writeReport(&buf, &cfg, test.params); err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		out := buf.String()
		for _, want := range test.want {
			if !strings.Contains(out, want) {
				t.Errorf("%s: output does not contain %q:\n%s", test.name,
					want, out)
			}
		}
		for _, notWant := range test.wantNot {
			if strings.Contains(out, notWant) {
				t.Errorf("%s: output unexpectedly contains %q", test.name,
					notWant)
			}
		}
	}
}

// TestWriteQuorumsInvalid ensures an inconsistent quorum is reported.
func TestWriteQuorumsInvalid(t *testing.T) {
	t.Parallel()

	params := chaincfg.RegNetParams()
	broken := *params.LLMQs[chaincfg.LLMQ5_60]
	broken.MinSize = broken.Size + 1
	params.LLMQs[chaincfg.LLMQ5_60] = &broken

	var buf bytes.Buffer
	err := writeQuorums(&buf, params)
	if !errors.Is(err, chaincfg.ErrInvalidQuorum) {
		t.Fatalf("got %v, want %v", err, chaincfg.ErrInvalidQuorum)
	}
}

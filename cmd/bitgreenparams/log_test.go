// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/decred/slog"
)

// TestParseAndSetDebugLevels ensures debug levels are applied to all or
// individual subsystems and invalid input is rejected.
func TestParseAndSetDebugLevels(t *testing.T) {
	defer setLogLevels(defaultLogLevel)

	tests := []struct {
		name    string
		in      string
		want    map[string]slog.Level
		wantErr bool
	}{{
		name: "all subsystems",
		in:   "debug",
		want: map[string]slog.Level{
			"BGPM": slog.LevelDebug,
			"CHCF": slog.LevelDebug,
			"CHAN": slog.LevelDebug,
			"NETP": slog.LevelDebug,
		},
	}, {
		name: "individual subsystems",
		in:   "BGPM=trace,NETP=error",
		want: map[string]slog.Level{
			"BGPM": slog.LevelTrace,
			"NETP": slog.LevelError,
		},
	}, {
		name:    "invalid level",
		in:      "verbose",
		wantErr: true,
	}, {
		name:    "invalid subsystem",
		in:      "NOPE=debug",
		wantErr: true,
	}, {
		name:    "missing level",
		in:      "BGPM=debug,CHAN",
		wantErr: true,
	}, {
		name:    "invalid subsystem level",
		in:      "CHAN=loud",
		wantErr: true,
	}}

	for _, test := range tests {
		setLogLevels(defaultLogLevel)
		err := parseAndSetDebugLevels(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: got error %v, want error %v", test.name, err,
				test.wantErr)
			continue
		}
		for subsystem, level := range test.want {
			if got := subsystemLoggers[subsystem].Level(); got != level {
				t.Errorf("%s: %s level got %v, want %v", test.name, subsystem,
					got, level)
			}
		}
	}

	want := []string{"BGPM", "CHAN", "CHCF", "NETP"}
	if got := supportedSubsystems(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got subsystems %v, want %v", got, want)
	}
}

// TestInitLogRotator ensures the log rotator creates its directory.
func TestInitLogRotator(t *testing.T) {
	defer func() {
		logRotator.Close()
		logRotator = nil
	}()

	logFile := filepath.Join(t.TempDir(), "nested", defaultLogFilename)
	if err := initLogRotator(logFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logRotator == nil {
		t.Fatal("log rotator was not initialized")
	}
}

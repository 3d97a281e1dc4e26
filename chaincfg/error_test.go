// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrDuplicateNet, "ErrDuplicateNet"},
		{ErrUnknownHDKeyID, "ErrUnknownHDKeyID"},
		{ErrUnknownBech32Prefix, "ErrUnknownBech32Prefix"},
		{ErrUnknownDeployment, "ErrUnknownDeployment"},
		{ErrMalformedOverride, "ErrMalformedOverride"},
		{ErrInvalidStartTime, "ErrInvalidStartTime"},
		{ErrInvalidTimeout, "ErrInvalidTimeout"},
		{ErrUnknownQuorumType, "ErrUnknownQuorumType"},
		{ErrInvalidQuorum, "ErrInvalidQuorum"},
		{ErrGenesisMismatch, "ErrGenesisMismatch"},
		{ErrInvalidParams, "ErrInvalidParams"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestContextError tests the error output for the ContextError type.
func TestContextError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ContextError
		want string
	}{{
		ContextError{Description: "some error"},
		"some error",
	}, {
		ContextError{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and ContextError can be identified
// as being a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrDuplicateNet == ErrDuplicateNet",
		err:       ErrDuplicateNet,
		target:    ErrDuplicateNet,
		wantMatch: true,
		wantAs:    ErrDuplicateNet,
	}, {
		name:      "ContextError.ErrDuplicateNet == ErrDuplicateNet",
		err:       contextError(ErrDuplicateNet, ""),
		target:    ErrDuplicateNet,
		wantMatch: true,
		wantAs:    ErrDuplicateNet,
	}, {
		name:      "ErrDuplicateNet != ErrUnknownHDKeyID",
		err:       ErrDuplicateNet,
		target:    ErrUnknownHDKeyID,
		wantMatch: false,
		wantAs:    ErrDuplicateNet,
	}, {
		name:      "ContextError.ErrDuplicateNet != ErrUnknownHDKeyID",
		err:       contextError(ErrDuplicateNet, ""),
		target:    ErrUnknownHDKeyID,
		wantMatch: false,
		wantAs:    ErrDuplicateNet,
	}, {
		name:      "ContextError.ErrMalformedOverride != ContextError.ErrInvalidTimeout",
		err:       contextError(ErrMalformedOverride, ""),
		target:    contextError(ErrInvalidTimeout, ""),
		wantMatch: false,
		wantAs:    ErrMalformedOverride,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}

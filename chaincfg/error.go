// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2019-2024 The BitGreen developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ContextError.
const (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be registered because the network magic was already
	// registered.
	ErrDuplicateNet = ErrorKind("ErrDuplicateNet")

	// ErrUnknownHDKeyID describes an error where the provided id which is
	// intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = ErrorKind("ErrUnknownHDKeyID")

	// ErrUnknownBech32Prefix describes an error where the human-readable
	// part of a bech32 encoded address does not belong to any registered
	// network.
	ErrUnknownBech32Prefix = ErrorKind("ErrUnknownBech32Prefix")

	// ErrUnknownDeployment indicates a deployment id or name does not refer
	// to any defined deployment.
	ErrUnknownDeployment = ErrorKind("ErrUnknownDeployment")

	// ErrMalformedOverride indicates a deployment override is not of the
	// form deployment:start:timeout.
	ErrMalformedOverride = ErrorKind("ErrMalformedOverride")

	// ErrInvalidStartTime indicates the start time of a deployment override
	// is not a valid signed 64-bit integer.
	ErrInvalidStartTime = ErrorKind("ErrInvalidStartTime")

	// ErrInvalidTimeout indicates the timeout of a deployment override is
	// not a valid signed 64-bit integer.
	ErrInvalidTimeout = ErrorKind("ErrInvalidTimeout")

	// ErrUnknownQuorumType indicates the requested quorum type is not part
	// of the network's quorum selection.
	ErrUnknownQuorumType = ErrorKind("ErrUnknownQuorumType")

	// ErrInvalidQuorum indicates a quorum record has internally inconsistent
	// values.
	ErrInvalidQuorum = ErrorKind("ErrInvalidQuorum")

	// ErrGenesisMismatch indicates the genesis block built from the network
	// literals does not hash to the expected values.
	ErrGenesisMismatch = ErrorKind("ErrGenesisMismatch")

	// ErrInvalidParams indicates hard-coded network parameters violate one
	// of their structural invariants.
	ErrInvalidParams = ErrorKind("ErrInvalidParams")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// ContextError wraps an error kind with a human-readable description of the
// specific failure.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type ContextError struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e ContextError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e ContextError) Unwrap() error {
	return e.Err
}

// contextError creates a ContextError given a set of arguments.
func contextError(kind ErrorKind, desc string) ContextError {
	return ContextError{Err: kind, Description: desc}
}

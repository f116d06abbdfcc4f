// Package oiderr defines the sentinel errors returned across the registry
// and codec packages. "Not found" is never one of these — it is always a
// zero NID / empty string plus a boolean or absence, never an error.
package oiderr

import "errors"

var (
	// ErrInvalidOID marks malformed OID text or DER content octets.
	ErrInvalidOID = errors.New("oidreg: invalid OID")

	// ErrInvalidArgument marks a Register call with oid, sn, and ln all
	// absent.
	ErrInvalidArgument = errors.New("oidreg: invalid argument")

	// ErrAlreadyExists marks a collision on SN, LN, or DER with an entry
	// already known to the registry.
	ErrAlreadyExists = errors.New("oidreg: already exists")

	// ErrLockInitFailed marks a failure in the registry's one-time
	// internal setup (see registry.ensureInit).
	ErrLockInitFailed = errors.New("oidreg: lock initialization failed")

	// ErrAllocFailed marks failure constructing an entry or index record.
	// Kept for API completeness; Go's allocator does not expose this as a
	// recoverable error, so no production code path returns it.
	ErrAllocFailed = errors.New("oidreg: allocation failed")

	// ErrInternal marks a structural failure in the added index. Kept for
	// API completeness; no code path in this module returns it (a key
	// collision during index insertion reports ErrAlreadyExists).
	ErrInternal = errors.New("oidreg: internal error")
)

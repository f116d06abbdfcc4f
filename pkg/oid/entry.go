// Package oid defines the shared record type for the registry: a single
// OBJECT IDENTIFIER known under a numeric handle, up to two names, and its
// DER content octets.
package oid

// NID is a dense, process-local integer handle for an OID.
type NID uint32

// Undef is the reserved sentinel NID. It is never a valid lookup result.
const Undef NID = 0

// Flags records which of an Entry's buffers are owned (heap-allocated,
// freed at shutdown) versus borrowed from static storage.
type Flags uint8

const (
	// FlagDEROwned marks Entry.DER as heap-owned.
	FlagDEROwned Flags = 1 << iota
	// FlagSNOwned marks Entry.SN as heap-owned.
	FlagSNOwned
	// FlagLNOwned marks Entry.LN as heap-owned.
	FlagLNOwned
)

// Entry is the single OID record shared by the built-in table and the
// added index. Built-in entries are immutable for the process lifetime;
// added entries are constructed once during Register/AddObject and torn
// down only by Shutdown.
type Entry struct {
	NID   NID
	DER   []byte
	SN    string
	LN    string
	Flags Flags

	// scratch is reused by Shutdown's three-pass sweep as the entry's
	// reference count (see registry.Shutdown). It has no meaning outside
	// that sweep and is not part of the entry's public identity.
	scratch int32
}

// HasSN reports whether the entry carries a short name.
func (e Entry) HasSN() bool { return e.SN != "" }

// HasLN reports whether the entry carries a long name.
func (e Entry) HasLN() bool { return e.LN != "" }

// HasDER reports whether the entry carries non-empty DER content octets.
func (e Entry) HasDER() bool { return len(e.DER) > 0 }

// ResetScratch zeroes the teardown scratch counter. Pass 1 of the
// shutdown sweep (registry.Shutdown) calls this on every entry it visits.
func (e *Entry) ResetScratch() { e.scratch = 0 }

// IncScratch increments the teardown scratch counter and returns the new
// value. Pass 2 of the shutdown sweep calls this once per index record
// that points at the entry, so the final value is the entry's refcount.
func (e *Entry) IncScratch() int32 {
	e.scratch++
	return e.scratch
}

// DecScratch decrements the teardown scratch counter and returns the new
// value. Pass 3 calls this once per index record, so the value is zero
// after the entry's last referencing record has been visited.
func (e *Entry) DecScratch() int32 {
	e.scratch--
	return e.scratch
}

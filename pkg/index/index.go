// Package index implements the added-OID multi-index (C3): a single
// associative container keyed by a tagged key (DER, SN, LN, or NID) that
// stores every index record an added oid.Entry participates in. Folding
// four indexes into one map lets a multi-key insert succeed or roll back
// as a single unit, and lets the shutdown sweep visit every record exactly
// once regardless of how many keys point at the same entry.
//
// AddedIndex does not lock; callers (registry.Registry) hold their own
// sync.RWMutex around every call, matching how pkg/search/fingerprint.go's
// FingerprintMap in the teacher relies on its caller's synchronization.
package index

import (
	"fmt"

	"github.com/oisee/oidreg/pkg/oid"
	"github.com/oisee/oidreg/pkg/oiderr"
)

// Tag discriminates the four key spaces folded into one map.
type Tag uint8

const (
	TagDER Tag = iota
	TagSN
	TagLN
	TagNID
)

func (t Tag) String() string {
	switch t {
	case TagDER:
		return "DER"
	case TagSN:
		return "SN"
	case TagLN:
		return "LN"
	case TagNID:
		return "NID"
	default:
		return "invalid"
	}
}

// Key is the tagged lookup key: tag discriminates first, then Value (the
// DER bytes as a string, the SN, the LN, or the decimal NID) is compared.
type Key struct {
	Tag   Tag
	Value string
}

// Record is one index entry: a key pointing at the owned oid.Entry it
// indexes.
type Record struct {
	Key   Key
	Entry *oid.Entry
}

// AddedIndex is the multi-index over added OidEntry values.
type AddedIndex struct {
	records map[Key]*Record
}

// New returns an empty AddedIndex.
func New() *AddedIndex {
	return &AddedIndex{records: make(map[Key]*Record)}
}

// Retrieve returns the record stored under k, if any.
func (a *AddedIndex) Retrieve(k Key) (*Record, bool) {
	r, ok := a.records[k]
	return r, ok
}

// insertOne stores r under its key, returning whatever record it
// superseded (if any).
func (a *AddedIndex) insertOne(r *Record) (prev *Record, existed bool) {
	prev, existed = a.records[r.Key]
	a.records[r.Key] = r
	return prev, existed
}

// delete removes whatever record is stored under k, if any.
func (a *AddedIndex) delete(k Key) {
	delete(a.records, k)
}

// KeysFor builds the up to four index keys an entry participates in: DER
// (if non-empty), SN (if present), LN (if present), and always NID.
func KeysFor(e *oid.Entry) []Key {
	keys := make([]Key, 0, 4)
	if e.HasDER() {
		keys = append(keys, Key{Tag: TagDER, Value: string(e.DER)})
	}
	if e.HasSN() {
		keys = append(keys, Key{Tag: TagSN, Value: e.SN})
	}
	if e.HasLN() {
		keys = append(keys, Key{Tag: TagLN, Value: e.LN})
	}
	keys = append(keys, Key{Tag: TagNID, Value: fmt.Sprintf("%d", e.NID)})
	return keys
}

// Insert runs the §4.3 registration protocol for e: it builds e's up to
// four keys and inserts a record for each, in the fixed order
// [DER, SN, LN, NID]. If any key is already occupied by a *different*
// entry, every record inserted so far is rolled back and ErrAlreadyExists
// is returned — the added index is left exactly as it was before the
// call. Called with the registry's write lock held.
func (a *AddedIndex) Insert(e *oid.Entry) error {
	keys := KeysFor(e)
	inserted := make([]Key, 0, len(keys))

	rollback := func() {
		for _, k := range inserted {
			a.delete(k)
		}
	}

	for _, k := range keys {
		if prev, existed := a.Retrieve(k); existed && prev.Entry != e {
			rollback()
			return fmt.Errorf("%w: %s collides with an existing entry", oiderr.ErrAlreadyExists, k.Tag)
		}
		a.records[k] = &Record{Key: k, Entry: e}
		inserted = append(inserted, k)
	}
	return nil
}

// ForEach visits every record in the index. visitor returning false stops
// iteration early. Iteration order over a Go map is unspecified, which
// matches spec.md's teardown sweep: the three passes only need every
// record visited once per pass, not in any particular order.
func (a *AddedIndex) ForEach(visitor func(*Record) bool) {
	for _, r := range a.records {
		if !visitor(r) {
			return
		}
	}
}

// Len returns the number of records currently indexed (not the number of
// distinct entries — one entry may own up to four records).
func (a *AddedIndex) Len() int { return len(a.records) }

// Reset clears every record, returning the index to its pre-registration
// state. Called by the shutdown sweep after the three-pass free.
func (a *AddedIndex) Reset() {
	a.records = make(map[Key]*Record)
}

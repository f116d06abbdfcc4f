// Package builtin holds the immutable table of well-known OIDs. The table
// is built once at program start from the entry list in table_gen.go and
// is never mutated afterward; lookup by NID indexes a dense array, and
// lookups by DER, SN and LN binary-search slices sorted once in NewTable.
package builtin

import (
	"bytes"
	"sort"

	"github.com/oisee/oidreg/pkg/oid"
)

// Table is the immutable built-in OID table: a dense array indexed by NID,
// plus three index slices sorted for binary search by DER, SN, and LN.
type Table struct {
	byNID []oid.Entry // index 0 is the Undef hole; real entries start at 1
	byDER []int       // indices into byNID, sorted by DER comparator
	bySN  []int       // indices into byNID, sorted by SN
	byLN  []int       // indices into byNID, sorted by LN
}

// NewTable builds a Table from a list of entries whose NIDs are assumed to
// be a dense, 1-based, gap-free sequence (as cmd/oidgen produces). It
// panics if that assumption is violated — a mis-sorted or mis-numbered
// built-in table silently corrupts lookups, so this is a debug-time
// self-check run once at package init, not a recoverable runtime error.
func NewTable(entries []oid.Entry) *Table {
	byNID := make([]oid.Entry, len(entries)+1) // +1 for the Undef hole
	for _, e := range entries {
		if e.NID == oid.Undef || int(e.NID) >= len(byNID) {
			panic("builtin: entry NID out of the expected dense range")
		}
		if byNID[e.NID].NID != oid.Undef {
			panic("builtin: duplicate NID in built-in table")
		}
		byNID[e.NID] = e
	}

	t := &Table{byNID: byNID}
	for i, e := range byNID {
		if e.NID == oid.Undef {
			continue
		}
		if e.HasDER() {
			t.byDER = append(t.byDER, i)
		}
		if e.HasSN() {
			t.bySN = append(t.bySN, i)
		}
		if e.HasLN() {
			t.byLN = append(t.byLN, i)
		}
	}

	sort.Slice(t.byDER, func(i, j int) bool {
		return derLess(byNID[t.byDER[i]].DER, byNID[t.byDER[j]].DER)
	})
	sort.Slice(t.bySN, func(i, j int) bool {
		return byNID[t.bySN[i]].SN < byNID[t.bySN[j]].SN
	})
	sort.Slice(t.byLN, func(i, j int) bool {
		return byNID[t.byLN[i]].LN < byNID[t.byLN[j]].LN
	})

	t.selfCheck()
	return t
}

// selfCheck asserts the index slices are sorted under the same comparator
// used to build them, matching spec's call for a debug-time sortedness
// check on first use of a generated built-in table.
func (t *Table) selfCheck() {
	if !sort.SliceIsSorted(t.byDER, func(i, j int) bool {
		return derLess(t.byNID[t.byDER[i]].DER, t.byNID[t.byDER[j]].DER)
	}) {
		panic("builtin: by-DER index is not sorted")
	}
	if !sort.SliceIsSorted(t.bySN, func(i, j int) bool {
		return t.byNID[t.bySN[i]].SN < t.byNID[t.bySN[j]].SN
	}) {
		panic("builtin: by-SN index is not sorted")
	}
	if !sort.SliceIsSorted(t.byLN, func(i, j int) bool {
		return t.byNID[t.byLN[i]].LN < t.byNID[t.byLN[j]].LN
	}) {
		panic("builtin: by-LN index is not sorted")
	}
}

// derLess orders DER byte strings by length first, then lexicographically —
// the comparator spec.md §4.1 requires (length primary, memcmp secondary),
// which lets a length mismatch short-circuit the comparison.
func derLess(a, b []byte) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return bytes.Compare(a, b) < 0
}

// Count returns the built-in table's NID space size, i.e. BUILTIN_COUNT:
// dynamically allocated NIDs start here.
func (t *Table) Count() oid.NID { return oid.NID(len(t.byNID)) }

// LookupByNID returns the built-in entry for n, if any.
func (t *Table) LookupByNID(n oid.NID) (oid.Entry, bool) {
	if n == oid.Undef || int(n) >= len(t.byNID) {
		return oid.Entry{}, false
	}
	e := t.byNID[n]
	if e.NID == oid.Undef {
		return oid.Entry{}, false
	}
	return e, true
}

// LookupByDER binary-searches the by-DER index, short-circuiting on a
// length mismatch.
func (t *Table) LookupByDER(der []byte) (oid.Entry, bool) {
	i := sort.Search(len(t.byDER), func(i int) bool {
		return !derLess(t.byNID[t.byDER[i]].DER, der)
	})
	if i < len(t.byDER) && bytes.Equal(t.byNID[t.byDER[i]].DER, der) {
		return t.byNID[t.byDER[i]], true
	}
	return oid.Entry{}, false
}

// LookupBySN binary-searches the by-SN index.
func (t *Table) LookupBySN(sn string) (oid.Entry, bool) {
	i := sort.Search(len(t.bySN), func(i int) bool {
		return t.byNID[t.bySN[i]].SN >= sn
	})
	if i < len(t.bySN) && t.byNID[t.bySN[i]].SN == sn {
		return t.byNID[t.bySN[i]], true
	}
	return oid.Entry{}, false
}

// LookupByLN binary-searches the by-LN index.
func (t *Table) LookupByLN(ln string) (oid.Entry, bool) {
	i := sort.Search(len(t.byLN), func(i int) bool {
		return t.byNID[t.byLN[i]].LN >= ln
	})
	if i < len(t.byLN) && t.byNID[t.byLN[i]].LN == ln {
		return t.byNID[t.byLN[i]], true
	}
	return oid.Entry{}, false
}

// ForEach visits every built-in entry in NID order. visitor returning
// false stops iteration early.
func (t *Table) ForEach(visitor func(oid.Entry) bool) {
	for _, e := range t.byNID {
		if e.NID == oid.Undef {
			continue
		}
		if !visitor(e) {
			return
		}
	}
}

// Default is the process-wide built-in table, built once from the
// generated entry list in table_gen.go.
var Default = NewTable(rawEntries)

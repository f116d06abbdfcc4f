package builtin

import (
	"testing"

	"github.com/oisee/oidreg/pkg/oid"
)

func TestDefaultLookupsAgree(t *testing.T) {
	e, ok := Default.LookupByNID(NIDCommonName)
	if !ok || e.SN != "CN" {
		t.Fatalf("LookupByNID(NIDCommonName) = %+v, %v", e, ok)
	}

	bySN, ok := Default.LookupBySN("CN")
	if !ok || bySN.NID != NIDCommonName {
		t.Fatalf("LookupBySN(CN) = %+v, %v", bySN, ok)
	}

	byLN, ok := Default.LookupByLN("commonName")
	if !ok || byLN.NID != NIDCommonName {
		t.Fatalf("LookupByLN(commonName) = %+v, %v", byLN, ok)
	}

	byDER, ok := Default.LookupByDER([]byte{0x55, 0x04, 0x03})
	if !ok || byDER.NID != NIDCommonName {
		t.Fatalf("LookupByDER = %+v, %v", byDER, ok)
	}
}

func TestLookupMissReturnsFalse(t *testing.T) {
	if _, ok := Default.LookupBySN("not-a-real-short-name"); ok {
		t.Fatal("LookupBySN should miss for an unknown name")
	}
	if _, ok := Default.LookupByDER([]byte{0xDE, 0xAD, 0xBE, 0xEF}); ok {
		t.Fatal("LookupByDER should miss for unknown content octets")
	}
	if _, ok := Default.LookupByNID(0); ok {
		t.Fatal("LookupByNID(Undef) must always miss")
	}
}

func TestCountMatchesVisitedEntries(t *testing.T) {
	seen := oid.NID(0)
	Default.ForEach(func(e oid.Entry) bool {
		seen++
		return true
	})
	// Count() includes the reserved Undef hole at index 0, so it is one
	// more than the number of real entries ForEach visits.
	if seen != Default.Count()-1 {
		t.Fatalf("visited %d entries, want %d (Count()-1)", seen, Default.Count()-1)
	}
}

func TestForEachEarlyStop(t *testing.T) {
	seen := 0
	Default.ForEach(func(e oid.Entry) bool {
		seen++
		return false
	})
	if seen != 1 {
		t.Fatalf("ForEach after early stop visited %d, want 1", seen)
	}
}

func TestNewTablePanicsOnDuplicateNID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewTable should panic on a duplicate NID")
		}
	}()
	NewTable([]oid.Entry{{NID: 1, SN: "a"}, {NID: 1, SN: "b"}})
}

func TestNewTablePanicsOnUndefNID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewTable should panic on an entry with NID == Undef")
		}
	}()
	NewTable([]oid.Entry{{NID: oid.Undef, SN: "a"}})
}

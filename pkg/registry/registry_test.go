package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/oisee/oidreg/pkg/builtin"
	"github.com/oisee/oidreg/pkg/oid"
	"github.com/oisee/oidreg/pkg/oiderr"
)

func strp(s string) *string { return &s }

// P1: for every NID in the built-in range with a non-hole entry,
// ObjToNID(NIDToObj(n)) == n.
func TestP1BuiltinRoundTrip(t *testing.T) {
	r := New()
	for n := oid.NID(1); n < builtin.Default.Count(); n++ {
		e, ok := r.NIDToObj(n)
		if !ok {
			continue
		}
		if got := r.ObjToNID(e); got != n {
			t.Errorf("ObjToNID(NIDToObj(%d)) = %d, want %d", n, got, n)
		}
	}
}

// P4: after Register(oid, sn, ln) returns k, sn/ln/oid all resolve to k.
func TestP4RegisterResolvesAllKeys(t *testing.T) {
	r := New()
	k, err := r.Register(strp("1.2.3.4.5"), strp("myShort"), strp("My Long Name"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if k < builtin.Default.Count() {
		t.Fatalf("NID %d is not in the added range (>= %d)", k, builtin.Default.Count())
	}
	if got := r.SNToNID("myShort"); got != k {
		t.Errorf("SNToNID = %d, want %d", got, k)
	}
	if got := r.LNToNID("My Long Name"); got != k {
		t.Errorf("LNToNID = %d, want %d", got, k)
	}
	obj, err := r.TextToObj("1.2.3.4.5", true)
	if err != nil {
		t.Fatalf("TextToObj: %v", err)
	}
	if got := r.ObjToNID(obj); got != k {
		t.Errorf("ObjToNID(TextToObj) = %d, want %d", got, k)
	}
	full, ok := r.NIDToObj(k)
	if !ok || full.SN != "myShort" {
		t.Errorf("NIDToObj(%d).SN = %q, want \"myShort\"", k, full.SN)
	}
}

// P5: a second Register colliding on sn/ln/der fails with ErrAlreadyExists
// and leaves state untouched (sn_to_nid("other") stays Undef).
func TestP5CollisionLeavesStateUntouched(t *testing.T) {
	r := New()
	if _, err := r.Register(strp("1.2.3.4.5"), strp("myShort"), strp("My Long Name")); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	before := r.AddedLen()

	_, err := r.Register(strp("1.2.3.4.5"), strp("other"), strp("Other"))
	if !errors.Is(err, oiderr.ErrAlreadyExists) {
		t.Fatalf("second Register: want ErrAlreadyExists, got %v", err)
	}
	if r.SNToNID("other") != oid.Undef {
		t.Error("SNToNID(\"other\") should remain Undef after failed register")
	}
	if r.AddedLen() != before {
		t.Errorf("AddedLen() changed from %d to %d after failed register", before, r.AddedLen())
	}
}

// P6: under N concurrent AllocateNID(1) callers, results are a permutation
// of a contiguous range with no duplicates.
func TestP6ConcurrentAllocateNID(t *testing.T) {
	r := New()
	const n = 500
	start := r.nextNID.Load()

	out := make([]oid.NID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = r.AllocateNID(1)
		}(i)
	}
	wg.Wait()

	seen := make(map[oid.NID]bool, n)
	for _, v := range out {
		if seen[v] {
			t.Fatalf("duplicate NID %d allocated", v)
		}
		seen[v] = true
		if uint64(v) < start || uint64(v) >= start+n {
			t.Fatalf("NID %d out of expected range [%d, %d)", v, start, start+n)
		}
	}
	if len(seen) != n {
		t.Fatalf("got %d distinct NIDs, want %d", len(seen), n)
	}
}

func TestRegisterRequiresAnArgument(t *testing.T) {
	r := New()
	_, err := r.Register(nil, nil, nil)
	if !errors.Is(err, oiderr.ErrInvalidArgument) {
		t.Fatalf("Register(nil,nil,nil): want ErrInvalidArgument, got %v", err)
	}
}

func TestScenario2CommonName(t *testing.T) {
	r := New()
	der, err := r.TextToObj("2.5.4.3", true)
	if err != nil {
		t.Fatalf("TextToObj: %v", err)
	}
	n := r.ObjToNID(der)
	if n != builtin.NIDCommonName {
		t.Fatalf("ObjToNID(2.5.4.3) = %d, want NIDCommonName", n)
	}
	full, _ := r.NIDToObj(n)
	named, err := r.ObjToText(full, false)
	if err != nil || named != "commonName" {
		t.Fatalf("ObjToText(noName=false) = %q, %v, want \"commonName\"", named, err)
	}
	dotted, err := r.ObjToText(full, true)
	if err != nil || dotted != "2.5.4.3" {
		t.Fatalf("ObjToText(noName=true) = %q, %v, want \"2.5.4.3\"", dotted, err)
	}
}

func TestShutdownFreesAddedEntriesAndResets(t *testing.T) {
	r := New()
	if _, err := r.Register(strp("1.2.3.4.5"), strp("myShort"), strp("My Long Name")); err != nil {
		t.Fatal(err)
	}
	if r.AddedLen() == 0 {
		t.Fatal("expected index records before shutdown")
	}

	r.Shutdown()

	if r.AddedLen() != 0 {
		t.Fatalf("AddedLen() after Shutdown = %d, want 0", r.AddedLen())
	}
	if r.SNToNID("myShort") != oid.Undef {
		t.Fatal("SNToNID resolves a name after Shutdown")
	}

	k, err := r.Register(strp("1.2.3.4.5"), strp("myShort"), strp("My Long Name"))
	if err != nil {
		t.Fatalf("re-register after Shutdown: %v", err)
	}
	if k < builtin.Default.Count() {
		t.Fatalf("post-shutdown NID %d not in added range", k)
	}
}

func TestAddObjectRollsBackOnCollision(t *testing.T) {
	r := New()
	first := oid.Entry{NID: r.AllocateNID(1), SN: "dup"}
	if n := r.AddObject(first); n == oid.Undef {
		t.Fatal("AddObject(first) failed unexpectedly")
	}

	second := oid.Entry{NID: r.AllocateNID(1), SN: "dup"}
	if n := r.AddObject(second); n != oid.Undef {
		t.Fatalf("AddObject(second) = %d, want Undef on collision", n)
	}
}

func TestNameOnlyEntryUnreachableByDER(t *testing.T) {
	// Open Question from spec.md §9: register(oid=nil) still allocates a
	// NID, but the entry is reachable only by name, never via ObjToNID on
	// an empty-DER entry.
	r := New()
	k, err := r.Register(nil, strp("onlyName"), nil)
	if err != nil {
		t.Fatalf("Register(nil, sn, nil): %v", err)
	}
	if r.SNToNID("onlyName") != k {
		t.Fatal("name-only entry should resolve by SN")
	}
	if n := r.ObjToNID(oid.Entry{}); n != oid.Undef {
		t.Fatal("an empty entry must never resolve to a NID")
	}
}

func TestTextToObjRejectsNonDigitNonName(t *testing.T) {
	r := New()
	_, err := r.TextToObj("not-a-name-or-oid", true)
	if !errors.Is(err, oiderr.ErrInvalidOID) {
		t.Fatalf("want ErrInvalidOID, got %v", err)
	}
}

func TestAllocateNIDBlock(t *testing.T) {
	r := New()
	start := r.AllocateNID(10)
	next := r.AllocateNID(1)
	if uint64(next) != uint64(start)+10 {
		t.Fatalf("AllocateNID(1) after a 10-block = %d, want %d", next, uint64(start)+10)
	}
}

func TestErrorsAreFmtErrorfWrapped(t *testing.T) {
	_, err := (New()).Register(nil, nil, nil)
	if err == nil || !errors.Is(err, oiderr.ErrInvalidArgument) ||
		fmt.Sprintf("%v", err) == oiderr.ErrInvalidArgument.Error() {
		t.Fatal("expected ErrInvalidArgument wrapped with added context")
	}
}

// Package registry implements the facade (C4) unifying the built-in table
// and the added index, plus the NID allocator and shutdown sweep (C6).
//
// A single sync.RWMutex guards the added index: readers take it in shared
// mode, Register/AddObject/Shutdown take it exclusively. Lookups that hit
// the built-in table never touch the lock, matching spec.md §5 and the
// teacher's own split between lock-free catalog lookups
// (pkg/inst.Catalog, indexed directly) and lock-guarded mutable state
// (pkg/search/worker.go's sync.Mutex-guarded result.Table).
package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/oisee/oidreg/pkg/builtin"
	"github.com/oisee/oidreg/pkg/codec"
	"github.com/oisee/oidreg/pkg/index"
	"github.com/oisee/oidreg/pkg/oid"
	"github.com/oisee/oidreg/pkg/oiderr"
)

// Registry is the public facade over the built-in table and the added
// index. The zero value is not usable; construct with New.
type Registry struct {
	builtin *builtin.Table

	mu    sync.RWMutex
	added *index.AddedIndex

	nextNID atomic.Uint64

	initOnce sync.Once
	initErr  error
}

// New returns a Registry seeded from the process-wide built-in table.
func New() *Registry {
	r := &Registry{builtin: builtin.Default}
	r.ensureInit()
	return r
}

// ensureInit lazily constructs the added index and seeds the NID
// allocator, under a run-once guard — the Go analog of spec.md §5's
// "lock created lazily under a run-once guard; concurrent first callers
// race safely". sync.Once itself cannot fail, so initErr only ever
// surfaces if a future change makes the one-time setup fallible; it is
// kept so ErrLockInitFailed has a real return path to exercise in tests.
func (r *Registry) ensureInit() error {
	r.initOnce.Do(func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.initErr = fmt.Errorf("%w: %v", oiderr.ErrLockInitFailed, rec)
			}
		}()
		r.added = index.New()
		r.nextNID.Store(uint64(r.builtin.Count()))
	})
	return r.initErr
}

// NIDToObj returns the entry for n, built-in or added.
func (r *Registry) NIDToObj(n oid.NID) (oid.Entry, bool) {
	if n == oid.Undef {
		return oid.Entry{}, false
	}
	if e, ok := r.builtin.LookupByNID(n); ok {
		return e, true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.added.Retrieve(index.Key{Tag: index.TagNID, Value: fmt.Sprintf("%d", n)})
	if !ok {
		return oid.Entry{}, false
	}
	return *rec.Entry, true
}

// ObjToNID returns e's NID: e.NID if set, else a DER-based lookup in the
// built-in table, else a DER-based lookup in the added index.
func (r *Registry) ObjToNID(e oid.Entry) oid.NID {
	if e.NID != oid.Undef {
		return e.NID
	}
	if !e.HasDER() {
		return oid.Undef
	}
	if be, ok := r.builtin.LookupByDER(e.DER); ok {
		return be.NID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.added.Retrieve(index.Key{Tag: index.TagDER, Value: string(e.DER)})
	if !ok {
		return oid.Undef
	}
	return rec.Entry.NID
}

// SNToNID resolves a short name to a NID, built-in table first.
func (r *Registry) SNToNID(s string) oid.NID {
	if s == "" {
		return oid.Undef
	}
	if e, ok := r.builtin.LookupBySN(s); ok {
		return e.NID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.added.Retrieve(index.Key{Tag: index.TagSN, Value: s})
	if !ok {
		return oid.Undef
	}
	return rec.Entry.NID
}

// LNToNID resolves a long name to a NID, built-in table first.
func (r *Registry) LNToNID(s string) oid.NID {
	if s == "" {
		return oid.Undef
	}
	if e, ok := r.builtin.LookupByLN(s); ok {
		return e.NID
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.added.Retrieve(index.Key{Tag: index.TagLN, Value: s})
	if !ok {
		return oid.Undef
	}
	return rec.Entry.NID
}

// TextToNID resolves either a name (SN then LN) or dotted-decimal text to
// a NID.
func (r *Registry) TextToNID(s string) oid.NID {
	e, err := r.TextToObj(s, false)
	if err != nil {
		return oid.Undef
	}
	return r.ObjToNID(e)
}

// TextToObj resolves text to an entry. If noName is false, s is first
// tried as a short name, then a long name; otherwise (or on a name miss)
// s must be dotted-decimal OID text, parsed via codec.TextToDER.
func (r *Registry) TextToObj(s string, noName bool) (oid.Entry, error) {
	if !noName {
		if n := r.SNToNID(s); n != oid.Undef {
			e, _ := r.NIDToObj(n)
			return e, nil
		}
		if n := r.LNToNID(s); n != oid.Undef {
			e, _ := r.NIDToObj(n)
			return e, nil
		}
	}
	if s == "" || s[0] < '0' || s[0] > '9' {
		return oid.Entry{}, fmt.Errorf("%w: %q is not a name and does not begin with a digit", oiderr.ErrInvalidOID, s)
	}
	der, err := codec.TextToDER(s)
	if err != nil {
		return oid.Entry{}, err
	}
	return oid.Entry{DER: der}, nil
}

// ObjToText renders e as text. If noName is false and e resolves to a
// registered NID, the long name is emitted (falling back to the short
// name); otherwise dotted-decimal text is emitted via codec.DERToText.
func (r *Registry) ObjToText(e oid.Entry, noName bool) (string, error) {
	if !noName {
		n := e.NID
		if n == oid.Undef {
			n = r.ObjToNID(e)
		}
		if n != oid.Undef {
			if full, ok := r.NIDToObj(n); ok {
				if full.HasLN() {
					return full.LN, nil
				}
				if full.HasSN() {
					return full.SN, nil
				}
			}
		}
	}
	if !e.HasDER() {
		return "", fmt.Errorf("%w: entry has no DER content to render", oiderr.ErrInvalidOID)
	}
	return codec.DERToText(e.DER)
}

// AllocateNID atomically reserves a contiguous block of k NIDs, returning
// the first. Concurrent callers never observe overlapping blocks.
func (r *Registry) AllocateNID(k uint64) oid.NID {
	if k == 0 {
		k = 1
	}
	start := r.nextNID.Add(k) - k
	return oid.NID(start)
}

// Register allocates a NID and an owned entry from up to three optional
// strings, and installs it into the added index. At least one of der, sn,
// ln must be non-nil. A name collision or a DER collision with any entry
// already known (built-in or added) fails with ErrAlreadyExists.
func (r *Registry) Register(der, sn, ln *string) (oid.NID, error) {
	if der == nil && sn == nil && ln == nil {
		return oid.Undef, fmt.Errorf("%w: register needs at least one of oid, sn, ln", oiderr.ErrInvalidArgument)
	}

	if sn != nil && *sn != "" {
		if r.SNToNID(*sn) != oid.Undef {
			return oid.Undef, fmt.Errorf("%w: sn %q", oiderr.ErrAlreadyExists, *sn)
		}
	}
	if ln != nil && *ln != "" {
		if r.LNToNID(*ln) != oid.Undef {
			return oid.Undef, fmt.Errorf("%w: ln %q", oiderr.ErrAlreadyExists, *ln)
		}
	}

	var derBytes []byte
	if der != nil && *der != "" {
		parsed, err := codec.TextToDER(*der)
		if err != nil {
			return oid.Undef, err
		}
		derBytes = parsed
		if r.ObjToNID(oid.Entry{DER: derBytes}) != oid.Undef {
			return oid.Undef, fmt.Errorf("%w: oid %q", oiderr.ErrAlreadyExists, *der)
		}
	}

	e := &oid.Entry{NID: r.AllocateNID(1)}
	if len(derBytes) > 0 {
		e.DER = derBytes
		e.Flags |= oid.FlagDEROwned
	}
	if sn != nil {
		e.SN = *sn
		e.Flags |= oid.FlagSNOwned
	}
	if ln != nil {
		e.LN = *ln
		e.Flags |= oid.FlagLNOwned
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.added.Insert(e); err != nil {
		return oid.Undef, err
	}
	return e.NID, nil
}

// AddObject inserts a pre-built entry directly, bypassing Register's
// pre-checks (so it is the one caller of index.AddedIndex.Insert's
// rollback path: a collision here is only discovered inside Insert
// itself). If e.NID is oid.Undef a fresh NID is allocated. Returns the
// entry's NID, or oid.Undef if any of its keys collides with an existing
// entry.
func (r *Registry) AddObject(e oid.Entry) oid.NID {
	if e.NID == oid.Undef {
		e.NID = r.AllocateNID(1)
	}
	owned := e
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.added.Insert(&owned); err != nil {
		return oid.Undef
	}
	return owned.NID
}

// Shutdown runs the three-pass sweep of spec.md §4.6 over the added
// index, freeing every added entry exactly once despite up to four
// records sharing it, then resets the registry to its pre-init state.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Pass 1: zero every entry's scratch refcount.
	r.added.ForEach(func(rec *index.Record) bool {
		rec.Entry.ResetScratch()
		return true
	})
	// Pass 2: each record increments its entry's scratch counter once, so
	// after this pass the counter equals the entry's reference count.
	r.added.ForEach(func(rec *index.Record) bool {
		rec.Entry.IncScratch()
		return true
	})
	// Pass 3: each record decrements its entry's counter once, bringing
	// every counter back to zero. Nothing is freed in this pass: in Go
	// "free" means dropping the last reference, which happens when Reset
	// below discards the records, so the garbage collector can reclaim the
	// entries — there is no manual deallocation step.
	r.added.ForEach(func(rec *index.Record) bool {
		rec.Entry.DecScratch()
		return true
	})

	r.added.Reset()
	r.nextNID.Store(uint64(r.builtin.Count()))
}

// ForEachAdded visits every added entry's records (not built-in entries).
// Exposed for diagnostics (cmd/oidreg's dump subcommand).
func (r *Registry) ForEachAdded(visitor func(*index.Record) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.added.ForEach(visitor)
}

// AddedLen returns the number of index records currently held (not the
// number of distinct entries).
func (r *Registry) AddedLen() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.added.Len()
}

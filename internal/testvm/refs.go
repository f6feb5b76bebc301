package testvm

import "github.com/kn3ll/jui"

// refTable maps reference handles to runtime values. Handles are
// 1-based slice indices recycled through a free list. Pin counts track
// outstanding borrowed string buffers per reference.
type refTable struct {
	entries  []refEntry
	freeList []jui.Ref
}

type refEntry struct {
	value any
	kind  jui.RefKind
	pins  int
	valid bool
}

func newRefTable() *refTable {
	return &refTable{
		entries:  make([]refEntry, 0, 64),
		freeList: make([]jui.Ref, 0, 16),
	}
}

func (t *refTable) insert(kind jui.RefKind, value any) jui.Ref {
	e := refEntry{value: value, kind: kind, valid: true}

	if n := len(t.freeList); n > 0 {
		ref := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[ref-1] = e
		return ref
	}

	t.entries = append(t.entries, e)
	return jui.Ref(len(t.entries))
}

func (t *refTable) get(ref jui.Ref) (any, bool) {
	if ref == 0 || int(ref) > len(t.entries) {
		return nil, false
	}
	e := t.entries[ref-1]
	if !e.valid {
		return nil, false
	}
	return e.value, true
}

func (t *refTable) kind(ref jui.Ref) (jui.RefKind, bool) {
	if ref == 0 || int(ref) > len(t.entries) {
		return 0, false
	}
	e := t.entries[ref-1]
	if !e.valid {
		return 0, false
	}
	return e.kind, true
}

func (t *refTable) drop(ref jui.Ref) bool {
	if ref == 0 || int(ref) > len(t.entries) {
		return false
	}
	e := &t.entries[ref-1]
	if !e.valid || e.pins > 0 {
		return false
	}
	e.valid = false
	e.value = nil
	t.freeList = append(t.freeList, ref)
	return true
}

func (t *refTable) pin(ref jui.Ref) bool {
	if ref == 0 || int(ref) > len(t.entries) {
		return false
	}
	e := &t.entries[ref-1]
	if !e.valid {
		return false
	}
	e.pins++
	return true
}

func (t *refTable) unpin(ref jui.Ref) bool {
	if ref == 0 || int(ref) > len(t.entries) {
		return false
	}
	e := &t.entries[ref-1]
	if !e.valid || e.pins == 0 {
		return false
	}
	e.pins--
	return true
}

func (t *refTable) live() int {
	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Package dict provides reference-counted string interning.
//
// The toolchain sees the same module names, extension names, and source
// paths over and over; interning them keeps one canonical copy alive for
// as long as anything references it. Insert and Remove are balanced calls:
// the canonical copy is evicted when its last reference is removed.
package dict

import (
	"strings"
	"sync"
)

type entry struct {
	s    string
	refs int
}

// Dict is a reference-counted string intern table. The zero value is not
// usable; call New. A Dict is safe for concurrent use.
type Dict struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Dict {
	return &Dict{entries: make(map[string]*entry)}
}

// Insert returns the canonical copy of s and takes a reference on it.
// The copy is detached from s's backing array, so interning a substring
// of a large buffer does not pin the buffer.
func (d *Dict) Insert(s string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.entries[s]; ok {
		e.refs++
		return e.s
	}
	e := &entry{s: strings.Clone(s), refs: 1}
	d.entries[e.s] = e
	return e.s
}

// Remove drops one reference to s. The canonical copy is evicted when the
// count reaches zero. Removing a string that was never inserted is a no-op.
func (d *Dict) Remove(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.entries[s]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(d.entries, e.s)
	}
}

// Len reports the number of distinct interned strings.
func (d *Dict) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

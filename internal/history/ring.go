// internal/history/ring.go
package history

import "strings"

// Ring holds the queries executed this session, oldest first, plus a recall
// cursor. index -1 means "not browsing": the buffer shows live edits.
// index i (0-based) selects the (i+1)-th newest entry.
type Ring struct {
	entries []string
	index   int
}

// NewRing returns an empty ring with the cursor parked at -1.
func NewRing() *Ring {
	return &Ring{index: -1}
}

// Submit appends a query and resets the recall cursor. Blank queries are
// dropped.
func (r *Ring) Submit(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	r.entries = append(r.entries, query)
	r.index = -1
}

// RecallOlder moves the cursor one step toward the oldest entry, clamped
// there, and returns the entry now selected. ok is false when the ring is
// empty.
func (r *Ring) RecallOlder() (entry string, ok bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	if r.index < len(r.entries)-1 {
		r.index++
	}
	return r.entries[len(r.entries)-1-r.index], true
}

// RecallNewer moves the cursor one step toward -1, clamped. ok is false
// when the cursor lands on (or already was at) -1, meaning the live buffer
// should be restored.
func (r *Ring) RecallNewer() (entry string, ok bool) {
	if r.index <= 0 {
		r.index = -1
		return "", false
	}
	r.index--
	return r.entries[len(r.entries)-1-r.index], true
}

// Browsing reports whether the cursor currently selects a history entry.
func (r *Ring) Browsing() bool { return r.index >= 0 }

// Len returns the number of stored entries.
func (r *Ring) Len() int { return len(r.entries) }

// Entries returns a copy of the stored queries, oldest first.
func (r *Ring) Entries() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

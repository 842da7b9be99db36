package symjson

import "github.com/zeebo/xxh3"

// maxInternLen bounds which strings are considered for interning. Long
// strings are rarely repeated and not worth hashing.
const maxInternLen = 64

// internTable dedups short strings by xxh3 hash. A hash hit is confirmed
// with a real comparison before reuse, so collisions cost a copy, never
// correctness.
type internTable struct {
	entries map[uint64]string
}

func (t *internTable) get(b []byte) string {
	if t.entries == nil {
		t.entries = make(map[uint64]string, 64)
	}
	h := xxh3.Hash(b)
	if s, ok := t.entries[h]; ok && s == string(b) {
		return s
	}
	s := string(b)
	t.entries[h] = s
	return s
}

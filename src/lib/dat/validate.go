package dat

import "fmt"

// MalformedTrieError aggregates every slot that breaks the double-array
// invariants.
type MalformedTrieError struct {
	Indices []int
}

func (e *MalformedTrieError) Error() string {
	return fmt.Sprintf("dat: malformed trie: %d bad slot(s), first at index %d", len(e.Indices), e.Indices[0])
}

// Validate is an advisory whole-array scan: every owned slot must name
// an in-range owner whose base does not exceed the slot. Traversal never
// calls this; a store that fails it produces garbage, not errors, when
// walked. Validate catches gross corruption, not every possible lie a
// broken builder could tell.
func (d *Dat) Validate() error {
	bad := []int{}
	for i := range d.check {
		p := int(d.check[i])
		if p == int(freeSlot) || p == i {
			continue // unused slot conventions
		}
		if p < 0 || p >= len(d.base) || int(d.base[p]) > i {
			bad = append(bad, i)
		}
	}
	if len(bad) > 0 {
		return &MalformedTrieError{Indices: bad}
	}
	return nil
}

// Package dat implements a double-array trie: a word set stored in two
// parallel integer arrays instead of per-node pointers. Node i has
// base[i] and check[i]; a transition from parent p on code point c lands
// at base[p]+c and is real only when check[base[p]+c] == p. A node p
// ends a word when check[base[p]] == p, in which case base[base[p]]
// holds the word's payload (for us: the line number the word came from).
// The same slot therefore serves as either a transition table entry or
// a payload cell, disambiguated by the check test.
package dat

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by the bounds-checked accessors.
var ErrOutOfRange = errors.New("dat: index out of range")

// Dat is an immutable double-array trie. Once built or loaded it is
// never mutated, so any number of goroutines may traverse it at once.
type Dat struct {
	base  []int32
	check []int32
}

// New wraps pre-built arrays. It checks shape only; the contents are
// the builder's responsibility.
func New(base, check []int32) (*Dat, error) {
	if len(base) != len(check) {
		return nil, fmt.Errorf("dat: base/check length mismatch: %d vs %d", len(base), len(check))
	}
	if len(base) == 0 {
		return nil, fmt.Errorf("dat: no root node")
	}
	return &Dat{base: base, check: check}, nil
}

// Size is the node (slot) count.
func (d *Dat) Size() int {
	return len(d.base)
}

func (d *Dat) BaseAt(index int) (int32, error) {
	if index < 0 || index >= len(d.base) {
		return 0, ErrOutOfRange
	}
	return d.base[index], nil
}

func (d *Dat) CheckAt(index int) (int32, error) {
	if index < 0 || index >= len(d.check) {
		return 0, ErrOutOfRange
	}
	return d.check[index], nil
}

// Get returns the payload stored for word. The empty word is never
// stored; the root is not a terminal.
func (d *Dat) Get(word string) (int32, bool) {
	if word == "" {
		return 0, false
	}
	index := 0
	for _, c := range word {
		next := int(d.base[index]) + int(c)
		if next < 1 || next >= len(d.check) || d.check[next] != int32(index) {
			return 0, false
		}
		index = next
	}
	m := int(d.base[index])
	if m < 0 || m >= len(d.check) || d.check[m] != int32(index) {
		return 0, false
	}
	return d.base[m], true
}

func (d *Dat) Contains(word string) bool {
	_, ok := d.Get(word)
	return ok
}

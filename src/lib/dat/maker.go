package dat

import (
	"fmt"
	"sort"
)

// makerNode is the scratch pointer trie the maker packs into the arrays.
type makerNode struct {
	children map[rune]*makerNode
	terminal bool
	line     int32
}

// Make builds a double-array trie holding every entry. Words must be
// distinct, non-empty, and free of NUL: code point offsets 1 and up are
// transitions, offset 0 at each node is reserved as the terminal slot
// whose base cell carries the payload.
func Make(entries []Entry) (*Dat, error) {
	root := &makerNode{}
	for _, e := range entries {
		node := root
		for _, c := range e.Word {
			if c < 1 {
				return nil, fmt.Errorf("dat: NUL code point in %q", e.Word)
			}
			if node.children == nil {
				node.children = map[rune]*makerNode{}
			}
			child, ok := node.children[c]
			if !ok {
				child = &makerNode{}
				node.children[c] = child
			}
			node = child
		}
		if node == root {
			return nil, fmt.Errorf("dat: empty word")
		}
		if node.terminal {
			return nil, fmt.Errorf("dat: duplicate word %q", e.Word)
		}
		node.terminal = true
		node.line = e.Line
	}
	if !root.terminal && root.children == nil {
		return nil, fmt.Errorf("dat: no words")
	}
	m := &maker{
		base:  []int32{0},
		check: []int32{freeSlot},
		used:  []bool{true}, // slot 0 is the root, never reallocated
	}
	m.place(root, 0)
	return &Dat{base: m.base, check: m.check}, nil
}

// MakeFromLines builds from a word-per-line list, payload = 1-based
// line number.
func MakeFromLines(words []string) (*Dat, error) {
	entries := make([]Entry, len(words))
	for i, w := range words {
		entries[i] = Entry{Word: w, Line: int32(i + 1)}
	}
	return Make(entries)
}

// freeSlot marks an unowned check cell. Any out-of-range value works;
// the readers only ever test check for equality with a node index.
const freeSlot = int32(-1)

type maker struct {
	base  []int32
	check []int32
	used  []bool
}

// place assigns a base to the node at index, claims the slots for its
// terminal marker and children, then recurses. Offsets are claimed all
// at once before descending so a child subtree can't steal a sibling's
// slot.
func (m *maker) place(n *makerNode, index int) {
	offsets := n.offsets()
	b := m.findBase(offsets)
	m.base[index] = int32(b)
	for _, c := range offsets {
		m.claim(b+int(c), index)
	}
	if n.terminal {
		m.base[b] = n.line
	}
	for _, c := range offsets {
		if c == 0 {
			continue
		}
		m.place(n.children[c], b+int(c))
	}
}

// offsets lists the slot offsets the node needs, ascending: 0 when the
// node ends a word, then one per child code point.
func (n *makerNode) offsets() []rune {
	offsets := make([]rune, 0, len(n.children)+1)
	if n.terminal {
		offsets = append(offsets, 0)
	}
	for c := range n.children {
		offsets = append(offsets, c)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
	return offsets
}

// findBase is a first-fit scan for a base where every needed slot is
// free. Bases start at 1 so no claimed slot can ever be the root's, and
// base+offset >= base keeps the owned-slot ordering invariant for free.
func (m *maker) findBase(offsets []rune) int {
	for b := 1; ; b++ {
		ok := true
		for _, c := range offsets {
			slot := b + int(c)
			if slot < len(m.used) && m.used[slot] {
				ok = false
				break
			}
		}
		if ok {
			return b
		}
	}
}

func (m *maker) claim(slot, owner int) {
	for len(m.check) <= slot {
		m.base = append(m.base, 0)
		m.check = append(m.check, freeSlot)
		m.used = append(m.used, false)
	}
	m.used[slot] = true
	m.check[slot] = int32(owner)
}

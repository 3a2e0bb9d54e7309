package dat

// Entry is one stored word and its payload.
type Entry struct {
	Word string
	Line int32
}

// Walk visits every stored (word, line) pair. The order is depth-first
// with siblings taken by ascending slot index, which is NOT
// lexicographic: slot placement depends on how the builder packed the
// arrays. Callers wanting the original input order should sort by line.
// visit returning false stops the walk.
func (d *Dat) Walk(visit func(word string, line int32) bool) {
	d.walk(0, make([]rune, 0, 16), visit)
}

// WalkPrefix visits every stored word that begins with prefix,
// including prefix itself if stored. An empty prefix walks everything.
func (d *Dat) WalkPrefix(prefix string, visit func(word string, line int32) bool) {
	index := 0
	for _, c := range prefix {
		next := int(d.base[index]) + int(c)
		if next < 1 || next >= len(d.check) || d.check[next] != int32(index) {
			return
		}
		index = next
	}
	d.walk(index, []rune(prefix), visit)
}

// Entries collects the whole walk.
func (d *Dat) Entries() []Entry {
	entries := []Entry{}
	d.Walk(func(word string, line int32) bool {
		entries = append(entries, Entry{Word: word, Line: line})
		return true
	})
	return entries
}

// walk: terminal test first, then the ascending child scan. The root
// (empty prefix) is never emitted even when its terminal arithmetic
// happens to hold.
func (d *Dat) walk(index int, prefix []rune, visit func(string, int32) bool) bool {
	b := int(d.base[index])
	if len(prefix) > 0 && b >= 0 && b < len(d.check) && d.check[b] == int32(index) {
		if !visit(string(prefix), d.base[b]) {
			return false
		}
	}
	// offset 0 is the terminal slot, so children live at b+1 and up.
	start := b + 1
	if start < 1 {
		start = 1
	}
	for j := start; j < len(d.check); j++ {
		if d.check[j] == int32(index) {
			if !d.walk(j, append(prefix, rune(j-b)), visit) {
				return false
			}
		}
	}
	return true
}

// Iterator yields entries one at a time, in exactly Walk's order, from
// an explicit frame stack rather than recursion. The sequence is
// forward-only; a fresh iterator restarts from the root.
type Iterator struct {
	d      *Dat
	prefix []rune
	stack  []frame
}

// frame tracks one node on the descent path. next is the slot the child
// scan resumes at; -1 means the node's terminal test hasn't run yet.
type frame struct {
	index int
	next  int
}

func (d *Dat) Iter() *Iterator {
	return &Iterator{
		d:     d,
		stack: []frame{{index: 0, next: -1}},
	}
}

// Next returns the next stored entry, or ok=false when exhausted.
func (it *Iterator) Next() (Entry, bool) {
	for len(it.stack) > 0 {
		f := &it.stack[len(it.stack)-1]
		b := int(it.d.base[f.index])
		if f.next < 0 {
			f.next = b + 1
			if f.next < 1 {
				f.next = 1
			}
			if len(it.prefix) > 0 && b >= 0 && b < it.d.Size() && it.d.check[b] == int32(f.index) {
				return Entry{Word: string(it.prefix), Line: it.d.base[b]}, true
			}
		}
		pushed := false
		for j := f.next; j < it.d.Size(); j++ {
			if it.d.check[j] == int32(f.index) {
				f.next = j + 1
				it.prefix = append(it.prefix, rune(j-b))
				it.stack = append(it.stack, frame{index: j, next: -1})
				pushed = true
				break
			}
		}
		if !pushed {
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.prefix) > 0 {
				it.prefix = it.prefix[:len(it.prefix)-1]
			}
		}
	}
	return Entry{}, false
}

package dat

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lexiconWords = []string{
	"a",
	"ab",
	"abc",
	"abandon",
	"band",
	"bandana",
	"b",
	"cattle",
	"cat",
	"dog",
	"dot",
	"中",
	"中国",
	"中国人",
	"人民",
	"人民币",
	"日本語",
	"zebra",
}

// Traversal then a stable sort on line number must give back the
// builder's input list exactly.
func TestRoundTrip(t *testing.T) {
	d, err := MakeFromLines(lexiconWords)
	require.NoError(t, err)

	entries := d.Entries()
	require.Len(t, entries, len(lexiconWords))

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Line < entries[j].Line })
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Word
	}
	assert.Equal(t, lexiconWords, got)
}

func TestNoSpuriousOrMissingWords(t *testing.T) {
	d, err := MakeFromLines(lexiconWords)
	require.NoError(t, err)

	want := map[string]int32{}
	for i, w := range lexiconWords {
		want[w] = int32(i + 1)
	}

	seen := map[string]int{}
	d.Walk(func(word string, line int32) bool {
		require.NotEmpty(t, word, "empty word emitted")
		wantLine, ok := want[word]
		require.True(t, ok, "invented word %q", word)
		assert.Equal(t, wantLine, line, "payload for %q", word)
		seen[word]++
		return true
	})

	for w := range want {
		assert.Equal(t, 1, seen[w], "emit count for %q", w)
	}
}

func TestIteratorMatchesWalk(t *testing.T) {
	d, err := MakeFromLines(lexiconWords)
	require.NoError(t, err)

	walked := []Entry{}
	d.Walk(func(word string, line int32) bool {
		walked = append(walked, Entry{Word: word, Line: line})
		return true
	})

	it := d.Iter()
	pulled := []Entry{}
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		pulled = append(pulled, e)
	}
	require.Equal(t, walked, pulled)

	// exhausted iterators stay exhausted
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestWalkEarlyStop(t *testing.T) {
	d, err := MakeFromLines(lexiconWords)
	require.NoError(t, err)

	count := 0
	d.Walk(func(word string, line int32) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestWalkPrefix(t *testing.T) {
	d, err := MakeFromLines(lexiconWords)
	require.NoError(t, err)

	got := map[string]int32{}
	d.WalkPrefix("ab", func(word string, line int32) bool {
		got[word] = line
		return true
	})
	assert.Equal(t, map[string]int32{"ab": 2, "abc": 3, "abandon": 4}, got)

	got = map[string]int32{}
	d.WalkPrefix("中国", func(word string, line int32) bool {
		got[word] = line
		return true
	})
	assert.Equal(t, map[string]int32{"中国": 13, "中国人": 14}, got)

	none := 0
	d.WalkPrefix("middle", func(string, int32) bool {
		none++
		return true
	})
	assert.Zero(t, none, "prefix absent from the set must visit nothing")
}

// Every index the traversal touches must sit inside [0, Size()). This
// re-runs the walk through the bounds-checked accessors and fails on
// any ErrOutOfRange.
func TestWalkStaysInBounds(t *testing.T) {
	d, err := MakeFromLines(lexiconWords)
	require.NoError(t, err)

	var descend func(index int, depth int)
	descend = func(index int, depth int) {
		b32, err := d.BaseAt(index)
		require.NoError(t, err, "base read at %d", index)
		b := int(b32)
		if b >= 0 && b < d.Size() {
			_, err = d.CheckAt(b)
			require.NoError(t, err, "terminal check read at %d", b)
		} else {
			require.Fail(t, "terminal slot out of range", "node %d base %d", index, b)
		}
		for j := b + 1; j < d.Size(); j++ {
			c, err := d.CheckAt(j)
			require.NoError(t, err)
			if int(c) == index {
				descend(j, depth+1)
			}
		}
	}
	descend(0, 0)
}

func TestGetAgreesWithWalk(t *testing.T) {
	d, err := MakeFromLines(lexiconWords)
	require.NoError(t, err)

	d.Walk(func(word string, line int32) bool {
		got, ok := d.Get(word)
		require.True(t, ok, "emitted word %q not gettable", word)
		assert.Equal(t, line, got)
		return true
	})
}

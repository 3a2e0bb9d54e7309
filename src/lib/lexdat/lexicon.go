package lexdat

import (
	"fmt"
	"sync"

	"gitlab.com/pnathan/lexdat/src/lib/dat"
)

// Lexicon is the server-side handle on the current dictionary. The Dat
// itself is immutable; the mutex only guards swapping the pointer when
// Reload brings in a fresh file.
type Lexicon struct {
	mutex sync.RWMutex
	d     *dat.Dat
	path  string
}

// Open loads the dictionary at path.
func Open(path string) (*Lexicon, error) {
	d, err := dat.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexdat: opening %s: %w", path, err)
	}
	return &Lexicon{d: d, path: path}, nil
}

// NewLexicon wraps an already-built store; Reload is unavailable.
func NewLexicon(d *dat.Dat) *Lexicon {
	return &Lexicon{d: d}
}

// Dat returns the current store. Callers may traverse it freely; it
// stays valid even if a Reload swaps in a newer one meanwhile.
func (l *Lexicon) Dat() *dat.Dat {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.d
}

// Reload re-reads the backing file and swaps it in.
func (l *Lexicon) Reload() error {
	if l.path == "" {
		return fmt.Errorf("lexdat: no backing file to reload from")
	}
	d, err := dat.LoadFile(l.path)
	if err != nil {
		return err
	}
	l.mutex.Lock()
	l.d = d
	l.mutex.Unlock()
	return nil
}

func (l *Lexicon) Path() string {
	return l.path
}

func (l *Lexicon) Size() int {
	return l.Dat().Size()
}

func (l *Lexicon) Fingerprint() []byte {
	return l.Dat().Fingerprint()
}

func (l *Lexicon) Lookup(word string) (int32, bool) {
	return l.Dat().Get(word)
}

func (l *Lexicon) Entries() []dat.Entry {
	return l.Dat().Entries()
}

func (l *Lexicon) PrefixEntries(prefix string) []dat.Entry {
	entries := []dat.Entry{}
	l.Dat().WalkPrefix(prefix, func(word string, line int32) bool {
		entries = append(entries, dat.Entry{Word: word, Line: line})
		return true
	})
	return entries
}

package dat

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	d, err := MakeFromLines(lexiconWords)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, d.Save(buf))
	require.Equal(t, 8*d.Size(), buf.Len())

	loaded, err := Load(buf)
	require.NoError(t, err)
	require.Equal(t, d.Size(), loaded.Size())
	assert.Equal(t, d.Fingerprint(), loaded.Fingerprint())
	assert.Equal(t, d.Entries(), loaded.Entries())
}

func TestSaveLoadFile(t *testing.T) {
	d, err := MakeFromLines([]string{"cat", "dog"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "words.dat")
	require.NoError(t, d.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	line, ok := loaded.Get("dog")
	require.True(t, ok)
	assert.Equal(t, int32(2), line)
}

func TestLoadRejectsBadInput(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err, "partial pair")

	_, err = Load(bytes.NewReader(nil))
	assert.Error(t, err, "no root node")
}

func TestFingerprintDistinguishes(t *testing.T) {
	a, err := MakeFromLines([]string{"cat", "dog"})
	require.NoError(t, err)
	b, err := MakeFromLines([]string{"cat", "dot"})
	require.NoError(t, err)

	require.Len(t, a.Fingerprint(), 64)
	assert.Equal(t, a.Fingerprint(), a.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

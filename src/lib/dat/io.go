package dat

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/sha3"

	"gitlab.com/pnathan/lexdat/src/lib/utility"
)

// The on-disk layout is the bare arrays: one little-endian (base, check)
// int32 pair per node, node count inferred from the byte length. No
// header, so index i of the file is node i, always.

// Save writes the store to w.
func (d *Dat) Save(w io.Writer) error {
	_, err := w.Write(d.pairBytes())
	return err
}

// SaveFile writes the store to a fresh file at path.
func (d *Dat) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a store from r. The arrays are taken as-is; validity is
// the producer's problem (see Validate for advisory checking).
func Load(r io.Reader) (*Dat, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("dat: truncated file: %d bytes is not a whole number of pairs", len(raw))
	}
	n := len(raw) / 8
	if n == 0 {
		return nil, fmt.Errorf("dat: no root node")
	}
	base := make([]int32, n)
	check := make([]int32, n)
	for i := 0; i < n; i++ {
		base[i] = bytesToInt32(raw[i*8:])
		check[i] = bytesToInt32(raw[i*8+4:])
	}
	return &Dat{base: base, check: check}, nil
}

func LoadFile(path string) (*Dat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Fingerprint identifies the exact array contents: the 64-byte
// ShakeSum256 of the serialized pairs. Two stores fingerprint equal iff
// they serialize identically.
func (d *Dat) Fingerprint() []byte {
	buf := d.pairBytes()
	h := make([]byte, 64)
	// Compute a 64-byte hash of buf and put it in h.
	sha3.ShakeSum256(h, buf)
	return h
}

func (d *Dat) pairBytes() []byte {
	segments := make([][]byte, 0, 2*len(d.base))
	for i := range d.base {
		segments = append(segments, utility.Int32ToBytes(d.base[i]), utility.Int32ToBytes(d.check[i]))
	}
	return utility.Concat(segments...)
}

func bytesToInt32(b []byte) int32 {
	return int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

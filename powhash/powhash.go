// Package powhash computes the NIST5 proof-of-work hash of block headers.
package powhash

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/phoreproject/go-x11/blake"
	"github.com/phoreproject/go-x11/groest"
	"github.com/phoreproject/go-x11/hash"
	"github.com/phoreproject/go-x11/jhash"
	"github.com/phoreproject/go-x11/keccak"
	"github.com/phoreproject/go-x11/skein"
)

// Nist5 holds the digest states for one NIST5 computation at a time.
// It is not safe for concurrent use.
type Nist5 struct {
	tha [64]byte
	thb [64]byte

	chain [5]hash.Digest
}

// NewNist5 returns a reusable NIST5 hasher.
func NewNist5() *Nist5 {
	return &Nist5{chain: [5]hash.Digest{
		blake.New(),
		groest.New(),
		jhash.New(),
		keccak.New(),
		skein.New(),
	}}
}

// Hash writes the 64 byte NIST5 digest of src into dst, truncated to len(dst).
func (n *Nist5) Hash(src, dst []byte) {
	in, out := src, n.tha[:]
	for i, d := range n.chain {
		d.Reset()
		d.Write(in)
		d.Close(out, 0, 0)
		if i%2 == 0 {
			in, out = n.tha[:], n.thb[:]
		} else {
			in, out = n.thb[:], n.tha[:]
		}
	}
	copy(dst, in)
}

// Sum returns the header hash of b: the first 32 bytes of its NIST5 digest.
func Sum(b []byte) (out chainhash.Hash) {
	NewNist5().Hash(b, out[:])
	return
}

package mlhash

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var (
	_ hash.Hash   = (*Digest)(nil)
	_ hash.Hash32 = (*Digest)(nil)
)

// Digest is a streaming hasher over the same algorithm as HashBytes:
// Sum32 of a Digest equals HashBytes of everything written to it,
// regardless of how the writes were chunked. Because the algorithm folds
// the total length after the last block, the input is buffered and mixed
// when a sum is requested.
//
// A Digest is not safe for concurrent use; independent Digests need no
// coordination.
type Digest struct {
	buf []byte
}

// New returns a Digest with an empty buffer.
func New() *Digest { return &Digest{} }

// Write appends p to the pending input. The returned error is always nil.
func (d *Digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// WriteString appends s to the pending input without an intermediate
// []byte conversion.
func (d *Digest) WriteString(s string) (int, error) {
	d.buf = append(d.buf, s...)
	return len(s), nil
}

// Sum32 hashes the pending input from a zero accumulator and finalizes.
// It does not consume the buffer; writing more and summing again hashes
// the longer input.
func (d *Digest) Sum32() uint32 { return HashBytes(d.buf) }

// Sum appends the big-endian Sum32 to b.
func (d *Digest) Sum(b []byte) []byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], d.Sum32())
	return append(b, out[:]...)
}

// Reset discards all pending input, keeping the buffer capacity.
func (d *Digest) Reset() { d.buf = d.buf[:0] }

// Size returns the hash size in bytes.
func (d *Digest) Size() int { return 4 }

// BlockSize returns the mixing block size in bytes.
func (d *Digest) BlockSize() int { return 4 }

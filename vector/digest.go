package vector

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the length in bytes of a [Vector.Digest].
const DigestSize = blake2b.Size256

// Digest returns a BLAKE2b-256 fingerprint of the live items, in order.
//
// encode turns an item into bytes; each encoding is length-prefixed before
// hashing so that item boundaries are part of the fingerprint. Two vectors
// with the same digest hold items with the same encodings in the same order.
//
//	before := v.Digest(encodeItem)
//	// ...
//	if v.Digest(encodeItem) != before {
//	    // contents changed
//	}
func (v *Vector[T]) Digest(encode func(T) []byte) [DigestSize]byte {
	h, _ := blake2b.New256(nil) // only fails for an over-long key
	var prefix [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(prefix[:], uint64(v.length))
	h.Write(prefix[:n])
	for _, item := range v.items[:v.length] {
		b := encode(item)
		n = binary.PutUvarint(prefix[:], uint64(len(b)))
		h.Write(prefix[:n])
		h.Write(b)
	}
	var sum [DigestSize]byte
	h.Sum(sum[:0])
	return sum
}

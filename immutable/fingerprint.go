package immutable

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the BLAKE2b-256 digest of the array's msgpack
// encoding. Two arrays with the same elements in the same order have the
// same fingerprint regardless of how they are backed. Map keys inside
// elements are encoded sorted so the digest is deterministic.
func (a *Array[T]) Fingerprint() ([blake2b.Size256]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	enc.Reset(&buf)
	enc.SetSortMapKeys(true)
	err := a.EncodeMsgpack(enc)
	msgpack.PutEncoder(enc)
	if err != nil {
		return [blake2b.Size256]byte{}, err
	}
	return blake2b.Sum256(buf.Bytes()), nil
}

// Equal reports whether a and other hold the same elements in the same
// order, comparing fingerprints. It works for element types that are not
// comparable with ==. Arrays that cannot be encoded are never equal.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a.Len() != other.Len() {
		return false
	}
	x, err := a.Fingerprint()
	if err != nil {
		return false
	}
	y, err := other.Fingerprint()
	if err != nil {
		return false
	}
	return x == y
}

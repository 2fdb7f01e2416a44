// Package foldmap implements a hash table keyed by ASCII case-insensitive strings.
//
// Only the letters A-Z are folded (to a-z). Every other byte, including the bytes
// of multi-byte UTF-8 sequences, hashes and compares literally.
package foldmap

import "github.com/ghettovoice/httphdr/internal/constraints"

// Key is a string whose identity ignores ASCII letter case.
type Key string

// Hash returns the case-insensitive hash of k.
func (k Key) Hash() uint32 { return Hash(k) }

// Equal reports whether k and other are the same key.
func (k Key) Equal(other Key) bool { return Equal(k, other) }

// Hash folds s to lower case and combines the bytes with a base-31 polynomial,
// so names that differ only in ASCII letter case always collide.
func Hash[T constraints.Byteseq](s T) uint32 {
	var h uint32
	for i := range len(s) {
		h = 31*h + uint32(lower(s[i]))
	}
	return h
}

// Equal reports whether a and b have the same length and every byte pair
// matches either literally or after folding.
func Equal[T1, T2 constraints.Byteseq](a T1, b T2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range len(a) {
		if ca, cb := a[i], b[i]; ca != cb && lower(ca) != lower(cb) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

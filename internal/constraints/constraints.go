// Package constraints declares type-set constraints used by generic helpers.
package constraints

// Byteseq matches string-like and byte-slice-like types.
type Byteseq interface {
	~string | ~[]byte
}

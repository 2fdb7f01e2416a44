// Package util provides small helpers shared across the module.
package util

// Must2 returns v or panics if e is not nil.
func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}

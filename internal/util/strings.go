package util

import (
	"strings"
	"sync"
)

const maxPooledBuilderCap = 64 << 10

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

// GetStringBuilder takes an empty builder from the pool.
// Release it with [FreeStringBuilder] once the result is copied out.
func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

// FreeStringBuilder resets sb and returns it to the pool.
// Oversized builders are dropped.
func FreeStringBuilder(sb *strings.Builder) {
	if sb.Cap() > maxPooledBuilderCap {
		return
	}
	sb.Reset()
	strBldrPool.Put(sb)
}

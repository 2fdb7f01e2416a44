package header

import (
	"iter"

	"github.com/ghettovoice/httphdr/internal/foldmap"
)

// All returns a sequence of (name, value) pairs.
//
// The set of names is captured when All is called. Each name's chain is then
// looked up and walked only when the sequence reaches it, so:
//   - names added after the call are not produced;
//   - values appended to a captured name before it is reached are produced;
//   - a captured name that was replaced by [Map.Set] yields its new value,
//     a removed one yields nothing.
//
// Every captured name is visited at most once. The map is not locked while
// the consumer runs, so it may be modified from inside the loop.
func (m *Map) All() iter.Seq2[string, string] {
	if m == nil {
		return func(func(string, string) bool) {}
	}

	m.mu.Lock()
	keys := m.tbl.Keys()
	m.mu.Unlock()

	return func(yield func(string, string) bool) {
		for _, k := range keys {
			e := m.chain(k)
			for e != nil {
				if !yield(e.name, e.value) {
					return
				}
				e = m.next(e)
			}
		}
	}
}

func (m *Map) chain(k foldmap.Key) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, _ := m.tbl.Get(k)
	return e
}

func (m *Map) next(e *entry) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	return e.next
}

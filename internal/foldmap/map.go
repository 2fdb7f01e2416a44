package foldmap

import "iter"

const (
	defaultCapacity = 16
	maxCapacity     = 1 << 30
)

type slot[V any] struct {
	key  Key
	hash uint32
	val  V
	next *slot[V]
}

// Map is a separate-chaining hash table keyed by [Key].
// The key stored for a slot is the one passed when the slot was created;
// overwriting a value keeps it.
//
// The zero Map is empty and ready to use. Map is not safe for concurrent use.
type Map[V any] struct {
	buckets []*slot[V]
	size    int
}

// New returns a map pre-sized for about capacity keys.
func New[V any](capacity int) *Map[V] {
	m := new(Map[V])
	m.init(capacity)
	return m
}

func (m *Map[V]) init(capacity int) {
	n := defaultCapacity
	// keep the load factor under 3/4 for the requested size
	for n < maxCapacity && n*3/4 < capacity {
		n <<= 1
	}
	m.buckets = make([]*slot[V], n)
	m.size = 0
}

// spread mixes the high bits into the low ones used for the bucket index.
func spread(h uint32) uint32 { return h ^ h>>16 }

func (m *Map[V]) index(h uint32) int { return int(h & uint32(len(m.buckets)-1)) }

func (m *Map[V]) find(k Key) *slot[V] {
	if m == nil || m.size == 0 {
		return nil
	}
	h := spread(k.Hash())
	for s := m.buckets[m.index(h)]; s != nil; s = s.next {
		if s.hash == h && s.key.Equal(k) {
			return s
		}
	}
	return nil
}

// Get returns the value stored under k.
func (m *Map[V]) Get(k Key) (V, bool) {
	if s := m.find(k); s != nil {
		return s.val, true
	}
	var zero V
	return zero, false
}

// Has reports whether k is present.
func (m *Map[V]) Has(k Key) bool { return m.find(k) != nil }

// Set stores val under k. When k is already present its value is overwritten
// and the previous one is returned with replaced set to true.
func (m *Map[V]) Set(k Key, val V) (prev V, replaced bool) {
	if m.buckets == nil {
		m.init(0)
	}

	h := spread(k.Hash())
	i := m.index(h)
	var tail *slot[V]
	for s := m.buckets[i]; s != nil; s = s.next {
		if s.hash == h && s.key.Equal(k) {
			prev, s.val = s.val, val
			return prev, true
		}
		tail = s
	}

	ns := &slot[V]{key: k, hash: h, val: val}
	if tail == nil {
		m.buckets[i] = ns
	} else {
		tail.next = ns
	}
	m.size++
	if m.size > len(m.buckets)*3/4 && len(m.buckets) < maxCapacity {
		m.resize(len(m.buckets) << 1)
	}
	return prev, false
}

// Del removes k and returns the value it held.
func (m *Map[V]) Del(k Key) (V, bool) {
	var zero V
	if m == nil || m.size == 0 {
		return zero, false
	}

	h := spread(k.Hash())
	i := m.index(h)
	var prev *slot[V]
	for s := m.buckets[i]; s != nil; prev, s = s, s.next {
		if s.hash != h || !s.key.Equal(k) {
			continue
		}
		if prev == nil {
			m.buckets[i] = s.next
		} else {
			prev.next = s.next
		}
		s.next = nil
		m.size--
		return s.val, true
	}
	return zero, false
}

// Len returns the number of keys.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Clear removes all keys and keeps the allocated buckets.
func (m *Map[V]) Clear() {
	clear(m.buckets)
	m.size = 0
}

// Keys returns the stored keys in slot order.
func (m *Map[V]) Keys() []Key {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]Key, 0, m.size)
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// All yields every key and value in slot order. Slot order is stable
// between mutations but otherwise unspecified.
// The map must not be mutated while the sequence is consumed.
func (m *Map[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		if m == nil {
			return
		}
		for _, s := range m.buckets {
			for ; s != nil; s = s.next {
				if !yield(s.key, s.val) {
					return
				}
			}
		}
	}
}

func (m *Map[V]) resize(n int) {
	old := m.buckets
	m.buckets = make([]*slot[V], n)
	tails := make([]*slot[V], n)
	for _, s := range old {
		for s != nil {
			next := s.next
			s.next = nil
			i := m.index(s.hash)
			if tails[i] == nil {
				m.buckets[i] = s
			} else {
				tails[i].next = s
			}
			tails[i] = s
			s = next
		}
	}
}

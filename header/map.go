package header

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/foldmap"
	"github.com/ghettovoice/httphdr/internal/log"
	"github.com/ghettovoice/httphdr/internal/util"
)

// MapOptions configures a [Map]. A nil *MapOptions means all defaults.
type MapOptions struct {
	// Log receives debug records about rejected headers.
	// If nil, [slog.Default] is used.
	Log *slog.Logger
	// Capacity is the expected number of distinct names.
	// The table grows on demand, this only avoids early rehashing.
	Capacity int
}

func (o *MapOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return slog.Default()
	}
	return o.Log
}

func (o *MapOptions) capacity() int {
	if o == nil || o.Capacity < 0 {
		return 0
	}
	return o.Capacity
}

// entry is a node of the chain kept for one case-insensitive name.
// name and value never change after the entry is created, next is guarded by Map.mu.
type entry struct {
	name  string
	value string
	next  *entry
}

func (e *entry) tail() *entry {
	for e.next != nil {
		e = e.next
	}
	return e
}

func (e *entry) values() []string {
	var vs []string
	for ; e != nil; e = e.next {
		vs = append(vs, e.value)
	}
	return vs
}

func (e *entry) clone() *entry {
	head := &entry{name: e.name, value: e.value}
	last := head
	for e = e.next; e != nil; e = e.next {
		last.next = &entry{name: e.name, value: e.value}
		last = last.next
	}
	return head
}

// Map is a case-insensitive multi-map of HTTP header names to values.
//
// The zero Map is empty and ready to use. A Map must not be copied after first use.
// Read methods treat a nil *Map as empty.
type Map struct {
	mu  sync.Mutex
	tbl foldmap.Map[*entry]
	log *slog.Logger
}

// NewMap creates an empty map.
func NewMap(opts *MapOptions) *Map {
	m := &Map{log: opts.log()}
	if c := opts.capacity(); c > 0 {
		m.tbl = *foldmap.New[*entry](c)
	}
	return m
}

// FromEntries creates a map and adds entries to it in order, as if by [Map.Add].
// It stops at the first invalid entry.
func FromEntries(entries []Entry, opts *MapOptions) (*Map, error) {
	if opts == nil || opts.Capacity == 0 {
		o := MapOptions{Capacity: len(entries)}
		if opts != nil {
			o.Log = opts.Log
		}
		opts = &o
	}

	m := NewMap(opts)
	for i, e := range entries {
		if err := m.Add(e.Name, e.Value); err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("entry %d: %w", i, err))
		}
	}
	return m, nil
}

// MustFromEntries is like [FromEntries] but panics on an invalid entry.
// It is meant for header sets known at compile time.
func MustFromEntries(entries []Entry, opts *MapOptions) *Map {
	return util.Must2(FromEntries(entries, opts))
}

func (m *Map) logger() *slog.Logger {
	if m.log == nil {
		return slog.Default()
	}
	return m.log
}

func (m *Map) validate(op, name, value string) (string, error) {
	v, err := Validate(name, value)
	if err != nil {
		m.logger().Debug("header rejected",
			slog.String("op", op),
			slog.Any("name", log.StringValue(name)),
			slog.Any("value", log.StringValue(value)),
			slog.Any("error", err),
		)
		return "", errtrace.Wrap(err)
	}
	return v, nil
}

// Add appends value to the values of name.
// The name and the value are validated first, see [Validate]; on failure the map
// is left untouched and the error wraps [ErrInvalidName] or [ErrInvalidValue].
func (m *Map) Add(name, value string) error {
	v, err := m.validate("add", name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	m.AddUnsafe(name, v)
	return nil
}

// AddUnsafe is like [Map.Add] without validation.
// Malformed input is stored and returned to readers as is.
func (m *Map) AddUnsafe(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &entry{name: name, value: value}
	k := foldmap.Key(name)
	if head, ok := m.tbl.Get(k); ok {
		head.tail().next = e
		return
	}
	m.tbl.Set(k, e)
}

// Set replaces all values of name with value.
// Validation is the same as in [Map.Add].
func (m *Map) Set(name, value string) error {
	v, err := m.validate("set", name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	m.SetUnsafe(name, v)
	return nil
}

// SetUnsafe is like [Map.Set] without validation.
func (m *Map) SetUnsafe(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tbl.Set(foldmap.Key(name), &entry{name: name, value: value})
}

func (m *Map) head(name string) *entry {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	e, _ := m.tbl.Get(foldmap.Key(name))
	return e
}

// Get returns the first value of name: the earliest added one,
// or the one stored by the last [Map.Set].
func (m *Map) Get(name string) (string, bool) {
	if e := m.head(name); e != nil {
		return e.value, true
	}
	return "", false
}

// Value is like [Map.Get] but returns "" for a missing name.
func (m *Map) Value(name string) string {
	v, _ := m.Get(name)
	return v
}

// GetAll returns all values of name in insertion order,
// or nil if there are none.
func (m *Map) GetAll(name string) []string {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	e, _ := m.tbl.Get(foldmap.Key(name))
	return e.values()
}

// Has reports whether name has at least one value.
func (m *Map) Has(name string) bool {
	if m == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tbl.Has(foldmap.Key(name))
}

// Del removes all values of name.
func (m *Map) Del(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tbl.Del(foldmap.Key(name))
}

// Len returns the number of distinct case-insensitive names.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tbl.Len()
}

// Clear removes all headers.
func (m *Map) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tbl.Clear()
}

// Keys returns every distinct name spelling stored in the map, sorted.
// Names are not canonicalized: after Add("X-Foo", ...) and Add("x-foo", ...)
// both "X-Foo" and "x-foo" are returned.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tbl.Len() == 0 {
		return nil
	}
	seen := make(map[string]struct{}, m.tbl.Len())
	for _, head := range m.tbl.All() {
		for e := head; e != nil; e = e.next {
			seen[e.name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Entries returns a copy of all entries in [Map.All] order.
func (m *Map) Entries() []Entry {
	var es []Entry
	for name, value := range m.All() {
		es = append(es, Entry{Name: name, Value: value})
	}
	return es
}

// Clone returns a deep copy of the map that shares its logger.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m2 := &Map{log: m.log}
	m2.tbl = *foldmap.New[*entry](m.tbl.Len())
	for k, head := range m.tbl.All() {
		m2.tbl.Set(k, head.clone())
	}
	return m2
}

// LogValue implements [slog.LogValuer]. Each name group is logged under the name
// of its first entry with the list of values.
func (m *Map) LogValue() slog.Value {
	if m == nil {
		return slog.GroupValue()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	attrs := make([]slog.Attr, 0, m.tbl.Len())
	for _, head := range m.tbl.All() {
		attrs = append(attrs, slog.Any(head.name, head.values()))
	}
	return slog.GroupValue(attrs...)
}

package header

import (
	"encoding/json"
	"fmt"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/foldmap"
)

// Entry is a single header line.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON encodes the map as an array of [Entry] objects in [Map.All] order.
func (m *Map) MarshalJSON() ([]byte, error) {
	es := m.Entries()
	if es == nil {
		es = []Entry{}
	}
	return errtrace.Wrap2(json.Marshal(es))
}

type jsonEntry struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

// UnmarshalJSON replaces the content of the map with the decoded entries.
// Entries are validated as by [Map.Add]; a missing or null name or value is
// invalid too. JSON null leaves the map as is. When any entry fails, every failure is reported together and
// the map is left unchanged.
func (m *Map) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw []jsonEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return errtrace.Wrap(err)
	}

	tbl := foldmap.New[*entry](len(raw))
	var errs []error
	for i, je := range raw {
		name, value, err := je.validate()
		if err != nil {
			m.logger().Debug("header rejected",
				"op", "unmarshal",
				"index", i,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}

		e := &entry{name: name, value: value}
		if head, ok := tbl.Get(foldmap.Key(name)); ok {
			head.tail().next = e
		} else {
			tbl.Set(foldmap.Key(name), e)
		}
	}
	if len(errs) > 0 {
		return errtrace.Wrap(errorutil.JoinPrefix("decode headers:", errs...))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tbl = *tbl
	return nil
}

func (je jsonEntry) validate() (name, value string, err error) {
	if je.Name == nil {
		return "", "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidName, "name is absent"))
	}
	if err := ValidateName(*je.Name); err != nil {
		return "", "", errtrace.Wrap(err)
	}
	if je.Value == nil {
		return "", "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidValue, fmt.Sprintf("%q: value is absent", *je.Name)))
	}
	v, err := ValidateValue(*je.Name, *je.Value)
	if err != nil {
		return "", "", errtrace.Wrap(err)
	}
	return *je.Name, v, nil
}

// Package header provides an in-memory representation of the header section of
// an HTTP message.
//
// # Overview
//
// [Map] is a mutable multi-map from header names to header values. Names are compared with ASCII-only case folding:
// "Content-Type", "content-type" and "CONTENT-TYPE" address the same values,
// while every non-letter and every non-ASCII character is compared literally.
//
// Each distinct name owns an ordered chain of entries. [Map.Add] appends to the
// chain and [Map.Set] replaces it with a single entry:
//
//	var hdrs header.Map
//	hdrs.Add("Via", "1.1 proxy-a")
//	hdrs.Add("via", "1.1 proxy-b")
//	hdrs.GetAll("VIA") // ["1.1 proxy-a", "1.1 proxy-b"]
//	hdrs.Set("Via", "1.1 edge")
//	hdrs.GetAll("via") // ["1.1 edge"]
//
// Every entry keeps the name exactly as it was inserted. [Map.Keys] reports
// those original spellings, so "Via" and "via" above are both listed.
//
// # Validation
//
// [Map.Add] and [Map.Set] validate their input (RFC 7230 section 3.2) before
// touching the map and fail atomically:
//
//   - a name must be ASCII and must not contain TAB, LF, VT, FF, CR, SP,
//     ',', ':', ';' or '='; see [ValidateName]. The empty name is allowed.
//   - a value must stay within ISO-8859-1, must not contain VT or FF, and may
//     contain CR or LF only as part of an obsolete line fold (CRLF followed
//     by SP or HTAB); see [ValidateValue].
//
// Obsolete line folds are collapsed to a single SP before the value is stored,
// so a value read back from a map never holds a raw CR or LF unless it was
// inserted through one of the unchecked entry points.
//
// Failures wrap [ErrInvalidName] or [ErrInvalidValue] and can be matched with
// [errors.Is].
//
// [Map.AddUnsafe] and [Map.SetUnsafe] skip validation. The caller guarantees
// the input is well-formed; anything else is stored and later returned as is.
//
// # Iteration
//
// [Map.All] captures the set of names present at the time it is called and
// then walks each name's chain live. Names added later are never produced,
// values appended to a captured name before it is reached are, and a name
// replaced or removed in the meantime yields its current state. Order across
// names is unspecified. The map may be mutated while iterating.
//
// # Concurrency
//
// All methods are safe for concurrent use. Each call is atomic on its own;
// sequences such as "set if absent" need external synchronization.
//
// # Integration
//
// [Map.CopyTo] feeds the entries to any [Sink], such as [net/http.Header].
// [Map.WriteTo] renders the wire format, one "Name: value" line per entry.
// [Map] marshals to and from JSON as an array of [Entry] objects and
// implements [log/slog.LogValuer].
package header

package header

import (
	"errors"
	"sort"
	"strings"
)

// ErrNoSuchField is returned when a named field is not present in the header.
var ErrNoSuchField = errors.New("no such header field")

// These are the field names set by the stock parts and documents.
const (
	Cc                      = "Cc"
	ContentDisposition      = "Content-Disposition"
	ContentTransferEncoding = "Content-Transfer-Encoding"
	ContentType             = "Content-Type"
	From                    = "From"
	MIMEVersion             = "MIME-Version"
	Subject                 = "Subject"
	To                      = "To"

	// XUnsent marks a message as a draft when set to "1". Mail clients open
	// such a file in compose mode.
	XUnsent = "X-Unsent"
)

// CRLF is the line break used between fields and after the header block.
const CRLF = "\r\n"

// Set is a header with at most one body per field name.
type Set map[string]string

// Get returns the body of the named field or ErrNoSuchField.
func (s Set) Get(name string) (string, error) {
	v, ok := s[name]
	if !ok {
		return "", ErrNoSuchField
	}
	return v, nil
}

// Keys returns the field names sorted in ascending byte order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of the set. A nil set clones to an empty one.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Render formats every field as "name: body" followed by CRLF, in key order.
// An empty set renders as the empty string.
func (s Set) Render() string {
	var b strings.Builder
	for _, k := range s.Keys() {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
		b.WriteString(CRLF)
	}
	return b.String()
}

// String is the same as Render.
func (s Set) String() string {
	return s.Render()
}

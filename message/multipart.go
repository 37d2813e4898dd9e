package message

import (
	"io"
	"strings"

	"github.com/zostay/go-mimekit/header"
)

// DefaultMultipartContentType is the media type of every new Multipart.
const DefaultMultipartContentType = "multipart/mixed"

// Multipart is a multipart/mixed MIME document built from rendered parts.
//
// The document is serialized as the header block followed by each part,
// where every part is introduced by a CRLF, the "--" delimiter line, and
// another CRLF, and the document ends with CRLF and the closing delimiter:
//
//	<header block>
//	\r\n--<boundary>\r\n
//	<part 1>
//	\r\n--<boundary>\r\n
//	<part 2>
//	\r\n--<boundary>--
//
// No blank line separates the header block from the first delimiter. A
// document with no parts still carries one empty body part so that the
// result has an opening and a closing delimiter.
//
// The serialized form is rebuilt after every change to the header or parts.
// A Multipart does no locking. Callers sharing one between goroutines must
// guard all calls, reads included.
//
// Create one with NewMultipart. The zero value has no boundary.
type Multipart struct {
	boundary string
	header   header.Set
	parts    []string

	data string
}

// NewMultipart returns an empty document with a freshly generated boundary.
// Its header holds the MIME-Version and a multipart/mixed Content-Type naming
// the boundary.
func NewMultipart() *Multipart {
	return NewMultipartWithBoundary(GenerateBoundary())
}

// NewMultipartWithBoundary works like NewMultipart, but uses the given
// boundary. This is mostly useful for reproducible output. The boundary must
// not appear anywhere in the content of the parts.
func NewMultipartWithBoundary(boundary string) *Multipart {
	m := &Multipart{
		boundary: boundary,
		header: header.Set{
			header.MIMEVersion: "1.0",
			header.ContentType: DefaultMultipartContentType + `; boundary="` + boundary + `"`,
		},
		parts: []string{},
	}
	m.update()
	return m
}

// update rebuilds the serialized document from the header and parts.
func (m *Multipart) update() {
	delim := header.CRLF + "--" + m.boundary + header.CRLF

	var b strings.Builder
	b.WriteString(m.header.Render())
	if len(m.parts) == 0 {
		b.WriteString(delim)
	}
	for _, p := range m.parts {
		b.WriteString(delim)
		b.WriteString(p)
	}
	b.WriteString(header.CRLF + "--" + m.boundary + "--")

	m.data = b.String()
}

// Boundary returns the boundary chosen when the document was created.
func (m *Multipart) Boundary() string {
	return m.boundary
}

// Attach renders the part and appends it to the document. The part is copied
// in its rendered form. Later changes to it are not seen by the document.
func (m *Multipart) Attach(p Part) {
	m.parts = append(m.parts, RenderPart(p))
	m.update()
}

// AttachAll attaches each part in order.
func (m *Multipart) AttachAll(ps ...Part) {
	for _, p := range ps {
		m.parts = append(m.parts, RenderPart(p))
	}
	m.update()
}

// SetHeader sets the named header field, replacing any existing body.
//
// Nothing is checked. Replacing the Content-Type with one that does not name
// the document's boundary produces a document that no reader can split.
func (m *Multipart) SetHeader(name, body string) {
	m.header[name] = body
	m.update()
}

// DeleteHeader removes the named header field. Removing a field that is not
// set does nothing.
func (m *Multipart) DeleteHeader(name string) {
	delete(m.header, name)
	m.update()
}

// GetHeader returns the body of the named field or header.ErrNoSuchField.
func (m *Multipart) GetHeader(name string) (string, error) {
	return m.header.Get(name)
}

// Header returns a copy of the document header.
func (m *Multipart) Header() header.Set {
	return m.header.Clone()
}

// Len returns the number of parts.
func (m *Multipart) Len() int {
	return len(m.parts)
}

// GetParts returns a copy of the rendered parts in the order they were
// attached.
func (m *Multipart) GetParts() []string {
	ps := make([]string, len(m.parts))
	copy(ps, m.parts)
	return ps
}

// GetPart returns the rendered part at index ix. It returns
// ErrIndexOutOfRange if ix < 0 or ix >= Len().
func (m *Multipart) GetPart(ix int) (string, error) {
	if ix < 0 || ix >= len(m.parts) {
		return "", indexOutOfRange(ix, len(m.parts))
	}
	return m.parts[ix], nil
}

// RemovePart removes the part at index ix. It returns ErrIndexOutOfRange and
// leaves the document untouched if ix < 0 or ix >= Len().
func (m *Multipart) RemovePart(ix int) error {
	if ix < 0 || ix >= len(m.parts) {
		return indexOutOfRange(ix, len(m.parts))
	}

	ps := make([]string, 0, len(m.parts)-1)
	ps = append(ps, m.parts[:ix]...)
	ps = append(ps, m.parts[ix+1:]...)
	m.parts = ps
	m.update()
	return nil
}

// RemoveAllParts removes every part.
func (m *Multipart) RemoveAllParts() {
	m.parts = []string{}
	m.update()
}

// String returns the serialized document.
func (m *Multipart) String() string {
	return m.data
}

// Bytes returns the serialized document as bytes.
func (m *Multipart) Bytes() []byte {
	return []byte(m.data)
}

// WriteTo writes the serialized document to w.
func (m *Multipart) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.data)
	return int64(n), err
}

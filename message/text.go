package message

import (
	"fmt"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/zostay/go-mimekit/header"
	"github.com/zostay/go-mimekit/message/transfer"
)

// DefaultTextContentType is the Content-Type of a Text made by NewText.
const DefaultTextContentType = `text/plain; charset="us-ascii"`

// Text is a plain text part. The body is sent as-is, so it must fit whatever
// Content-Transfer-Encoding the header declares (7bit by default).
type Text struct {
	Header header.Set
	Data   string
}

// NewText returns a Text holding the given body with the default text
// headers.
func NewText(body string) *Text {
	return &Text{
		Header: header.Set{
			header.ContentType:             DefaultTextContentType,
			header.MIMEVersion:             "1.0",
			header.ContentTransferEncoding: transfer.Bit7,
		},
		Data: body,
	}
}

// NewTextCharset works like NewText, but declares the given charset in the
// Content-Type. The name is looked up in the IANA registry and the preferred
// MIME name is written. It returns ErrUnknownCharset if the name is not
// registered. The body is not transcoded.
func NewTextCharset(body, charset string) (*Text, error) {
	name, err := canonicalCharset(charset)
	if err != nil {
		return nil, err
	}

	t := NewText(body)
	t.Header[header.ContentType] = fmt.Sprintf("text/plain; charset=%q", name)
	return t, nil
}

func canonicalCharset(charset string) (string, error) {
	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrUnknownCharset, charset)
	}

	// registered, but x/text has no implementation for it
	if enc == nil {
		return charset, nil
	}

	name, err := ianaindex.MIME.Name(enc)
	if err != nil {
		return charset, nil
	}
	return name, nil
}

// GetHeader returns the header of the part.
func (t *Text) GetHeader() header.Set {
	return t.Header
}

// GetData returns the body of the part.
func (t *Text) GetData() string {
	return t.Data
}

// String renders the part on its own.
func (t *Text) String() string {
	return RenderPart(t)
}

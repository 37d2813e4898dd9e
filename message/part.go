package message

import (
	"github.com/zostay/go-mimekit/header"
)

// Part is anything that can be attached to a Multipart or rendered on its own.
// GetData must return the body exactly as it should appear on the wire.
type Part interface {
	GetHeader() header.Set
	GetData() string
}

// RenderHeader renders the header of the part. See header.Set.Render.
func RenderHeader(p Part) string {
	return p.GetHeader().Render()
}

// RenderPart renders the part as its header block, a CRLF, and its body. This
// is the form a part takes inside a Multipart as well as the standalone form
// of a single part message.
func RenderPart(p Part) string {
	return RenderHeader(p) + header.CRLF + p.GetData()
}

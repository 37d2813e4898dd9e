package message

import (
	"github.com/zostay/go-mimekit/header"
	"github.com/zostay/go-mimekit/message/transfer"
)

// Attachment is a part carrying file content that has already been base64
// encoded by the caller.
//
// The constructors do not know what kind of content is attached. Unless
// NewAttachmentWithType is used, set the Content-Type yourself:
//
//	jpg := message.NewAttachment(encoded, "photo.jpg")
//	jpg.Header[header.ContentType] = "image/jpeg"
type Attachment struct {
	Header header.Set
	Data   string
}

// NewAttachment returns an Attachment for the base64 encoded data, presented
// as an attachment with the given filename.
func NewAttachment(data, filename string) *Attachment {
	return &Attachment{
		Header: header.Set{
			header.MIMEVersion:             "1.0",
			header.ContentTransferEncoding: transfer.Base64,
			header.ContentDisposition:      `attachment; filename="` + filename + `"`,
		},
		Data: data,
	}
}

// NewAttachmentWithType is NewAttachment with the Content-Type set as well.
func NewAttachmentWithType(data, filename, contentType string) *Attachment {
	a := NewAttachment(data, filename)
	a.Header[header.ContentType] = contentType
	return a
}

// GetHeader returns the header of the part.
func (a *Attachment) GetHeader() header.Set {
	return a.Header
}

// GetData returns the body of the part.
func (a *Attachment) GetData() string {
	return a.Data
}

// String renders the part on its own.
func (a *Attachment) String() string {
	return RenderPart(a)
}

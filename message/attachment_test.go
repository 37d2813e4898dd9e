package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mimekit/header"
	"github.com/zostay/go-mimekit/message"
)

func TestNewAttachment(t *testing.T) {
	t.Parallel()

	a := message.NewAttachment("aGVsbG8=", "hello.txt")

	assert.Equal(t, header.Set{
		"MIME-Version":              "1.0",
		"Content-Transfer-Encoding": "base64",
		"Content-Disposition":       `attachment; filename="hello.txt"`,
	}, a.GetHeader())
	assert.Equal(t, "aGVsbG8=", a.GetData())

	const expect = "Content-Disposition: attachment; filename=\"hello.txt\"\r\n" +
		"Content-Transfer-Encoding: base64\r\n" +
		"MIME-Version: 1.0\r\n" +
		"\r\n" +
		"aGVsbG8="
	assert.Equal(t, expect, a.String())
}

func TestNewAttachmentWithType(t *testing.T) {
	t.Parallel()

	a := message.NewAttachmentWithType("/9j/", "photo.jpg", "image/jpeg")

	assert.Equal(t, "image/jpeg", a.Header[header.ContentType])
	assert.Equal(t, `attachment; filename="photo.jpg"`, a.Header[header.ContentDisposition])
	assert.Equal(t, "Content-Disposition: attachment; filename=\"photo.jpg\"\r\n"+
		"Content-Transfer-Encoding: base64\r\n"+
		"Content-Type: image/jpeg\r\n"+
		"MIME-Version: 1.0\r\n"+
		"\r\n"+
		"/9j/", a.String())
}

// Package mimekit builds MIME documents in memory and writes them out in
// RFC 2045/2046 wire format. This package only holds documentation. The work
// is done by the sub-packages.
//
// The header package holds header.Set, a header block with one body per field
// name that always renders its fields sorted by name. That makes the output of
// everything built on it deterministic.
//
// The message package is the heart of this library. A message.Part is anything
// with a header and a body. message.Text and message.Attachment are the stock
// parts. A message.Multipart gathers rendered parts into a single
// multipart/mixed document with its own boundary and keeps the serialized form
// current after every change, so it can be read or written to disk at any
// time:
//
//	doc := message.NewMultipart()
//	doc.SetHeader(header.Subject, "Hello")
//	doc.Attach(message.NewText("Hello, World!"))
//	if err := doc.WriteFile("hello.eml"); err != nil {
//	  panic(err)
//	}
//
// Part bodies are written exactly as given. If a part declares a
// Content-Transfer-Encoding, encode the content before attaching it. The
// message/transfer package provides base64 and quoted-printable encoders for
// that purpose.
//
// The mimekit command (cmd/mimekit) assembles documents from YAML manifests and
// writes them to a file, to standard output, or sends them through AWS SES.
package mimekit

// Package message builds MIME entities in memory and renders them in their
// RFC 2045/2046 wire form.
//
// Anything with a header and a pre-encoded body can act as a Part. The stock
// parts are Text, for a plain text body, and Attachment, for content the
// caller has already base64 encoded. A Multipart collects rendered parts under
// a single multipart/mixed header:
//
//	doc := message.NewMultipart()
//	doc.SetHeader(header.Subject, "Quarterly numbers")
//	doc.Attach(message.NewText("See the attached report."))
//	doc.Attach(message.NewAttachmentWithType(encoded, "report.pdf", "application/pdf"))
//
//	err := doc.WriteFile("report.eml")
//
// A Multipart keeps its serialized form current after every change, so
// String() never has work left to do. Parts are rendered at the moment they
// are attached. Changing a Text after attaching it has no effect on the
// document.
//
// Nothing here encodes body content. If a part declares a
// Content-Transfer-Encoding, the data given to it must already be in that
// encoding. The transfer package has helpers for that.
package message

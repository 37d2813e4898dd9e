// Package transfer helps callers put body content into the
// Content-Transfer-Encoding their part declares before handing it to the
// message package. Only quoted-printable and base64 change the bytes. The
// 7bit, 8bit, and binary encodings leave the bytes as-is.
//
// The message package never calls into this package on its own. A part's data
// is always written exactly as given.
package transfer

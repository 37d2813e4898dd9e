// Package header holds the header block of a MIME entity. A Set maps field
// names to field bodies and always renders its fields in ascending order of
// field name, so the same set of fields produces the same bytes no matter the
// order they were set in.
//
// Field names are kept exactly as given. "Content-Type" and "content-type"
// are two different keys as far as a Set is concerned.
package header

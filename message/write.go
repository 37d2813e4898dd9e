//go:build !windows

package message

import "github.com/google/renameio/v2"

// WriteFile writes the serialized document to the named file, replacing it if
// it exists. The content is written to a temporary file in the same directory
// and renamed into place, so readers see either the old file or the complete
// new one. On failure the returned error is a *WriteError.
//
// Use a .eml extension for a message ready to send. Set the X-Unsent header to
// "1" first if mail clients should open it as a draft.
func (m *Multipart) WriteFile(path string) error {
	if err := renameio.WriteFile(path, []byte(m.data), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

package message

import (
	"os"
	"path/filepath"
)

// WriteFile writes the serialized document to the named file, replacing it if
// it exists. The content is written to a temporary file in the same directory,
// synced, and renamed into place, so readers see either the old file or the
// complete new one. On failure the returned error is a *WriteError.
//
// Use a .eml extension for a message ready to send. Set the X-Unsent header to
// "1" first if mail clients should open it as a draft.
func (m *Multipart) WriteFile(path string) error {
	if err := writeFileAtomic(path, []byte(m.data)); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	// MoveFileEx with MOVEFILE_REPLACE_EXISTING
	return os.Rename(tmp, path)
}

package render

import (
	"os"

	"github.com/pqrs-org/verstamp/internal/debug"
)

// defaultFileMode is used for outputs that do not exist yet.
const defaultFileMode os.FileMode = 0644

// Writer writes rendered outputs to the filesystem.
type Writer interface {
	// WriteFile replaces the file at path with content.
	WriteFile(path string, content []byte, mode os.FileMode) error
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes atomically using a temporary file and rename.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[render] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return newRenderError(WriteFailed, "failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newRenderError(WriteFailed, "failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newRenderError(WriteFailed, "failed to close file", path, closeErr)
	}

	// OpenFile applies the umask; restore the requested mode before rename.
	if err := os.Chmod(tempFile, mode); err != nil {
		_ = os.Remove(tempFile)
		return newRenderError(WriteFailed, "failed to set file mode", path, err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newRenderError(WriteFailed, "failed to rename temporary file", path, err)
	}
	return nil
}

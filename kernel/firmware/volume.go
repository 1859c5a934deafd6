package firmware

import (
	"io"

	"kboot/kernel"
)

var (
	errFileNotFound = &kernel.Error{Module: "firmware", Message: "file not found on boot volume"}
	errFileRead     = &kernel.Error{Module: "firmware", Message: "cannot read file from boot volume"}
)

// File is an open file on the boot volume.
type File interface {
	io.Reader
	io.Writer
	io.Closer

	// Size returns the file size in bytes.
	Size() uint64
}

// Volume provides access to the files on the boot volume.
type Volume interface {
	// Open opens an existing file for reading.
	Open(name string) (File, *kernel.Error)

	// Create opens a file for writing, truncating it if it already exists.
	Create(name string) (File, *kernel.Error)
}

// ReadAll reads the entire contents of f as reported by its Size. A short or
// failed read is fatal; there is no way to safely load a partially read
// kernel image.
func ReadAll(f File) ([]byte, *kernel.Error) {
	buf := make([]byte, f.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, errFileRead
	}

	return buf, nil
}

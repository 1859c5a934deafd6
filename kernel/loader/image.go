// Package loader implements the kernel-loading stage of the boot process:
// planning the physical placement of an ELF kernel image, reserving and
// populating the memory it occupies and producing the entry point that
// control is handed to.
package loader

import (
	"bytes"
	"debug/elf"

	"kboot/kernel"
)

var errImageParse = &kernel.Error{Module: "loader", Message: "cannot parse kernel image"}

// Segment is a read-only view of one entry in the image's program header
// table.
type Segment struct {
	// Loadable marks segments that must be placed in memory before the
	// kernel can run. All other segment types are skipped by the loader.
	Loadable bool

	// Vaddr is the target load address. Placement assumes identity
	// mapping, so Vaddr doubles as the physical destination address.
	Vaddr uintptr

	// Off and Filesz locate the segment's initialized bytes within the
	// image file.
	Off, Filesz uint64

	// Memsz is the number of bytes the segment occupies once loaded.
	// Memsz >= Filesz; the tail between the two is the BSS region that
	// must be zero-initialized.
	Memsz uint64
}

// Image is a parsed kernel image together with the raw bytes it was parsed
// from.
type Image struct {
	// Segments mirrors the image's program header table.
	Segments []Segment

	// Entry is the address at which execution of the kernel begins.
	Entry uintptr

	data []byte
}

// ParseImage parses data as an ELF executable. Parse failures are fatal;
// there is no partial recovery from a malformed kernel image.
func ParseImage(data []byte) (*Image, *kernel.Error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, errImageParse
	}

	img := &Image{
		Segments: make([]Segment, 0, len(f.Progs)),
		Entry:    uintptr(f.Entry),
		data:     data,
	}

	for _, prog := range f.Progs {
		img.Segments = append(img.Segments, Segment{
			Loadable: prog.Type == elf.PT_LOAD,
			Vaddr:    uintptr(prog.Vaddr),
			Off:      prog.Off,
			Filesz:   prog.Filesz,
			Memsz:    prog.Memsz,
		})
	}

	return img, nil
}

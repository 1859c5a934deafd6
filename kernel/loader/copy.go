package loader

import (
	"kboot/kernel"
	"kboot/kernel/firmware"
)

var (
	errSegmentOutOfBounds  = &kernel.Error{Module: "loader", Message: "segment extends past the end of the kernel image"}
	errSegmentSizeMismatch = &kernel.Error{Module: "loader", Message: "segment file size exceeds its memory size"}
)

// CopySegments materializes every loadable segment of img: the segment's
// file-backed bytes are copied to its destination address and the BSS tail
// between Filesz and Memsz is set to zero. The destination windows are only
// obtainable because ReservePlacement already reserved the exact range the
// segments fall into. There is no partial success; the first failure aborts
// the load.
func CopySegments(img *Image, alloc firmware.Allocator) *kernel.Error {
	for _, seg := range img.Segments {
		if !seg.Loadable {
			continue
		}

		// Reject segments that would read past the end of the source
		// buffer before any slicing takes place.
		srcEnd := seg.Off + seg.Filesz
		if srcEnd < seg.Off || srcEnd > uint64(len(img.data)) {
			return errSegmentOutOfBounds
		}
		if seg.Filesz > seg.Memsz {
			return errSegmentSizeMismatch
		}

		dst, err := alloc.Region(seg.Vaddr, uintptr(seg.Memsz))
		if err != nil {
			return err
		}

		copy(dst, img.data[seg.Off:srcEnd])

		// Zero the BSS tail.
		tail := dst[seg.Filesz:]
		for i := range tail {
			tail[i] = 0
		}
	}

	return nil
}

package kernel

import "unsafe"

// Overlay returns a byte slice overlaid on top of the size bytes starting at
// addr. The caller asserts that the entire range is mapped, writable and not
// aliased by any other actor; the only legitimate callers are physical memory
// allocators handing out views into ranges they have themselves reserved.
func Overlay(addr uintptr, size uintptr) []byte {
	if size == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}

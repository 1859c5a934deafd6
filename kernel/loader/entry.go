package loader

import (
	"kboot/kernel"
	"kboot/kernel/firmware"
)

// EntryPoint is the address at which execution of a loaded kernel begins.
// Values of this type are only produced by LoadKernel once every loadable
// segment has been copied into place; invoking an entry point any earlier is
// undefined behavior, which is why no other constructor exists.
type EntryPoint uintptr

// LoadKernel parses data as a kernel image, reserves the physical range its
// loadable segments span, copies the segments into place and returns the
// image's entry point. Every failure is fatal: a partially loaded kernel can
// never be safely started.
func LoadKernel(data []byte, alloc firmware.Allocator) (EntryPoint, *kernel.Error) {
	img, err := ParseImage(data)
	if err != nil {
		return 0, err
	}

	rng, err := PlanPlacement(img)
	if err != nil {
		return 0, err
	}

	if err = ReservePlacement(alloc, rng); err != nil {
		return 0, err
	}

	if err = CopySegments(img, alloc); err != nil {
		return 0, err
	}

	return EntryPoint(img.Entry), nil
}

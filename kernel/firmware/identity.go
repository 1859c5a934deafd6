package firmware

import (
	"kboot/kernel"
	"kboot/kernel/mem"
)

// FirmwareAllocFn requests a fixed-address page allocation from the platform
// firmware. Implementations must either reserve the exact range or return an
// error; partial placements are not possible.
type FirmwareAllocFn func(addr uintptr, pageCount uint64, mtype MemoryType) *kernel.Error

// IdentityAllocator implements Allocator for identity-mapped physical memory:
// the virtual addresses in the kernel image are the physical addresses the
// segments get copied to, so a writable view of a reserved range is a raw
// overlay at that address. Region refuses any range that was not reserved
// through this allocator, which is what makes handing out raw overlays safe.
type IdentityAllocator struct {
	allocFn      FirmwareAllocFn
	reservations []reservation
}

// NewIdentityAllocator returns an IdentityAllocator that delegates
// fixed-address reservations to allocFn.
func NewIdentityAllocator(allocFn FirmwareAllocFn) *IdentityAllocator {
	return &IdentityAllocator{allocFn: allocFn}
}

// AllocPagesAt reserves pageCount pages at exactly addr via the firmware
// allocation callback.
func (a *IdentityAllocator) AllocPagesAt(addr uintptr, pageCount uint64, mtype MemoryType) *kernel.Error {
	frame := mem.FrameFromAddress(addr)
	if frame.Address() != addr {
		return errAllocUnaligned
	}

	if err := a.allocFn(addr, pageCount, mtype); err != nil {
		return err
	}

	a.reservations = append(a.reservations, reservation{frame: frame, pages: pageCount, mtype: mtype})
	return nil
}

// Region returns a writable overlay of the requested range provided it lies
// within a range previously reserved by this allocator.
func (a *IdentityAllocator) Region(addr, size uintptr) ([]byte, *kernel.Error) {
	for _, r := range a.reservations {
		if r.contains(addr, size) {
			return kernel.Overlay(addr, size), nil
		}
	}

	return nil, errRegionNotReserved
}

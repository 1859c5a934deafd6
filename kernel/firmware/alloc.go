package firmware

import (
	"kboot/kernel"
	"kboot/kernel/mem"
)

var (
	errAllocUnaligned    = &kernel.Error{Module: "firmware", Message: "fixed-address allocation requires a page-aligned address"}
	errAllocOverlap      = &kernel.Error{Module: "firmware", Message: "address range already reserved"}
	errAllocOutOfSpace   = &kernel.Error{Module: "firmware", Message: "cannot satisfy fixed-address allocation"}
	errRegionNotReserved = &kernel.Error{Module: "firmware", Message: "region is not covered by a prior reservation"}
)

// Allocator reserves physical memory pages on behalf of the loader and hands
// out writable views into ranges it has reserved. Reservations are never
// freed: the loaded kernel inherits them for the remaining lifetime of the
// boot process.
type Allocator interface {
	// AllocPagesAt reserves pageCount physical pages beginning at exactly
	// addr, tagged with the supplied memory type. There is no fallback
	// placement: if the range cannot be reserved at addr the allocation
	// fails.
	AllocPagesAt(addr uintptr, pageCount uint64, mtype MemoryType) *kernel.Error

	// Region returns a writable view of size bytes starting at addr. The
	// requested range must lie entirely within a prior AllocPagesAt
	// reservation; this is the only way the loader may touch physical
	// memory.
	Region(addr, size uintptr) ([]byte, *kernel.Error)
}

// reservation tracks one fixed-address page allocation.
type reservation struct {
	frame mem.Frame
	pages uint64
	mtype MemoryType
}

func (r reservation) start() uintptr {
	return r.frame.Address()
}

func (r reservation) end() uintptr {
	return r.frame.Address() + uintptr(r.pages)<<mem.PageShift
}

// contains returns true if [addr, addr+size) lies entirely within the
// reserved range.
func (r reservation) contains(addr, size uintptr) bool {
	return addr >= r.start() && addr+size <= r.end()
}

// overlaps returns true if the reserved range shares any page with a
// pageCount-page block starting at addr.
func (r reservation) overlaps(addr uintptr, pageCount uint64) bool {
	end := addr + uintptr(pageCount)<<mem.PageShift
	return addr < r.end() && r.start() < end
}

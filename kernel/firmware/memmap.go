package firmware

import (
	"fmt"
	"io"

	"kboot/kernel"
)

var errMemoryMapWrite = &kernel.Error{Module: "firmware", Message: "cannot write memory map"}

// MemoryDescriptor describes one physical memory region reported by the
// platform firmware.
type MemoryDescriptor struct {
	// The class of this memory region.
	Type MemoryType

	// The physical address where this region begins.
	PhysStart uint64

	// The number of contiguous pages in this region.
	PageCount uint64

	// The attribute bits reported by the firmware for this region.
	Attribute uint64
}

// MemRegionVisitor defines a visitor function that gets invoked by
// MemoryMap.VisitRegions for each memory region reported by the firmware.
// The visitor must return true to continue or false to abort the scan.
type MemRegionVisitor func(*MemoryDescriptor) bool

// MemoryMap provides access to the platform memory map.
type MemoryMap interface {
	// VisitRegions invokes the supplied visitor for each memory region in
	// the map, in the order the firmware reports them.
	VisitRegions(MemRegionVisitor)
}

// StaticMemoryMap is a MemoryMap backed by a descriptor slice. It serves both
// as a snapshot of a live firmware map and as the memory map used by hosted
// runs of the loader.
type StaticMemoryMap []MemoryDescriptor

// VisitRegions implements MemoryMap.
func (m StaticMemoryMap) VisitRegions(visitor MemRegionVisitor) {
	for i := range m {
		if !visitor(&m[i]) {
			return
		}
	}
}

// SaveMemoryMap serializes the supplied memory map as text to w, one
// newline-terminated line per descriptor preceded by a single header line.
// The attribute column is masked to the low 20 bits which hold the
// per-region capability flags.
func SaveMemoryMap(w io.Writer, mmap MemoryMap) *kernel.Error {
	var err *kernel.Error

	if _, wErr := fmt.Fprintf(w, "Index, Type, Type(name), PhysicalStart, NumberOfPages, Attribute\n"); wErr != nil {
		return errMemoryMapWrite
	}

	var index int
	mmap.VisitRegions(func(desc *MemoryDescriptor) bool {
		_, wErr := fmt.Fprintf(w, "%d, %#x, %s, %#08x, %d, %#x\n",
			index,
			uint32(desc.Type),
			desc.Type,
			desc.PhysStart,
			desc.PageCount,
			desc.Attribute&0xfffff,
		)
		if wErr != nil {
			err = errMemoryMapWrite
			return false
		}

		index++
		return true
	})

	return err
}

package loader

import (
	"sort"

	"kboot/kernel"
	"kboot/kernel/firmware"
	"kboot/kernel/mem"
)

var (
	errNoLoadableSegments = &kernel.Error{Module: "loader", Message: "no loadable segments in kernel image"}
	errSegmentsOverlap    = &kernel.Error{Module: "loader", Message: "loadable segments overlap"}
	errEntryOutsideImage  = &kernel.Error{Module: "loader", Message: "entry point lies outside the loaded image"}
)

// AddressRange is the contiguous physical address range spanned by the
// loadable segments of a kernel image.
type AddressRange struct {
	Start, End uintptr
}

// Size returns the range size in bytes.
func (r AddressRange) Size() mem.Size {
	return mem.Size(r.End - r.Start)
}

// PageCount returns the number of whole pages needed to cover the range.
func (r AddressRange) PageCount() uint64 {
	return mem.PagesSpanning(r.Size())
}

// Contains returns true if addr lies within the range.
func (r AddressRange) Contains(addr uintptr) bool {
	return addr >= r.Start && addr < r.End
}

// PlanPlacement computes the physical address range the image occupies once
// loaded: the union of [Vaddr, Vaddr+Memsz) over all loadable segments. An
// image with no loadable segments cannot be started and is rejected, as are
// images that are provably inconsistent: loadable segments whose address
// ranges overlap, or an entry point that falls outside the computed range.
func PlanPlacement(img *Image) (AddressRange, *kernel.Error) {
	var (
		start = ^uintptr(0)
		end   uintptr
	)

	for _, seg := range img.Segments {
		if !seg.Loadable {
			continue
		}

		if seg.Vaddr < start {
			start = seg.Vaddr
		}
		if segEnd := seg.Vaddr + uintptr(seg.Memsz); segEnd > end {
			end = segEnd
		}
	}

	// start still at its sentinel means no loadable segment moved it.
	if start == ^uintptr(0) {
		return AddressRange{}, errNoLoadableSegments
	}

	if overlappingSegments(img.Segments) {
		return AddressRange{}, errSegmentsOverlap
	}

	rng := AddressRange{Start: start, End: end}
	if !rng.Contains(img.Entry) {
		return AddressRange{}, errEntryOutsideImage
	}

	return rng, nil
}

// ReservePlacement reserves whole pages covering rng at exactly rng.Start.
// The reservation uses the dedicated kernel image memory class so later
// boot-time allocations cannot be placed on top of it. There is no fallback
// placement strategy: paging is not reconfigured at load time, so the image
// must live at the identity-mapped address it was linked for.
func ReservePlacement(alloc firmware.Allocator, rng AddressRange) *kernel.Error {
	return alloc.AllocPagesAt(rng.Start, rng.PageCount(), firmware.MemKernelImage)
}

// overlappingSegments returns true if any two loadable segments share bytes
// of their declared address ranges.
func overlappingSegments(segments []Segment) bool {
	loadable := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.Loadable && seg.Memsz > 0 {
			loadable = append(loadable, seg)
		}
	}

	sort.Slice(loadable, func(i, j int) bool {
		return loadable[i].Vaddr < loadable[j].Vaddr
	})

	for i := 1; i < len(loadable); i++ {
		prev := loadable[i-1]
		if prev.Vaddr+uintptr(prev.Memsz) > loadable[i].Vaddr {
			return true
		}
	}

	return false
}

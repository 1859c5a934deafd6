// Package firmware models the boot-service collaborators the loader depends
// on: the boot volume, the physical memory allocator and the platform memory
// map. The loader core only ever sees these interfaces, which keeps it
// testable without any real firmware behind them.
package firmware

// Services bundles the boot-service collaborators into the explicit context
// object that is passed to the loader instead of ambient global state.
type Services struct {
	// Volume is the boot volume holding the kernel image.
	Volume Volume

	// Alloc is the physical memory allocator.
	Alloc Allocator

	// MemMap is the platform memory map.
	MemMap MemoryMap
}

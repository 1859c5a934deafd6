// Package lmain drives the boot flow: export the platform memory map, read
// the kernel image from the boot volume, load it and hand over control.
package lmain

import (
	"kboot/kernel"
	"kboot/kernel/firmware"
	"kboot/kernel/kfmt"
	"kboot/kernel/loader"
)

// Well-known paths on the boot volume.
const (
	memoryMapPath   = "memmap"
	kernelImagePath = "kernel.elf"
)

var (
	errKernelReturned = &kernel.Error{Module: "lmain", Message: "kernel returned control to the loader"}

	// jumpFn is mocked by tests; jumping to a freshly loaded image would
	// otherwise end the test process in a rather definitive way.
	jumpFn = loader.EntryPoint.Jump
)

// Main runs the load-and-jump sequence against the supplied boot services.
// On success it does not return: control passes to the loaded kernel. Any
// error it does return is fatal and the caller is expected to halt.
//
// A non-error return only happens if the jumped-to kernel itself returns,
// which is anomalous; the returned errKernelReturned lets the surrounding
// boot code report it before halting.
func Main(svc *firmware.Services) *kernel.Error {
	kfmt.Printf("[lmain] kboot loader starting\n")

	if err := exportMemoryMap(svc); err != nil {
		return err
	}

	entry, err := loadKernelImage(svc)
	if err != nil {
		return err
	}

	kfmt.Printf("[lmain] jumping to kernel entry point at 0x%x\n", uintptr(entry))
	jumpFn(entry)

	// Nothing below may assume loader state survived the jump.
	return errKernelReturned
}

// exportMemoryMap snapshots the platform memory map into a well-known file
// on the boot volume so it can be inspected after boot.
func exportMemoryMap(svc *firmware.Services) *kernel.Error {
	f, err := svc.Volume.Create(memoryMapPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return firmware.SaveMemoryMap(f, svc.MemMap)
}

// loadKernelImage reads the kernel image from the boot volume and loads it
// into the physical range it was linked for.
func loadKernelImage(svc *firmware.Services) (loader.EntryPoint, *kernel.Error) {
	f, err := svc.Volume.Open(kernelImagePath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	data, err := firmware.ReadAll(f)
	if err != nil {
		return 0, err
	}
	kfmt.Printf("[lmain] read kernel image: size=%d\n", len(data))

	entry, err := loader.LoadKernel(data, svc.Alloc)
	if err != nil {
		return 0, err
	}
	kfmt.Printf("[lmain] kernel image loaded\n")

	return entry, nil
}

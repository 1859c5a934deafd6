package main

import (
	"kboot/kernel"
	"kboot/kernel/firmware"
	"kboot/kernel/lmain"
)

var errNoBootServices = &kernel.Error{Module: "main", Message: "boot services context was not initialized"}

// bootServices is populated by the platform-specific firmware glue before
// main runs. It bundles the boot volume, the physical page allocator and the
// platform memory map that the loader operates against.
var bootServices *firmware.Services

// main works as a trampoline for the actual loader entrypoint
// (lmain.Main). Main is not expected to return: either control transfers to
// the loaded kernel or the boot is halted on a fatal error. The only way to
// reach the Halt call with a non-nil error is a load failure or the
// anomalous case of the jumped-to kernel handing control back.
func main() {
	if bootServices == nil {
		kernel.Halt(errNoBootServices)
	}

	kernel.Halt(lmain.Main(bootServices))
}

package kernel

import "kboot/kernel/kfmt"

var (
	// haltFn is mocked by tests; the default implementation spins forever.
	haltFn = func() {
		for {
		}
	}
)

// Halt reports an unrecoverable boot error and stops all forward progress.
// Once the loader has committed to a kernel image there is no fallback
// loading strategy and no safe mode to degrade into, so calls to Halt never
// return.
func Halt(e *Error) {
	kfmt.Printf("\n-----------------------------------\n")
	if e != nil {
		kfmt.Printf("[%s] unrecoverable error: %s\n", e.Module, e.Message)
	}
	kfmt.Printf("*** boot halted ***")
	kfmt.Printf("\n-----------------------------------\n")

	haltFn()
}

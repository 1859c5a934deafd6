package loader

// Jump transfers control to the loaded kernel. The kernel is entered with no
// arguments using the fixed System V calling convention and is never expected
// to return; once it runs, the loader's stack, heap and any boot services may
// no longer be usable.
func (e EntryPoint) Jump() {
	jumpToEntry(uintptr(e))
}

// jumpToEntry is implemented in entry_amd64.s.
func jumpToEntry(entry uintptr)

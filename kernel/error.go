package kernel

// Error describes an unrecoverable boot error. All loader errors must be
// defined as global variables that are pointers to the Error structure. This
// allows error checks by pointer comparison and keeps the boot path free of
// allocations.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

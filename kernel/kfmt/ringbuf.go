package kfmt

import "io"

// earlyBufferSize defines the size of the ring buffer that captures early
// Printf output. It must always be a power of 2.
const earlyBufferSize = 4096

// ringBuffer models a fixed-size ring buffer that overwrites its oldest
// contents when full. It captures the output of Printf before a console sink
// is attached.
type ringBuffer struct {
	data           [earlyBufferSize]byte
	rIndex, wIndex int
}

// Write writes len(p) bytes from p to the ringBuffer. If the buffer fills up,
// the oldest unread bytes are dropped to make room.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.data[rb.wIndex] = b
		rb.wIndex = (rb.wIndex + 1) & (earlyBufferSize - 1)
		if rb.wIndex == rb.rIndex {
			rb.rIndex = (rb.rIndex + 1) & (earlyBufferSize - 1)
		}
	}

	return len(p), nil
}

// Read reads up to len(p) bytes into p. It returns the number of bytes read
// and io.EOF once the buffer contents have been drained.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	if rb.rIndex == rb.wIndex {
		return 0, io.EOF
	}

	var n int
	for n < len(p) && rb.rIndex != rb.wIndex {
		p[n] = rb.data[rb.rIndex]
		rb.rIndex = (rb.rIndex + 1) & (earlyBufferSize - 1)
		n++
	}

	return n, nil
}

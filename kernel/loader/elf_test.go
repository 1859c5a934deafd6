package loader

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

const (
	ehSize    = 64
	phEntSize = 56
)

// segSpec describes one program header entry for buildELF fixtures.
type segSpec struct {
	ptype elf.ProgType
	vaddr uint64
	data  []byte
	memsz uint64
}

// buildELF assembles a minimal 64-bit little-endian ELF executable with the
// given entry address and program headers. Segment payloads are laid out back
// to back after the program header table.
func buildELF(entry uint64, segs []segSpec) []byte {
	var buf bytes.Buffer

	ident := [16]byte{0x7f, 'E', 'L', 'F', 2 /* ELFCLASS64 */, 1 /* little-endian */, 1 /* EV_CURRENT */}
	buf.Write(ident[:])

	write := func(v interface{}) { binary.Write(&buf, binary.LittleEndian, v) }

	write(uint16(elf.ET_EXEC))
	write(uint16(elf.EM_X86_64))
	write(uint32(1)) // file version
	write(entry)
	write(uint64(ehSize)) // phoff
	write(uint64(0))      // shoff; no section header table
	write(uint32(0))      // flags
	write(uint16(ehSize))
	write(uint16(phEntSize))
	write(uint16(len(segs)))
	write(uint16(0)) // shentsize
	write(uint16(0)) // shnum
	write(uint16(0)) // shstrndx

	offset := uint64(ehSize + phEntSize*len(segs))
	for _, seg := range segs {
		write(uint32(seg.ptype))
		write(uint32(elf.PF_R | elf.PF_W | elf.PF_X))
		write(offset)
		write(seg.vaddr)
		write(seg.vaddr) // paddr; identity mapped
		write(uint64(len(seg.data)))
		write(seg.memsz)
		write(uint64(0x1000)) // align
		offset += uint64(len(seg.data))
	}

	for _, seg := range segs {
		buf.Write(seg.data)
	}

	return buf.Bytes()
}

// fillBytes returns size bytes holding a deterministic non-zero pattern that
// depends on seed.
func fillBytes(size int, seed byte) []byte {
	out := make([]byte, size)
	for i := range out {
		out[i] = seed + byte(i)
		if out[i] == 0 {
			out[i] = seed
		}
	}
	return out
}

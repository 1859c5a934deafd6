package firmware

import (
	"io"

	"kboot/kernel"
	"kboot/kernel/mem"
)

// SimAllocator implements Allocator on top of a plain byte arena standing in
// for a window of physical memory. It backs every hosted run of the loader
// and all of its tests; the loader core cannot tell it apart from the real
// identity-mapped allocator.
type SimAllocator struct {
	base         uintptr
	arena        []byte
	reservations []reservation
}

// NewSimAllocator returns a SimAllocator simulating size bytes of physical
// memory beginning at base. Base must be page-aligned.
func NewSimAllocator(base uintptr, size mem.Size) *SimAllocator {
	return &SimAllocator{
		base:  base,
		arena: make([]byte, size),
	}
}

// AllocPagesAt reserves pageCount pages at exactly addr within the simulated
// memory window.
func (a *SimAllocator) AllocPagesAt(addr uintptr, pageCount uint64, mtype MemoryType) *kernel.Error {
	frame := mem.FrameFromAddress(addr)
	if frame.Address() != addr {
		return errAllocUnaligned
	}

	size := uintptr(pageCount) << mem.PageShift
	if addr < a.base || addr+size > a.base+uintptr(len(a.arena)) {
		return errAllocOutOfSpace
	}

	for _, r := range a.reservations {
		if r.overlaps(addr, pageCount) {
			return errAllocOverlap
		}
	}

	a.reservations = append(a.reservations, reservation{frame: frame, pages: pageCount, mtype: mtype})
	return nil
}

// Region returns a writable view into the arena for any range covered by a
// prior reservation.
func (a *SimAllocator) Region(addr, size uintptr) ([]byte, *kernel.Error) {
	for _, r := range a.reservations {
		if r.contains(addr, size) {
			off := addr - a.base
			return a.arena[off : off+size], nil
		}
	}

	return nil, errRegionNotReserved
}

// SimVolume is an in-memory Volume used by hosted runs and tests.
type SimVolume struct {
	files map[string][]byte
}

// NewSimVolume returns an empty SimVolume.
func NewSimVolume() *SimVolume {
	return &SimVolume{files: make(map[string][]byte)}
}

// Add places a file with the given contents on the volume.
func (v *SimVolume) Add(name string, data []byte) {
	v.files[name] = data
}

// Open implements Volume.
func (v *SimVolume) Open(name string) (File, *kernel.Error) {
	data, exists := v.files[name]
	if !exists {
		return nil, errFileNotFound
	}

	return &simFile{vol: v, name: name, data: data}, nil
}

// Create implements Volume.
func (v *SimVolume) Create(name string) (File, *kernel.Error) {
	v.files[name] = nil
	return &simFile{vol: v, name: name}, nil
}

// simFile is a handle to a file on a SimVolume. Reads consume the snapshot
// taken when the handle was opened; writes append to the backing file.
type simFile struct {
	vol  *SimVolume
	name string
	data []byte
	off  int
}

func (f *simFile) Size() uint64 {
	return uint64(len(f.data))
}

func (f *simFile) Read(p []byte) (int, error) {
	if f.off >= len(f.data) {
		return 0, io.EOF
	}

	n := copy(p, f.data[f.off:])
	f.off += n
	return n, nil
}

func (f *simFile) Write(p []byte) (int, error) {
	f.vol.files[f.name] = append(f.vol.files[f.name], p...)
	return len(p), nil
}

func (f *simFile) Close() error {
	return nil
}

package firmware

import (
	"testing"

	"kboot/kernel"
	"kboot/kernel/mem"
)

func TestSimAllocatorAllocPagesAt(t *testing.T) {
	specs := []struct {
		addr      uintptr
		pageCount uint64
		expErr    *kernel.Error
	}{
		// Reservation inside the arena.
		{0x101000, 2, nil},
		// Overlaps the reservation made by the first spec.
		{0x102000, 1, errAllocOverlap},
		// Not page-aligned.
		{0x104100, 1, errAllocUnaligned},
		// Starts below the arena base.
		{0x0ff000, 1, errAllocOutOfSpace},
		// Extends past the end of the arena.
		{0x10f000, 2, errAllocOutOfSpace},
		// Adjacent to the first reservation; no overlap.
		{0x103000, 1, nil},
	}

	alloc := NewSimAllocator(0x100000, 16*mem.PageSize)

	for specIndex, spec := range specs {
		err := alloc.AllocPagesAt(spec.addr, spec.pageCount, MemKernelImage)
		if err != spec.expErr {
			t.Errorf("[spec %d] expected error %v; got %v", specIndex, spec.expErr, err)
		}
	}
}

func TestSimAllocatorRegion(t *testing.T) {
	alloc := NewSimAllocator(0x100000, 16*mem.PageSize)

	if _, err := alloc.Region(0x101000, 16); err != errRegionNotReserved {
		t.Fatalf("expected Region without a reservation to return errRegionNotReserved; got %v", err)
	}

	if err := alloc.AllocPagesAt(0x101000, 2, MemKernelImage); err != nil {
		t.Fatal(err)
	}

	region, err := alloc.Region(0x101000, 2*uintptr(mem.PageSize))
	if err != nil {
		t.Fatal(err)
	}

	if exp := 2 * int(mem.PageSize); len(region) != exp {
		t.Fatalf("expected region length %d; got %d", exp, len(region))
	}

	// A second view of a sub-range must alias the same backing memory.
	region[0x10] = 0xbe
	sub, err := alloc.Region(0x101010, 1)
	if err != nil {
		t.Fatal(err)
	}
	if sub[0] != 0xbe {
		t.Fatalf("expected sub-range view to alias the reservation backing; got %#x", sub[0])
	}

	// Ranges that leak past the reservation end must be refused.
	if _, err = alloc.Region(0x102ff0, 0x20); err != errRegionNotReserved {
		t.Fatalf("expected out-of-reservation range to return errRegionNotReserved; got %v", err)
	}
}

func TestSimVolumeOpenAndRead(t *testing.T) {
	vol := NewSimVolume()
	vol.Add("kernel.elf", []byte{0x7f, 'E', 'L', 'F'})

	f, err := vol.Open("kernel.elf")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if exp, got := uint64(4), f.Size(); got != exp {
		t.Fatalf("expected Size() to return %d; got %d", exp, got)
	}

	data, err := ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "\x7fELF" {
		t.Fatalf("expected to read back the file contents; got %q", data)
	}
}

func TestSimVolumeOpenMissingFile(t *testing.T) {
	vol := NewSimVolume()

	if _, err := vol.Open("nonexistent"); err != errFileNotFound {
		t.Fatalf("expected Open of a missing file to return errFileNotFound; got %v", err)
	}
}

func TestSimVolumeCreateAndWrite(t *testing.T) {
	vol := NewSimVolume()
	vol.Add("memmap", []byte("stale contents"))

	f, err := vol.Create("memmap")
	if err != nil {
		t.Fatal(err)
	}

	f.Write([]byte("Index, Type\n"))
	f.Write([]byte("0, 0x7\n"))
	f.Close()

	readBack, err := vol.Open("memmap")
	if err != nil {
		t.Fatal(err)
	}

	data, err := ReadAll(readBack)
	if err != nil {
		t.Fatal(err)
	}

	if exp := "Index, Type\n0, 0x7\n"; string(data) != exp {
		t.Fatalf("expected file to contain %q after Create truncated it; got %q", exp, data)
	}
}

// Package loader reads bare-metal RISC-V ELF images and places them into
// the memories that back a simulated core's AXI ports.
package loader

import (
	"debug/elf"
	"fmt"
	"io"

	"github.com/sarchlab/rtlsim/axi"
)

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	SegmentFlagExecute SegmentFlags = 1 << iota
	SegmentFlagWrite
	SegmentFlagRead
)

// Segment is one PT_LOAD segment, placed at its physical address.
type Segment struct {
	Addr uint64
	// Data holds the file contents. MemSize may exceed len(Data); the rest
	// is zero-filled.
	Data    []byte
	MemSize uint64
	Flags   SegmentFlags
}

// Image is a loadable program image.
type Image struct {
	Entry    uint64
	Segments []Segment
}

// Load parses a 64-bit RISC-V ELF file.
func Load(path string) (*Image, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("not a 64-bit ELF file")
	}
	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("not a RISC-V ELF file (machine type: %v)", f.Machine)
	}

	img := &Image{Entry: f.Entry}
	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Paddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Paddr, n, phdr.Filesz)
			}
		}

		img.Segments = append(img.Segments, Segment{
			Addr:    phdr.Paddr,
			Data:    data,
			MemSize: phdr.Memsz,
			Flags:   segmentFlags(phdr.Flags),
		})
	}

	return img, nil
}

func segmentFlags(pf elf.ProgFlag) SegmentFlags {
	var flags SegmentFlags
	if pf&elf.PF_X != 0 {
		flags |= SegmentFlagExecute
	}
	if pf&elf.PF_W != 0 {
		flags |= SegmentFlagWrite
	}
	if pf&elf.PF_R != 0 {
		flags |= SegmentFlagRead
	}
	return flags
}

// LoadInto writes every segment into m, zero-filling past the file data.
func (img *Image) LoadInto(m *axi.Memory) error {
	for _, seg := range img.Segments {
		if len(seg.Data) > 0 {
			if err := m.Load(seg.Addr, seg.Data); err != nil {
				return fmt.Errorf("segment at 0x%x: %w", seg.Addr, err)
			}
		}

		fileSize := uint64(len(seg.Data))
		if seg.MemSize > fileSize {
			zeros := make([]byte, seg.MemSize-fileSize)
			if err := m.Load(seg.Addr+fileSize, zeros); err != nil {
				return fmt.Errorf("bss of segment at 0x%x: %w", seg.Addr, err)
			}
		}
	}

	return nil
}

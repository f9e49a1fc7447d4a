package axi

import (
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/akita/v4/mem/mem"
)

// beatBytes is the width of the data bus in bytes.
const beatBytes = DataWidth / 8

// Statistics counts completed AXI transactions on a Memory.
type Statistics struct {
	Reads        uint64
	Writes       uint64
	ReadBeats    uint64
	WriteBeats   uint64
	DecodeErrors uint64
}

type readState struct {
	active    bool
	id        uint8
	addr      uint64
	size      uint8
	beatsLeft int
}

type writeState struct {
	addrValid   bool
	id          uint8
	addr        uint64
	size        uint8
	resp        uint8
	respPending bool
}

// Memory is an AXI4 responder backed by an Akita storage. It serves one
// INCR read burst and one write burst at a time. Its outputs depend only on
// its own state, so it can be paired with a core in a two-phase loop:
// drive Outputs into the core, clock the core, then call Tick with what the
// core drove before the edge.
type Memory struct {
	base    uint64
	size    uint64
	storage *mem.Storage

	read  readState
	write writeState

	stats Statistics
}

// NewMemory creates a responder decoding [base, base+size).
func NewMemory(base, size uint64) *Memory {
	if size == 0 || size%beatBytes != 0 {
		panic(fmt.Sprintf("axi: memory size 0x%x is not a multiple of %d",
			size, beatBytes))
	}

	return &Memory{
		base:    base,
		size:    size,
		storage: mem.NewStorage(size),
	}
}

// Base returns the first decoded address.
func (m *Memory) Base() uint64 {
	return m.base
}

// Size returns the number of decoded bytes.
func (m *Memory) Size() uint64 {
	return m.size
}

// Stats returns transaction statistics.
func (m *Memory) Stats() Statistics {
	return m.stats
}

// Reset drops any in-flight transaction. Stored data is kept.
func (m *Memory) Reset() {
	m.read = readState{}
	m.write = writeState{}
	m.stats = Statistics{}
}

// Load writes data starting at addr.
func (m *Memory) Load(addr uint64, data []byte) error {
	if !m.contains(addr, uint64(len(data))) {
		return fmt.Errorf("load of %d bytes at 0x%x is outside memory", len(data), addr)
	}

	if err := m.storage.Write(addr-m.base, data); err != nil {
		return fmt.Errorf("failed to load memory: %w", err)
	}

	return nil
}

// Read64 reads the little-endian word at addr.
func (m *Memory) Read64(addr uint64) (uint64, error) {
	if !m.contains(addr, beatBytes) {
		return 0, fmt.Errorf("read at 0x%x is outside memory", addr)
	}

	data, err := m.storage.Read(addr-m.base, beatBytes)
	if err != nil {
		return 0, fmt.Errorf("failed to read memory: %w", err)
	}

	return binary.LittleEndian.Uint64(data), nil
}

// Outputs returns the signals the responder drives this cycle.
func (m *Memory) Outputs() Inputs {
	var in Inputs

	in.ARReady = !m.read.active
	if m.read.active {
		in.RValid = true
		in.RID = m.read.id
		in.RData, in.RResp = m.readBeat(m.read.addr)
		in.RLast = m.read.beatsLeft == 1
	}

	in.AWReady = !m.write.addrValid && !m.write.respPending
	in.WReady = m.write.addrValid && !m.write.respPending
	if m.write.respPending {
		in.BValid = true
		in.BID = m.write.id
		in.BResp = m.write.resp
	}

	return in
}

// Tick commits the handshakes formed by the responder's current outputs and
// the core outputs sampled before the clock edge.
func (m *Memory) Tick(out Outputs) {
	in := m.Outputs()

	m.tickRead(in, out)
	m.tickWrite(in, out)
}

func (m *Memory) tickRead(in Inputs, out Outputs) {
	if in.ARReady && out.ARValid {
		m.read = readState{
			active:    true,
			id:        out.ARID,
			addr:      out.ARAddr,
			size:      out.ARSize,
			beatsLeft: int(out.ARLen) + 1,
		}
		return
	}

	if in.RValid && out.RReady {
		m.stats.ReadBeats++
		if in.RResp == RespDecErr {
			m.stats.DecodeErrors++
		}

		m.read.addr += BeatBytes(m.read.size)
		m.read.beatsLeft--
		if m.read.beatsLeft == 0 {
			m.read.active = false
			m.stats.Reads++
		}
	}
}

func (m *Memory) tickWrite(in Inputs, out Outputs) {
	if in.AWReady && out.AWValid {
		m.write = writeState{
			addrValid: true,
			id:        out.AWID,
			addr:      out.AWAddr,
			size:      out.AWSize,
			resp:      RespOkay,
		}
	}

	if in.WReady && out.WValid {
		m.stats.WriteBeats++
		if resp := m.writeBeat(m.write.addr, out.WData, out.WStrb); resp != RespOkay {
			if resp == RespDecErr {
				m.stats.DecodeErrors++
			}
			m.write.resp = resp
		}

		m.write.addr += BeatBytes(m.write.size)
		if out.WLast {
			m.write.addrValid = false
			m.write.respPending = true
			m.stats.Writes++
		}
	}

	if in.BValid && out.BReady {
		m.write.respPending = false
	}
}

func (m *Memory) contains(addr, n uint64) bool {
	return addr >= m.base && addr-m.base+n <= m.size
}

func (m *Memory) readBeat(addr uint64) (uint64, uint8) {
	aligned := addr &^ (beatBytes - 1)
	if !m.contains(aligned, beatBytes) {
		return 0, RespDecErr
	}

	data, err := m.storage.Read(aligned-m.base, beatBytes)
	if err != nil {
		return 0, RespSlvErr
	}

	return binary.LittleEndian.Uint64(data), RespOkay
}

func (m *Memory) writeBeat(addr, data uint64, strb uint8) uint8 {
	aligned := addr &^ (beatBytes - 1)
	if !m.contains(aligned, beatBytes) {
		return RespDecErr
	}

	var buf [beatBytes]byte
	binary.LittleEndian.PutUint64(buf[:], data)

	for lane := 0; lane < beatBytes; lane++ {
		if strb&(1<<lane) == 0 {
			continue
		}

		err := m.storage.Write(aligned-m.base+uint64(lane), buf[lane:lane+1])
		if err != nil {
			return RespSlvErr
		}
	}

	return RespOkay
}

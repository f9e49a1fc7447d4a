package ksim

import (
	"fmt"
	"math/bits"
)

// Address map of the modeled system.
const (
	MemBase    = 0x80000000
	MemWindow  = 0x1000
	MMIOBase   = 0x60000000
	MMIOSlots  = 512
	BurstBeats = 8
	beatSize   = 3
)

// AssertionError is raised when the model detects a protocol violation on
// one of its ports.
type AssertionError struct {
	Cycle uint64
	Msg   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("cycle %d: %s", e.Cycle, e.Msg)
}

type state uint8

const (
	stateIdle state = iota
	stateReadAddr
	stateReadData
	stateWrite
	stateWriteResp
)

// registers are the architectural state of the core. Outputs are a pure
// function of these.
type registers struct {
	state     state
	fetchAddr uint32
	readID    uint8
	beats     uint8
	checksum  uint64
	iteration uint32
	awDone    bool
	wDone     bool
}

func resetRegisters() registers {
	return registers{
		state:     stateIdle,
		fetchAddr: MemBase,
	}
}

// BoomSystem reads 8-beat bursts from the mem port, folds each burst into a
// checksum and posts the checksum to the mmio port.
type BoomSystem struct {
	sig    Signals
	regs   registers
	cycles uint64
}

// NewBoomSystem creates a BoomSystem in its reset state with outputs
// settled.
func NewBoomSystem() *BoomSystem {
	s := &BoomSystem{regs: resetRegisters()}
	s.settle()
	return s
}

// Signals returns the port signals. Inputs written here are sampled by the
// next evaluation.
func (s *BoomSystem) Signals() *Signals {
	return &s.sig
}

// Cycles returns the number of clocked evaluations performed.
func (s *BoomSystem) Cycles() uint64 {
	return s.cycles
}

// Completed returns the number of bursts whose checksum write has been
// acknowledged.
func (s *BoomSystem) Completed() uint32 {
	return s.regs.iteration
}

// EvalComb settles the outputs without committing register state.
func (s *BoomSystem) EvalComb() error {
	s.settle()
	return nil
}

// Eval commits one clock edge and settles the outputs. On an assertion
// failure no state is committed.
func (s *BoomSystem) Eval() error {
	next, err := s.next()
	if err != nil {
		return err
	}

	s.regs = next
	s.cycles++
	s.settle()

	return nil
}

func (s *BoomSystem) next() (registers, error) {
	if s.sig.Reset {
		return resetRegisters(), nil
	}

	r := s.regs
	switch r.state {
	case stateIdle:
		r.state = stateReadAddr
	case stateReadAddr:
		if s.sig.MemAXI4ARReady {
			r.state = stateReadData
			r.beats = 0
			r.checksum = 0
		}
	case stateReadData:
		if !s.sig.MemAXI4RValid {
			break
		}
		if s.sig.MemAXI4RBitsID != r.readID {
			return r, &AssertionError{
				Cycle: s.cycles,
				Msg: fmt.Sprintf("mem R beat id %d does not match AR id %d",
					s.sig.MemAXI4RBitsID, r.readID),
			}
		}

		r.checksum = bits.RotateLeft64(r.checksum, 7) ^ s.sig.MemAXI4RBitsData
		r.beats++
		if s.sig.MemAXI4RBitsLast {
			r.state = stateWrite
			r.awDone = false
			r.wDone = false
		}
	case stateWrite:
		if s.sig.MMIOAXI4AWReady {
			r.awDone = true
		}
		if s.sig.MMIOAXI4WReady {
			r.wDone = true
		}
		if r.awDone && r.wDone {
			r.state = stateWriteResp
		}
	case stateWriteResp:
		if s.sig.MMIOAXI4BValid {
			r.iteration++
			r.readID = (r.readID + 1) & 0xF
			r.fetchAddr = MemBase + (r.fetchAddr-MemBase+BurstBeats<<beatSize)%MemWindow
			r.state = stateReadAddr
		}
	}

	return r, nil
}

func (s *BoomSystem) settle() {
	r := &s.regs
	sig := &s.sig

	sig.MemAXI4AWValid = false
	sig.MemAXI4AWBitsID = 0
	sig.MemAXI4AWBitsAddr = 0
	sig.MemAXI4AWBitsLen = 0
	sig.MemAXI4AWBitsSize = 0
	sig.MemAXI4WValid = false
	sig.MemAXI4WBitsData = 0
	sig.MemAXI4WBitsStrb = 0
	sig.MemAXI4WBitsLast = false
	sig.MemAXI4BReady = true
	sig.MemAXI4ARValid = r.state == stateReadAddr
	sig.MemAXI4ARBitsID = r.readID
	sig.MemAXI4ARBitsAddr = r.fetchAddr
	sig.MemAXI4ARBitsLen = BurstBeats - 1
	sig.MemAXI4ARBitsSize = beatSize
	sig.MemAXI4RReady = r.state == stateReadData

	sig.MMIOAXI4AWValid = r.state == stateWrite && !r.awDone
	sig.MMIOAXI4AWBitsID = 0
	sig.MMIOAXI4AWBitsAddr = MMIOBase + 8*(r.iteration%MMIOSlots)
	sig.MMIOAXI4AWBitsLen = 0
	sig.MMIOAXI4AWBitsSize = beatSize
	sig.MMIOAXI4WValid = r.state == stateWrite && !r.wDone
	sig.MMIOAXI4WBitsData = r.checksum
	sig.MMIOAXI4WBitsStrb = 0xFF
	sig.MMIOAXI4WBitsLast = true
	sig.MMIOAXI4BReady = r.state == stateWriteResp
	sig.MMIOAXI4ARValid = false
	sig.MMIOAXI4ARBitsID = 0
	sig.MMIOAXI4ARBitsAddr = 0
	sig.MMIOAXI4ARBitsLen = 0
	sig.MMIOAXI4ARBitsSize = 0
	sig.MMIOAXI4RReady = true
}

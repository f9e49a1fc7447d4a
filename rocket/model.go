// Package rocket adapts the essent-generated Rocket system to the
// model.Model interface.
package rocket

import (
	"fmt"

	"github.com/sarchlab/rtlsim/axi"
	"github.com/sarchlab/rtlsim/bits"
	"github.com/sarchlab/rtlsim/essent"
	"github.com/sarchlab/rtlsim/model"
)

const backendName = "essent"

// System is a generated Rocket system with a single evaluation entry point.
type System interface {
	Signals() *essent.Signals
	Eval(updateRegisters, verbose, doneReset bool) error
}

// EssentModel drives a Rocket System. Every backend signal is a sized
// bits.UInt: inputs are wrapped to the declared width on the way in and
// collapsed to a machine word on the way out.
type EssentModel struct {
	sys      System
	clock    bool
	settings model.Settings
}

var _ model.Model = (*EssentModel)(nil)

// NewEssentModel creates an EssentModel around a fresh essent RocketSystem.
// The system's verbose output goes to the configured logger.
func NewEssentModel(opts ...model.Option) (*EssentModel, error) {
	sys := essent.NewRocketSystem()

	m, err := NewWithSystem(sys, opts...)
	if err != nil {
		return nil, err
	}

	if m.settings.Logger != nil {
		sys.SetLogger(m.settings.Logger)
	}

	return m, nil
}

// NewWithSystem creates an EssentModel around sys. The clock starts low.
func NewWithSystem(sys System, opts ...model.Option) (*EssentModel, error) {
	settings, err := model.ApplyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", backendName, err)
	}

	return &EssentModel{
		sys:      sys,
		settings: settings,
	}, nil
}

// Name returns the backend name.
func (m *EssentModel) Name() string {
	return backendName
}

// VCDStart is not implemented by the essent backend.
func (m *EssentModel) VCDStart(path string) error {
	m.settings.Logf("%s: vcd tracing not implemented, ignoring %s", backendName, path)
	return nil
}

// VCDDump is not implemented by the essent backend.
func (m *EssentModel) VCDDump(cycle uint64) error {
	return nil
}

// Eval evaluates the system once, updating registers only when the clock is
// high.
func (m *EssentModel) Eval() error {
	// done_reset stays false: essent's internal assertions fail when it is
	// derived from the reset line.
	err := m.sys.Eval(m.clock, false, false)
	if err != nil {
		m.settings.Logf("%s: %v", backendName, err)
		return &model.BackendAssertionError{Backend: backendName, Err: err}
	}

	return nil
}

// Ports reads every cataloged signal.
func (m *EssentModel) Ports() model.Ports {
	return model.ReadPorts(m.sys.Signals(), portReaders)
}

// SetReset stages the reset input for the next Eval.
func (m *EssentModel) SetReset(reset bool) {
	m.sys.Signals().Reset = bits.FromBool(reset)
}

// SetClock selects whether the next Eval commits registers.
func (m *EssentModel) SetClock(clock bool) {
	m.clock = clock
}

// SetMem drives the responder signals of the mem port. Nothing is applied
// if a field does not fit under the configured width policy.
func (m *EssentModel) SetMem(in axi.Inputs) error {
	in, err := model.FitInputs("mem", in, m.settings.Config.WidthPolicy)
	if err != nil {
		return err
	}

	sig := m.sys.Signals()
	sig.MemAXI4AWReady = bits.FromBool(in.AWReady)
	sig.MemAXI4WReady = bits.FromBool(in.WReady)
	sig.MemAXI4BValid = bits.FromBool(in.BValid)
	sig.MemAXI4BBitsID = bits.New(axi.IDWidth, uint64(in.BID))
	sig.MemAXI4BBitsResp = bits.New(axi.RespWidth, uint64(in.BResp))
	sig.MemAXI4ARReady = bits.FromBool(in.ARReady)
	sig.MemAXI4RValid = bits.FromBool(in.RValid)
	sig.MemAXI4RBitsID = bits.New(axi.IDWidth, uint64(in.RID))
	sig.MemAXI4RBitsData = bits.New(axi.DataWidth, in.RData)
	sig.MemAXI4RBitsResp = bits.New(axi.RespWidth, uint64(in.RResp))
	sig.MemAXI4RBitsLast = bits.FromBool(in.RLast)

	return nil
}

// Mem returns the signals the core drives on the mem port.
func (m *EssentModel) Mem() axi.Outputs {
	sig := m.sys.Signals()

	return axi.Outputs{
		AWValid: sig.MemAXI4AWValid.Bool(),
		AWID:    uint8(sig.MemAXI4AWBitsID.AsSingleWord()),
		AWAddr:  sig.MemAXI4AWBitsAddr.AsSingleWord(),
		AWLen:   uint8(sig.MemAXI4AWBitsLen.AsSingleWord()),
		AWSize:  uint8(sig.MemAXI4AWBitsSize.AsSingleWord()),
		WValid:  sig.MemAXI4WValid.Bool(),
		WData:   sig.MemAXI4WBitsData.AsSingleWord(),
		WStrb:   uint8(sig.MemAXI4WBitsStrb.AsSingleWord()),
		WLast:   sig.MemAXI4WBitsLast.Bool(),
		BReady:  sig.MemAXI4BReady.Bool(),
		ARValid: sig.MemAXI4ARValid.Bool(),
		ARID:    uint8(sig.MemAXI4ARBitsID.AsSingleWord()),
		ARAddr:  sig.MemAXI4ARBitsAddr.AsSingleWord(),
		ARLen:   uint8(sig.MemAXI4ARBitsLen.AsSingleWord()),
		ARSize:  uint8(sig.MemAXI4ARBitsSize.AsSingleWord()),
		RReady:  sig.MemAXI4RReady.Bool(),
	}
}

// SetMMIO drives the responder signals of the mmio port. Nothing is
// applied if a field does not fit under the configured width policy.
func (m *EssentModel) SetMMIO(in axi.Inputs) error {
	in, err := model.FitInputs("mmio", in, m.settings.Config.WidthPolicy)
	if err != nil {
		return err
	}

	sig := m.sys.Signals()
	sig.MMIOAXI4AWReady = bits.FromBool(in.AWReady)
	sig.MMIOAXI4WReady = bits.FromBool(in.WReady)
	sig.MMIOAXI4BValid = bits.FromBool(in.BValid)
	sig.MMIOAXI4BBitsID = bits.New(axi.IDWidth, uint64(in.BID))
	sig.MMIOAXI4BBitsResp = bits.New(axi.RespWidth, uint64(in.BResp))
	sig.MMIOAXI4ARReady = bits.FromBool(in.ARReady)
	sig.MMIOAXI4RValid = bits.FromBool(in.RValid)
	sig.MMIOAXI4RBitsID = bits.New(axi.IDWidth, uint64(in.RID))
	sig.MMIOAXI4RBitsData = bits.New(axi.DataWidth, in.RData)
	sig.MMIOAXI4RBitsResp = bits.New(axi.RespWidth, uint64(in.RResp))
	sig.MMIOAXI4RBitsLast = bits.FromBool(in.RLast)

	return nil
}

// MMIO returns the signals the core drives on the mmio port.
func (m *EssentModel) MMIO() axi.Outputs {
	sig := m.sys.Signals()

	return axi.Outputs{
		AWValid: sig.MMIOAXI4AWValid.Bool(),
		AWID:    uint8(sig.MMIOAXI4AWBitsID.AsSingleWord()),
		AWAddr:  sig.MMIOAXI4AWBitsAddr.AsSingleWord(),
		AWLen:   uint8(sig.MMIOAXI4AWBitsLen.AsSingleWord()),
		AWSize:  uint8(sig.MMIOAXI4AWBitsSize.AsSingleWord()),
		WValid:  sig.MMIOAXI4WValid.Bool(),
		WData:   sig.MMIOAXI4WBitsData.AsSingleWord(),
		WStrb:   uint8(sig.MMIOAXI4WBitsStrb.AsSingleWord()),
		WLast:   sig.MMIOAXI4WBitsLast.Bool(),
		BReady:  sig.MMIOAXI4BReady.Bool(),
		ARValid: sig.MMIOAXI4ARValid.Bool(),
		ARID:    uint8(sig.MMIOAXI4ARBitsID.AsSingleWord()),
		ARAddr:  sig.MMIOAXI4ARBitsAddr.AsSingleWord(),
		ARLen:   uint8(sig.MMIOAXI4ARBitsLen.AsSingleWord()),
		ARSize:  uint8(sig.MMIOAXI4ARBitsSize.AsSingleWord()),
		RReady:  sig.MMIOAXI4RReady.Bool(),
	}
}

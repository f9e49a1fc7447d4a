// Package boom adapts the ksim-generated BOOM system to the model.Model
// interface.
package boom

import (
	"fmt"

	"github.com/sarchlab/rtlsim/axi"
	"github.com/sarchlab/rtlsim/ksim"
	"github.com/sarchlab/rtlsim/model"
)

const backendName = "ksim"

// System is a generated BOOM system with separate clocked and
// combinational entry points.
type System interface {
	Signals() *ksim.Signals
	Eval() error
	EvalComb() error
}

// KsimModel drives a BOOM System. Signals are native scalars in the
// backend, so setting and reading ports is a plain field rename.
type KsimModel struct {
	sys      System
	clock    bool
	settings model.Settings
}

var _ model.Model = (*KsimModel)(nil)

// NewKsimModel creates a KsimModel around a fresh ksim BoomSystem.
func NewKsimModel(opts ...model.Option) (*KsimModel, error) {
	return NewWithSystem(ksim.NewBoomSystem(), opts...)
}

// NewWithSystem creates a KsimModel around sys. The clock starts low.
func NewWithSystem(sys System, opts ...model.Option) (*KsimModel, error) {
	settings, err := model.ApplyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", backendName, err)
	}

	return &KsimModel{
		sys:      sys,
		settings: settings,
	}, nil
}

// Name returns the backend name.
func (m *KsimModel) Name() string {
	return backendName
}

// VCDStart is not implemented by the ksim backend.
func (m *KsimModel) VCDStart(path string) error {
	m.settings.Logf("%s: vcd tracing not implemented, ignoring %s", backendName, path)
	return nil
}

// VCDDump is not implemented by the ksim backend.
func (m *KsimModel) VCDDump(cycle uint64) error {
	return nil
}

// Eval runs the clocked entry point when the clock is high and the
// combinational one otherwise.
func (m *KsimModel) Eval() error {
	var err error
	if m.clock {
		err = m.sys.Eval()
	} else {
		err = m.sys.EvalComb()
	}

	if err != nil {
		m.settings.Logf("%s: %v", backendName, err)
		return &model.BackendAssertionError{Backend: backendName, Err: err}
	}

	return nil
}

// Ports reads every cataloged signal.
func (m *KsimModel) Ports() model.Ports {
	return model.ReadPorts(m.sys.Signals(), portReaders)
}

// SetReset stages the reset input for the next Eval.
func (m *KsimModel) SetReset(reset bool) {
	m.sys.Signals().Reset = reset
}

// SetClock selects whether the next Eval commits registers.
func (m *KsimModel) SetClock(clock bool) {
	m.clock = clock
}

// SetMem drives the responder signals of the mem port. Nothing is applied
// if a field does not fit under the configured width policy.
func (m *KsimModel) SetMem(in axi.Inputs) error {
	in, err := model.FitInputs("mem", in, m.settings.Config.WidthPolicy)
	if err != nil {
		return err
	}

	sig := m.sys.Signals()
	sig.MemAXI4AWReady = in.AWReady
	sig.MemAXI4WReady = in.WReady
	sig.MemAXI4BValid = in.BValid
	sig.MemAXI4BBitsID = in.BID
	sig.MemAXI4BBitsResp = in.BResp
	sig.MemAXI4ARReady = in.ARReady
	sig.MemAXI4RValid = in.RValid
	sig.MemAXI4RBitsID = in.RID
	sig.MemAXI4RBitsData = in.RData
	sig.MemAXI4RBitsResp = in.RResp
	sig.MemAXI4RBitsLast = in.RLast

	return nil
}

// Mem returns the signals the core drives on the mem port.
func (m *KsimModel) Mem() axi.Outputs {
	sig := m.sys.Signals()

	return axi.Outputs{
		AWValid: sig.MemAXI4AWValid,
		AWID:    sig.MemAXI4AWBitsID,
		AWAddr:  uint64(sig.MemAXI4AWBitsAddr),
		AWLen:   sig.MemAXI4AWBitsLen,
		AWSize:  sig.MemAXI4AWBitsSize,
		WValid:  sig.MemAXI4WValid,
		WData:   sig.MemAXI4WBitsData,
		WStrb:   sig.MemAXI4WBitsStrb,
		WLast:   sig.MemAXI4WBitsLast,
		BReady:  sig.MemAXI4BReady,
		ARValid: sig.MemAXI4ARValid,
		ARID:    sig.MemAXI4ARBitsID,
		ARAddr:  uint64(sig.MemAXI4ARBitsAddr),
		ARLen:   sig.MemAXI4ARBitsLen,
		ARSize:  sig.MemAXI4ARBitsSize,
		RReady:  sig.MemAXI4RReady,
	}
}

// SetMMIO drives the responder signals of the mmio port. Nothing is
// applied if a field does not fit under the configured width policy.
func (m *KsimModel) SetMMIO(in axi.Inputs) error {
	in, err := model.FitInputs("mmio", in, m.settings.Config.WidthPolicy)
	if err != nil {
		return err
	}

	sig := m.sys.Signals()
	sig.MMIOAXI4AWReady = in.AWReady
	sig.MMIOAXI4WReady = in.WReady
	sig.MMIOAXI4BValid = in.BValid
	sig.MMIOAXI4BBitsID = in.BID
	sig.MMIOAXI4BBitsResp = in.BResp
	sig.MMIOAXI4ARReady = in.ARReady
	sig.MMIOAXI4RValid = in.RValid
	sig.MMIOAXI4RBitsID = in.RID
	sig.MMIOAXI4RBitsData = in.RData
	sig.MMIOAXI4RBitsResp = in.RResp
	sig.MMIOAXI4RBitsLast = in.RLast

	return nil
}

// MMIO returns the signals the core drives on the mmio port.
func (m *KsimModel) MMIO() axi.Outputs {
	sig := m.sys.Signals()

	return axi.Outputs{
		AWValid: sig.MMIOAXI4AWValid,
		AWID:    sig.MMIOAXI4AWBitsID,
		AWAddr:  uint64(sig.MMIOAXI4AWBitsAddr),
		AWLen:   sig.MMIOAXI4AWBitsLen,
		AWSize:  sig.MMIOAXI4AWBitsSize,
		WValid:  sig.MMIOAXI4WValid,
		WData:   sig.MMIOAXI4WBitsData,
		WStrb:   sig.MMIOAXI4WBitsStrb,
		WLast:   sig.MMIOAXI4WBitsLast,
		BReady:  sig.MMIOAXI4BReady,
		ARValid: sig.MMIOAXI4ARValid,
		ARID:    sig.MMIOAXI4ARBitsID,
		ARAddr:  uint64(sig.MMIOAXI4ARBitsAddr),
		ARLen:   sig.MMIOAXI4ARBitsLen,
		ARSize:  sig.MMIOAXI4ARBitsSize,
		RReady:  sig.MMIOAXI4RReady,
	}
}

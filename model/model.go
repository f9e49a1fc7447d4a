// Package model defines the uniform interface through which generated
// cycle-accurate core simulators are driven, independent of the generator
// that produced them.
//
// A caller stages inputs with SetReset, SetClock, SetMem and SetMMIO, calls
// Eval to advance one step, then reads the results with Ports, Mem and
// MMIO. With the clock low, Eval only settles combinational outputs; with
// the clock high it commits registers.
package model

import "github.com/sarchlab/rtlsim/axi"

// Model is a single simulated core.
type Model interface {
	// Name identifies the backend that produced the model.
	Name() string

	// VCDStart opens a waveform trace at path.
	VCDStart(path string) error
	// VCDDump records all traced signals at the given cycle.
	VCDDump(cycle uint64) error

	// Eval advances the model by one step according to the staged clock and
	// reset.
	Eval() error

	// Ports returns every cataloged signal in catalog order.
	Ports() Ports

	SetReset(reset bool)
	SetClock(clock bool)

	SetMem(in axi.Inputs) error
	Mem() axi.Outputs

	SetMMIO(in axi.Inputs) error
	MMIO() axi.Outputs
}

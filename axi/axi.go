// Package axi describes the AXI4 channel signals exchanged between a core
// and a memory-mapped responder for one cycle.
package axi

import "github.com/sarchlab/rtlsim/bits"

// Declared signal widths of the AXI4 ports exposed by the simulated cores.
// Handshake and last signals are 1 bit and carried as bool.
const (
	IDWidth   = 4
	RespWidth = 2
	DataWidth = 64
	AddrWidth = 32
	LenWidth  = 8
	SizeWidth = 3
	StrbWidth = 8
)

// Response codes carried on the B and R channels.
const (
	RespOkay   uint8 = 0
	RespExOkay uint8 = 1
	RespSlvErr uint8 = 2
	RespDecErr uint8 = 3
)

// Inputs are the signals a responder drives into the core for one cycle.
type Inputs struct {
	AWReady bool
	WReady  bool

	BValid bool
	BID    uint8
	BResp  uint8

	ARReady bool

	RValid bool
	RID    uint8
	RData  uint64
	RResp  uint8
	RLast  bool
}

// Outputs are the signals the core drives into a responder for one cycle.
type Outputs struct {
	AWValid bool
	AWID    uint8
	AWAddr  uint64
	AWLen   uint8
	AWSize  uint8

	WValid bool
	WData  uint64
	WStrb  uint8
	WLast  bool

	BReady bool

	ARValid bool
	ARID    uint8
	ARAddr  uint64
	ARLen   uint8
	ARSize  uint8

	RReady bool
}

// Fit applies the width policy to every multi-bit field of in. On error
// the returned snapshot is the zero value and nothing should be applied.
// Signal names in errors use the generic field names (b_id, r_data, ...).
func (in Inputs) Fit(p bits.Policy) (Inputs, error) {
	out := in

	bID, err := p.Fit("b_id", IDWidth, uint64(in.BID))
	if err != nil {
		return Inputs{}, err
	}
	bResp, err := p.Fit("b_resp", RespWidth, uint64(in.BResp))
	if err != nil {
		return Inputs{}, err
	}
	rID, err := p.Fit("r_id", IDWidth, uint64(in.RID))
	if err != nil {
		return Inputs{}, err
	}
	rResp, err := p.Fit("r_resp", RespWidth, uint64(in.RResp))
	if err != nil {
		return Inputs{}, err
	}

	out.BID = uint8(bID)
	out.BResp = uint8(bResp)
	out.RID = uint8(rID)
	out.RResp = uint8(rResp)

	return out, nil
}

// BeatBytes returns the number of bytes moved per beat for an AxSIZE value.
func BeatBytes(size uint8) uint64 {
	return uint64(1) << size
}

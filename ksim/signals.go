// Package ksim provides a behavioral stand-in for the ksim-generated BOOM
// system. It exposes the same signal surface the generator emits: one flat
// field per top-level port, stored as the narrowest native scalar, plus a
// combinational and a clocked evaluation entry point.
package ksim

// Signals holds every top-level port of the BoomSystem. Fields named
// <Port>AXI4<Channel>... correspond to the generator's
// <port>_axi4_0_<channel>_... signals.
type Signals struct {
	Reset bool

	MemAXI4AWReady    bool
	MemAXI4AWValid    bool
	MemAXI4AWBitsID   uint8
	MemAXI4AWBitsAddr uint32
	MemAXI4AWBitsLen  uint8
	MemAXI4AWBitsSize uint8

	MemAXI4WReady    bool
	MemAXI4WValid    bool
	MemAXI4WBitsData uint64
	MemAXI4WBitsStrb uint8
	MemAXI4WBitsLast bool

	MemAXI4BReady    bool
	MemAXI4BValid    bool
	MemAXI4BBitsID   uint8
	MemAXI4BBitsResp uint8

	MemAXI4ARReady    bool
	MemAXI4ARValid    bool
	MemAXI4ARBitsID   uint8
	MemAXI4ARBitsAddr uint32
	MemAXI4ARBitsLen  uint8
	MemAXI4ARBitsSize uint8

	MemAXI4RReady    bool
	MemAXI4RValid    bool
	MemAXI4RBitsID   uint8
	MemAXI4RBitsData uint64
	MemAXI4RBitsResp uint8
	MemAXI4RBitsLast bool

	MMIOAXI4AWReady    bool
	MMIOAXI4AWValid    bool
	MMIOAXI4AWBitsID   uint8
	MMIOAXI4AWBitsAddr uint32
	MMIOAXI4AWBitsLen  uint8
	MMIOAXI4AWBitsSize uint8

	MMIOAXI4WReady    bool
	MMIOAXI4WValid    bool
	MMIOAXI4WBitsData uint64
	MMIOAXI4WBitsStrb uint8
	MMIOAXI4WBitsLast bool

	MMIOAXI4BReady    bool
	MMIOAXI4BValid    bool
	MMIOAXI4BBitsID   uint8
	MMIOAXI4BBitsResp uint8

	MMIOAXI4ARReady    bool
	MMIOAXI4ARValid    bool
	MMIOAXI4ARBitsID   uint8
	MMIOAXI4ARBitsAddr uint32
	MMIOAXI4ARBitsLen  uint8
	MMIOAXI4ARBitsSize uint8

	MMIOAXI4RReady    bool
	MMIOAXI4RValid    bool
	MMIOAXI4RBitsID   uint8
	MMIOAXI4RBitsData uint64
	MMIOAXI4RBitsResp uint8
	MMIOAXI4RBitsLast bool
}

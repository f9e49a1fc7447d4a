package essent

import "github.com/sarchlab/rtlsim/bits"

// Signals holds every top-level port of the RocketSystem. Each field is a
// bits.UInt of the port's declared width.
type Signals struct {
	Reset bits.UInt

	MemAXI4AWReady    bits.UInt
	MemAXI4AWValid    bits.UInt
	MemAXI4AWBitsID   bits.UInt
	MemAXI4AWBitsAddr bits.UInt
	MemAXI4AWBitsLen  bits.UInt
	MemAXI4AWBitsSize bits.UInt

	MemAXI4WReady    bits.UInt
	MemAXI4WValid    bits.UInt
	MemAXI4WBitsData bits.UInt
	MemAXI4WBitsStrb bits.UInt
	MemAXI4WBitsLast bits.UInt

	MemAXI4BReady    bits.UInt
	MemAXI4BValid    bits.UInt
	MemAXI4BBitsID   bits.UInt
	MemAXI4BBitsResp bits.UInt

	MemAXI4ARReady    bits.UInt
	MemAXI4ARValid    bits.UInt
	MemAXI4ARBitsID   bits.UInt
	MemAXI4ARBitsAddr bits.UInt
	MemAXI4ARBitsLen  bits.UInt
	MemAXI4ARBitsSize bits.UInt

	MemAXI4RReady    bits.UInt
	MemAXI4RValid    bits.UInt
	MemAXI4RBitsID   bits.UInt
	MemAXI4RBitsData bits.UInt
	MemAXI4RBitsResp bits.UInt
	MemAXI4RBitsLast bits.UInt

	MMIOAXI4AWReady    bits.UInt
	MMIOAXI4AWValid    bits.UInt
	MMIOAXI4AWBitsID   bits.UInt
	MMIOAXI4AWBitsAddr bits.UInt
	MMIOAXI4AWBitsLen  bits.UInt
	MMIOAXI4AWBitsSize bits.UInt

	MMIOAXI4WReady    bits.UInt
	MMIOAXI4WValid    bits.UInt
	MMIOAXI4WBitsData bits.UInt
	MMIOAXI4WBitsStrb bits.UInt
	MMIOAXI4WBitsLast bits.UInt

	MMIOAXI4BReady    bits.UInt
	MMIOAXI4BValid    bits.UInt
	MMIOAXI4BBitsID   bits.UInt
	MMIOAXI4BBitsResp bits.UInt

	MMIOAXI4ARReady    bits.UInt
	MMIOAXI4ARValid    bits.UInt
	MMIOAXI4ARBitsID   bits.UInt
	MMIOAXI4ARBitsAddr bits.UInt
	MMIOAXI4ARBitsLen  bits.UInt
	MMIOAXI4ARBitsSize bits.UInt

	MMIOAXI4RReady    bits.UInt
	MMIOAXI4RValid    bits.UInt
	MMIOAXI4RBitsID   bits.UInt
	MMIOAXI4RBitsData bits.UInt
	MMIOAXI4RBitsResp bits.UInt
	MMIOAXI4RBitsLast bits.UInt
}

func newSignals() Signals {
	return Signals{
		Reset:              bits.New(1, 0),
		MemAXI4AWReady:     bits.New(1, 0),
		MemAXI4AWValid:     bits.New(1, 0),
		MemAXI4AWBitsID:    bits.New(4, 0),
		MemAXI4AWBitsAddr:  bits.New(32, 0),
		MemAXI4AWBitsLen:   bits.New(8, 0),
		MemAXI4AWBitsSize:  bits.New(3, 0),
		MemAXI4WReady:      bits.New(1, 0),
		MemAXI4WValid:      bits.New(1, 0),
		MemAXI4WBitsData:   bits.New(64, 0),
		MemAXI4WBitsStrb:   bits.New(8, 0),
		MemAXI4WBitsLast:   bits.New(1, 0),
		MemAXI4BReady:      bits.New(1, 0),
		MemAXI4BValid:      bits.New(1, 0),
		MemAXI4BBitsID:     bits.New(4, 0),
		MemAXI4BBitsResp:   bits.New(2, 0),
		MemAXI4ARReady:     bits.New(1, 0),
		MemAXI4ARValid:     bits.New(1, 0),
		MemAXI4ARBitsID:    bits.New(4, 0),
		MemAXI4ARBitsAddr:  bits.New(32, 0),
		MemAXI4ARBitsLen:   bits.New(8, 0),
		MemAXI4ARBitsSize:  bits.New(3, 0),
		MemAXI4RReady:      bits.New(1, 0),
		MemAXI4RValid:      bits.New(1, 0),
		MemAXI4RBitsID:     bits.New(4, 0),
		MemAXI4RBitsData:   bits.New(64, 0),
		MemAXI4RBitsResp:   bits.New(2, 0),
		MemAXI4RBitsLast:   bits.New(1, 0),
		MMIOAXI4AWReady:    bits.New(1, 0),
		MMIOAXI4AWValid:    bits.New(1, 0),
		MMIOAXI4AWBitsID:   bits.New(4, 0),
		MMIOAXI4AWBitsAddr: bits.New(32, 0),
		MMIOAXI4AWBitsLen:  bits.New(8, 0),
		MMIOAXI4AWBitsSize: bits.New(3, 0),
		MMIOAXI4WReady:     bits.New(1, 0),
		MMIOAXI4WValid:     bits.New(1, 0),
		MMIOAXI4WBitsData:  bits.New(64, 0),
		MMIOAXI4WBitsStrb:  bits.New(8, 0),
		MMIOAXI4WBitsLast:  bits.New(1, 0),
		MMIOAXI4BReady:     bits.New(1, 0),
		MMIOAXI4BValid:     bits.New(1, 0),
		MMIOAXI4BBitsID:    bits.New(4, 0),
		MMIOAXI4BBitsResp:  bits.New(2, 0),
		MMIOAXI4ARReady:    bits.New(1, 0),
		MMIOAXI4ARValid:    bits.New(1, 0),
		MMIOAXI4ARBitsID:   bits.New(4, 0),
		MMIOAXI4ARBitsAddr: bits.New(32, 0),
		MMIOAXI4ARBitsLen:  bits.New(8, 0),
		MMIOAXI4ARBitsSize: bits.New(3, 0),
		MMIOAXI4RReady:     bits.New(1, 0),
		MMIOAXI4RValid:     bits.New(1, 0),
		MMIOAXI4RBitsID:    bits.New(4, 0),
		MMIOAXI4RBitsData:  bits.New(64, 0),
		MMIOAXI4RBitsResp:  bits.New(2, 0),
		MMIOAXI4RBitsLast:  bits.New(1, 0),
	}
}

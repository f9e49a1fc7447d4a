package boom

import (
	"github.com/sarchlab/rtlsim/ksim"
	"github.com/sarchlab/rtlsim/model"
)

var portReaders = model.BindPorts[ksim.Signals](backendName, resolvePort)

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func resolvePort(name string) (model.PortReader[ksim.Signals], bool) {
	switch name {
	case "reset":
		return func(s *ksim.Signals) uint64 { return b2u(s.Reset) }, true
	case "mem_axi4_0_aw_valid":
		return func(s *ksim.Signals) uint64 { return b2u(s.MemAXI4AWValid) }, true
	case "mem_axi4_0_aw_bits_id":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4AWBitsID) }, true
	case "mem_axi4_0_aw_bits_addr":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4AWBitsAddr) }, true
	case "mem_axi4_0_aw_bits_len":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4AWBitsLen) }, true
	case "mem_axi4_0_aw_bits_size":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4AWBitsSize) }, true
	case "mem_axi4_0_w_valid":
		return func(s *ksim.Signals) uint64 { return b2u(s.MemAXI4WValid) }, true
	case "mem_axi4_0_w_bits_data":
		return func(s *ksim.Signals) uint64 { return s.MemAXI4WBitsData }, true
	case "mem_axi4_0_w_bits_strb":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4WBitsStrb) }, true
	case "mem_axi4_0_w_bits_last":
		return func(s *ksim.Signals) uint64 { return b2u(s.MemAXI4WBitsLast) }, true
	case "mem_axi4_0_b_ready":
		return func(s *ksim.Signals) uint64 { return b2u(s.MemAXI4BReady) }, true
	case "mem_axi4_0_ar_valid":
		return func(s *ksim.Signals) uint64 { return b2u(s.MemAXI4ARValid) }, true
	case "mem_axi4_0_ar_bits_id":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4ARBitsID) }, true
	case "mem_axi4_0_ar_bits_addr":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4ARBitsAddr) }, true
	case "mem_axi4_0_ar_bits_len":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4ARBitsLen) }, true
	case "mem_axi4_0_ar_bits_size":
		return func(s *ksim.Signals) uint64 { return uint64(s.MemAXI4ARBitsSize) }, true
	case "mem_axi4_0_r_ready":
		return func(s *ksim.Signals) uint64 { return b2u(s.MemAXI4RReady) }, true
	case "mmio_axi4_0_aw_valid":
		return func(s *ksim.Signals) uint64 { return b2u(s.MMIOAXI4AWValid) }, true
	case "mmio_axi4_0_aw_bits_id":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4AWBitsID) }, true
	case "mmio_axi4_0_aw_bits_addr":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4AWBitsAddr) }, true
	case "mmio_axi4_0_aw_bits_len":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4AWBitsLen) }, true
	case "mmio_axi4_0_aw_bits_size":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4AWBitsSize) }, true
	case "mmio_axi4_0_w_valid":
		return func(s *ksim.Signals) uint64 { return b2u(s.MMIOAXI4WValid) }, true
	case "mmio_axi4_0_w_bits_data":
		return func(s *ksim.Signals) uint64 { return s.MMIOAXI4WBitsData }, true
	case "mmio_axi4_0_w_bits_strb":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4WBitsStrb) }, true
	case "mmio_axi4_0_w_bits_last":
		return func(s *ksim.Signals) uint64 { return b2u(s.MMIOAXI4WBitsLast) }, true
	case "mmio_axi4_0_b_ready":
		return func(s *ksim.Signals) uint64 { return b2u(s.MMIOAXI4BReady) }, true
	case "mmio_axi4_0_ar_valid":
		return func(s *ksim.Signals) uint64 { return b2u(s.MMIOAXI4ARValid) }, true
	case "mmio_axi4_0_ar_bits_id":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4ARBitsID) }, true
	case "mmio_axi4_0_ar_bits_addr":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4ARBitsAddr) }, true
	case "mmio_axi4_0_ar_bits_len":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4ARBitsLen) }, true
	case "mmio_axi4_0_ar_bits_size":
		return func(s *ksim.Signals) uint64 { return uint64(s.MMIOAXI4ARBitsSize) }, true
	case "mmio_axi4_0_r_ready":
		return func(s *ksim.Signals) uint64 { return b2u(s.MMIOAXI4RReady) }, true
	}

	return nil, false
}

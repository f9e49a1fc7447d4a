package rocket

import (
	"github.com/sarchlab/rtlsim/essent"
	"github.com/sarchlab/rtlsim/model"
)

var portReaders = model.BindPorts[essent.Signals](backendName, resolvePort)

func resolvePort(name string) (model.PortReader[essent.Signals], bool) {
	switch name {
	case "reset":
		return func(s *essent.Signals) uint64 { return s.Reset.AsSingleWord() }, true
	case "mem_axi4_0_aw_valid":
		return func(s *essent.Signals) uint64 { return s.MemAXI4AWValid.AsSingleWord() }, true
	case "mem_axi4_0_aw_bits_id":
		return func(s *essent.Signals) uint64 { return s.MemAXI4AWBitsID.AsSingleWord() }, true
	case "mem_axi4_0_aw_bits_addr":
		return func(s *essent.Signals) uint64 { return s.MemAXI4AWBitsAddr.AsSingleWord() }, true
	case "mem_axi4_0_aw_bits_len":
		return func(s *essent.Signals) uint64 { return s.MemAXI4AWBitsLen.AsSingleWord() }, true
	case "mem_axi4_0_aw_bits_size":
		return func(s *essent.Signals) uint64 { return s.MemAXI4AWBitsSize.AsSingleWord() }, true
	case "mem_axi4_0_w_valid":
		return func(s *essent.Signals) uint64 { return s.MemAXI4WValid.AsSingleWord() }, true
	case "mem_axi4_0_w_bits_data":
		return func(s *essent.Signals) uint64 { return s.MemAXI4WBitsData.AsSingleWord() }, true
	case "mem_axi4_0_w_bits_strb":
		return func(s *essent.Signals) uint64 { return s.MemAXI4WBitsStrb.AsSingleWord() }, true
	case "mem_axi4_0_w_bits_last":
		return func(s *essent.Signals) uint64 { return s.MemAXI4WBitsLast.AsSingleWord() }, true
	case "mem_axi4_0_b_ready":
		return func(s *essent.Signals) uint64 { return s.MemAXI4BReady.AsSingleWord() }, true
	case "mem_axi4_0_ar_valid":
		return func(s *essent.Signals) uint64 { return s.MemAXI4ARValid.AsSingleWord() }, true
	case "mem_axi4_0_ar_bits_id":
		return func(s *essent.Signals) uint64 { return s.MemAXI4ARBitsID.AsSingleWord() }, true
	case "mem_axi4_0_ar_bits_addr":
		return func(s *essent.Signals) uint64 { return s.MemAXI4ARBitsAddr.AsSingleWord() }, true
	case "mem_axi4_0_ar_bits_len":
		return func(s *essent.Signals) uint64 { return s.MemAXI4ARBitsLen.AsSingleWord() }, true
	case "mem_axi4_0_ar_bits_size":
		return func(s *essent.Signals) uint64 { return s.MemAXI4ARBitsSize.AsSingleWord() }, true
	case "mem_axi4_0_r_ready":
		return func(s *essent.Signals) uint64 { return s.MemAXI4RReady.AsSingleWord() }, true
	case "mmio_axi4_0_aw_valid":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4AWValid.AsSingleWord() }, true
	case "mmio_axi4_0_aw_bits_id":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4AWBitsID.AsSingleWord() }, true
	case "mmio_axi4_0_aw_bits_addr":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4AWBitsAddr.AsSingleWord() }, true
	case "mmio_axi4_0_aw_bits_len":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4AWBitsLen.AsSingleWord() }, true
	case "mmio_axi4_0_aw_bits_size":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4AWBitsSize.AsSingleWord() }, true
	case "mmio_axi4_0_w_valid":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4WValid.AsSingleWord() }, true
	case "mmio_axi4_0_w_bits_data":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4WBitsData.AsSingleWord() }, true
	case "mmio_axi4_0_w_bits_strb":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4WBitsStrb.AsSingleWord() }, true
	case "mmio_axi4_0_w_bits_last":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4WBitsLast.AsSingleWord() }, true
	case "mmio_axi4_0_b_ready":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4BReady.AsSingleWord() }, true
	case "mmio_axi4_0_ar_valid":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4ARValid.AsSingleWord() }, true
	case "mmio_axi4_0_ar_bits_id":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4ARBitsID.AsSingleWord() }, true
	case "mmio_axi4_0_ar_bits_addr":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4ARBitsAddr.AsSingleWord() }, true
	case "mmio_axi4_0_ar_bits_len":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4ARBitsLen.AsSingleWord() }, true
	case "mmio_axi4_0_ar_bits_size":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4ARBitsSize.AsSingleWord() }, true
	case "mmio_axi4_0_r_ready":
		return func(s *essent.Signals) uint64 { return s.MMIOAXI4RReady.AsSingleWord() }, true
	}

	return nil, false
}

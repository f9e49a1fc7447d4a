package ksim_test

import (
	"errors"
	"math/bits"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rtlsim/ksim"
)

var _ = Describe("BoomSystem", func() {
	var (
		s   *ksim.BoomSystem
		sig *ksim.Signals
	)

	clock := func() {
		Expect(s.Eval()).To(Succeed())
	}

	leaveReset := func() {
		sig.Reset = true
		clock()
		sig.Reset = false
		clock()
	}

	BeforeEach(func() {
		s = ksim.NewBoomSystem()
		sig = s.Signals()
	})

	It("should settle outputs on construction", func() {
		Expect(sig.MemAXI4ARValid).To(BeFalse())
		Expect(sig.MemAXI4BReady).To(BeTrue())
		Expect(sig.MMIOAXI4RReady).To(BeTrue())
		Expect(sig.MMIOAXI4AWValid).To(BeFalse())
	})

	It("should not advance on combinational steps", func() {
		for i := 0; i < 5; i++ {
			Expect(s.EvalComb()).To(Succeed())
		}

		Expect(s.Cycles()).To(BeZero())
		Expect(sig.MemAXI4ARValid).To(BeFalse())
	})

	It("should hold in idle while reset is asserted", func() {
		sig.Reset = true
		for i := 0; i < 3; i++ {
			clock()
		}

		Expect(sig.MemAXI4ARValid).To(BeFalse())
		Expect(s.Cycles()).To(Equal(uint64(3)))
	})

	It("should request a burst after reset", func() {
		leaveReset()

		Expect(sig.MemAXI4ARValid).To(BeTrue())
		Expect(sig.MemAXI4ARBitsAddr).To(Equal(uint32(ksim.MemBase)))
		Expect(sig.MemAXI4ARBitsID).To(Equal(uint8(0)))
		Expect(sig.MemAXI4ARBitsLen).To(Equal(uint8(ksim.BurstBeats - 1)))
		Expect(sig.MemAXI4ARBitsSize).To(Equal(uint8(3)))
	})

	It("should checksum a burst and post it to mmio", func() {
		leaveReset()

		sig.MemAXI4ARReady = true
		clock()
		sig.MemAXI4ARReady = false
		Expect(sig.MemAXI4ARValid).To(BeFalse())
		Expect(sig.MemAXI4RReady).To(BeTrue())

		var want uint64
		for i := 0; i < ksim.BurstBeats; i++ {
			data := uint64(i+1) * 0x0101010101010101
			want = bits.RotateLeft64(want, 7) ^ data

			sig.MemAXI4RValid = true
			sig.MemAXI4RBitsData = data
			sig.MemAXI4RBitsLast = i == ksim.BurstBeats-1
			clock()
		}
		sig.MemAXI4RValid = false

		Expect(sig.MMIOAXI4AWValid).To(BeTrue())
		Expect(sig.MMIOAXI4AWBitsAddr).To(Equal(uint32(ksim.MMIOBase)))
		Expect(sig.MMIOAXI4WValid).To(BeTrue())
		Expect(sig.MMIOAXI4WBitsData).To(Equal(want))
		Expect(sig.MMIOAXI4WBitsStrb).To(Equal(uint8(0xFF)))
		Expect(sig.MMIOAXI4WBitsLast).To(BeTrue())

		sig.MMIOAXI4AWReady = true
		clock()
		sig.MMIOAXI4AWReady = false
		Expect(sig.MMIOAXI4AWValid).To(BeFalse())
		Expect(sig.MMIOAXI4WValid).To(BeTrue())

		sig.MMIOAXI4WReady = true
		clock()
		sig.MMIOAXI4WReady = false
		Expect(sig.MMIOAXI4BReady).To(BeTrue())

		sig.MMIOAXI4BValid = true
		clock()
		sig.MMIOAXI4BValid = false

		Expect(s.Completed()).To(Equal(uint32(1)))
		Expect(sig.MemAXI4ARValid).To(BeTrue())
		Expect(sig.MemAXI4ARBitsID).To(Equal(uint8(1)))
		Expect(sig.MemAXI4ARBitsAddr).To(Equal(uint32(ksim.MemBase + 64)))
	})

	It("should assert on an R beat with the wrong id", func() {
		leaveReset()
		sig.MemAXI4ARReady = true
		clock()

		cycles := s.Cycles()
		sig.MemAXI4RValid = true
		sig.MemAXI4RBitsID = 5
		err := s.Eval()

		var assertErr *ksim.AssertionError
		Expect(errors.As(err, &assertErr)).To(BeTrue())
		Expect(assertErr.Msg).To(ContainSubstring("id 5"))
		Expect(s.Cycles()).To(Equal(cycles))
		Expect(sig.MemAXI4RReady).To(BeTrue())
	})

	It("should abandon a burst on reset", func() {
		leaveReset()
		sig.MemAXI4ARReady = true
		clock()

		sig.Reset = true
		clock()

		Expect(sig.MemAXI4RReady).To(BeFalse())
		Expect(sig.MemAXI4ARValid).To(BeFalse())
	})
})

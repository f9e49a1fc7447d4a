package essent_test

import (
	"bytes"
	"errors"
	"log"
	mathbits "math/bits"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rtlsim/bits"
	"github.com/sarchlab/rtlsim/essent"
)

var _ = Describe("RocketSystem", func() {
	var (
		s   *essent.RocketSystem
		sig *essent.Signals
	)

	clock := func() {
		Expect(s.Eval(true, false, false)).To(Succeed())
	}

	leaveReset := func() {
		sig.Reset = bits.FromBool(true)
		clock()
		sig.Reset = bits.FromBool(false)
		clock()
	}

	BeforeEach(func() {
		s = essent.NewRocketSystem()
		sig = s.Signals()
	})

	It("should declare signal widths", func() {
		Expect(sig.Reset.Width()).To(Equal(1))
		Expect(sig.MemAXI4RBitsData.Width()).To(Equal(64))
		Expect(sig.MemAXI4ARBitsAddr.Width()).To(Equal(32))
		Expect(sig.MMIOAXI4BBitsID.Width()).To(Equal(4))
		Expect(sig.MMIOAXI4BBitsResp.Width()).To(Equal(2))
		Expect(sig.MMIOAXI4AWBitsSize.Width()).To(Equal(3))
	})

	It("should only settle without register updates", func() {
		for i := 0; i < 4; i++ {
			Expect(s.Eval(false, false, false)).To(Succeed())
		}

		Expect(s.Cycles()).To(BeZero())
		Expect(sig.MemAXI4ARValid.Bool()).To(BeFalse())
	})

	It("should issue single-beat reads after reset", func() {
		leaveReset()

		Expect(sig.MemAXI4ARValid.Bool()).To(BeTrue())
		Expect(sig.MemAXI4ARBitsAddr.AsSingleWord()).To(Equal(uint64(essent.MemBase)))
		Expect(sig.MemAXI4ARBitsLen.AsSingleWord()).To(BeZero())
		Expect(sig.MemAXI4ARBitsSize.AsSingleWord()).To(Equal(uint64(3)))
	})

	It("should post a running checksum to mmio", func() {
		leaveReset()

		var want uint64
		for i := 0; i < 2; i++ {
			sig.MemAXI4ARReady = bits.FromBool(true)
			clock()
			sig.MemAXI4ARReady = bits.FromBool(false)

			data := uint64(0xDEADBEEF00000000) | uint64(i)
			want = mathbits.RotateLeft64(want, 13) ^ data
			sig.MemAXI4RValid = bits.FromBool(true)
			sig.MemAXI4RBitsData = bits.New(64, data)
			sig.MemAXI4RBitsLast = bits.FromBool(true)
			clock()
			sig.MemAXI4RValid = bits.FromBool(false)

			Expect(sig.MMIOAXI4WBitsData.AsSingleWord()).To(Equal(want))
			Expect(sig.MMIOAXI4AWBitsAddr.AsSingleWord()).To(
				Equal(uint64(essent.MMIOBase + 8*i)))

			sig.MMIOAXI4AWReady = bits.FromBool(true)
			sig.MMIOAXI4WReady = bits.FromBool(true)
			clock()
			sig.MMIOAXI4AWReady = bits.FromBool(false)
			sig.MMIOAXI4WReady = bits.FromBool(false)
			Expect(sig.MMIOAXI4BReady.Bool()).To(BeTrue())

			sig.MMIOAXI4BValid = bits.FromBool(true)
			clock()
			sig.MMIOAXI4BValid = bits.FromBool(false)
		}

		Expect(s.Completed()).To(Equal(uint64(2)))
		Expect(sig.MemAXI4ARBitsAddr.AsSingleWord()).To(Equal(uint64(essent.MemBase + 16)))
	})

	It("should assert when done_reset is passed before any reset", func() {
		err := s.Eval(true, false, true)

		var assertErr *essent.AssertionError
		Expect(errors.As(err, &assertErr)).To(BeTrue())
		Expect(assertErr.Msg).To(ContainSubstring("done_reset"))
		Expect(s.Cycles()).To(BeZero())
	})

	It("should assert when done_reset is passed during reset", func() {
		sig.Reset = bits.FromBool(true)
		clock()

		Expect(s.Eval(true, false, true)).NotTo(Succeed())
	})

	It("should accept done_reset once reset has completed", func() {
		leaveReset()

		Expect(s.Eval(true, false, true)).To(Succeed())
		Expect(sig.MemAXI4ARValid.Bool()).To(BeTrue())
	})

	It("should assert on an R beat with a non-zero id", func() {
		leaveReset()
		sig.MemAXI4ARReady = bits.FromBool(true)
		clock()

		sig.MemAXI4RValid = bits.FromBool(true)
		sig.MemAXI4RBitsID = bits.New(4, 2)

		var assertErr *essent.AssertionError
		Expect(errors.As(s.Eval(true, false, false), &assertErr)).To(BeTrue())
	})

	It("should log register updates to the configured logger when verbose", func() {
		var buf bytes.Buffer
		s.SetLogger(log.New(&buf, "", 0))

		leaveReset()
		Expect(buf.String()).To(BeEmpty())

		Expect(s.Eval(true, true, false)).To(Succeed())
		Expect(buf.String()).To(Equal(
			"essent: cycle 3 state=read-addr fetch=0x80000000 checksum=0x0\n"))

		Expect(s.Eval(false, true, false)).To(Succeed())
		Expect(strings.Count(buf.String(), "\n")).To(Equal(1))
	})
})

package axi_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rtlsim/axi"
	"github.com/sarchlab/rtlsim/bits"
)

var _ = Describe("Inputs", func() {
	maxInputs := axi.Inputs{
		AWReady: true, WReady: true,
		BValid: true, BID: 15, BResp: 3,
		ARReady: true,
		RValid:  true, RID: 15, RData: 0xFFFFFFFFFFFFFFFF, RResp: 3, RLast: true,
	}

	It("should pass maximum values unchanged", func() {
		fitted, err := maxInputs.Fit(bits.Reject)
		Expect(err).NotTo(HaveOccurred())
		Expect(fitted).To(Equal(maxInputs))
	})

	DescribeTable("rejecting overflowing fields",
		func(mutate func(*axi.Inputs), signal string, width int) {
			in := maxInputs
			mutate(&in)

			fitted, err := in.Fit(bits.Reject)

			var rangeErr *bits.RangeError
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.Signal).To(Equal(signal))
			Expect(rangeErr.Width).To(Equal(width))
			Expect(fitted).To(Equal(axi.Inputs{}))
		},
		Entry("b_id", func(in *axi.Inputs) { in.BID = 16 }, "b_id", 4),
		Entry("b_resp", func(in *axi.Inputs) { in.BResp = 4 }, "b_resp", 2),
		Entry("r_id", func(in *axi.Inputs) { in.RID = 0x80 }, "r_id", 4),
		Entry("r_resp", func(in *axi.Inputs) { in.RResp = 7 }, "r_resp", 2),
	)

	It("should truncate under the legacy policy", func() {
		in := axi.Inputs{BID: 0x15, RID: 0x1F, BResp: 5, RResp: 6}

		fitted, err := in.Fit(bits.Truncate)
		Expect(err).NotTo(HaveOccurred())
		Expect(fitted.BID).To(Equal(uint8(5)))
		Expect(fitted.RID).To(Equal(uint8(15)))
		Expect(fitted.BResp).To(Equal(uint8(1)))
		Expect(fitted.RResp).To(Equal(uint8(2)))
	})

	It("should compute beat sizes", func() {
		Expect(axi.BeatBytes(0)).To(Equal(uint64(1)))
		Expect(axi.BeatBytes(3)).To(Equal(uint64(8)))
	})
})

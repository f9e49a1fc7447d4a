package model_test

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rtlsim/axi"
	"github.com/sarchlab/rtlsim/bits"
	"github.com/sarchlab/rtlsim/model"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should reject out-of-range inputs by default", func() {
		Expect(model.DefaultConfig().WidthPolicy).To(Equal(bits.Reject))
		Expect(model.DefaultConfig().Validate()).To(Succeed())
	})

	It("should save and load", func() {
		path := filepath.Join(dir, "model.json")
		config := &model.Config{WidthPolicy: bits.Truncate}
		Expect(config.SaveConfig(path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"width_policy": "truncate"`))

		loaded, err := model.LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(config))
	})

	It("should keep defaults for missing fields", func() {
		path := filepath.Join(dir, "empty.json")
		Expect(os.WriteFile(path, []byte("{}"), 0644)).To(Succeed())

		loaded, err := model.LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.WidthPolicy).To(Equal(bits.Reject))
	})

	It("should fail on unknown policies", func() {
		path := filepath.Join(dir, "bad.json")
		Expect(os.WriteFile(path, []byte(`{"width_policy": "wrap"}`), 0644)).To(Succeed())

		_, err := model.LoadConfig(path)
		Expect(err).To(MatchError(ContainSubstring("failed to parse model config")))
	})

	It("should fail on missing files", func() {
		_, err := model.LoadConfig(filepath.Join(dir, "missing.json"))
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("should not validate unknown policy values", func() {
		Expect((&model.Config{WidthPolicy: bits.Policy(9)}).Validate()).NotTo(Succeed())
	})

	It("should clone independently", func() {
		config := model.DefaultConfig()
		clone := config.Clone()
		clone.WidthPolicy = bits.Saturate
		Expect(config.WidthPolicy).To(Equal(bits.Reject))
	})
})

var _ = Describe("Options", func() {
	It("should resolve defaults", func() {
		s, err := model.ApplyOptions()
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Config).To(Equal(model.DefaultConfig()))
		Expect(s.Logger).To(BeNil())
	})

	It("should apply options in order", func() {
		config := &model.Config{WidthPolicy: bits.Truncate}
		s, err := model.ApplyOptions(
			model.WithConfig(config),
			model.WithWidthPolicy(bits.Saturate),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Config.WidthPolicy).To(Equal(bits.Saturate))
		Expect(config.WidthPolicy).To(Equal(bits.Truncate))
	})

	It("should fail on invalid configuration", func() {
		_, err := model.ApplyOptions(model.WithWidthPolicy(bits.Policy(-1)))
		Expect(err).To(MatchError(ContainSubstring("width_policy -1 is not a known policy")))
	})

	It("should use the defaults for a nil config", func() {
		s, err := model.ApplyOptions(
			model.WithWidthPolicy(bits.Truncate),
			model.WithConfig(nil),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Config).To(Equal(model.DefaultConfig()))
	})

	It("should log only with a logger", func() {
		silent, err := model.ApplyOptions()
		Expect(err).NotTo(HaveOccurred())
		silent.Logf("dropped %d", 1)

		var buf bytes.Buffer
		s, err := model.ApplyOptions(model.WithLogger(log.New(&buf, "", 0)))
		Expect(err).NotTo(HaveOccurred())
		s.Logf("kept %d", 2)
		Expect(buf.String()).To(Equal("kept 2\n"))
	})
})

var _ = Describe("BackendAssertionError", func() {
	It("should wrap the backend error", func() {
		inner := errors.New("R beat id mismatch")
		err := error(&model.BackendAssertionError{Backend: "essent", Err: inner})

		Expect(err.Error()).To(Equal("essent: backend assertion failed: R beat id mismatch"))
		Expect(errors.Is(err, inner)).To(BeTrue())

		var assertErr *model.BackendAssertionError
		Expect(errors.As(err, &assertErr)).To(BeTrue())
		Expect(assertErr.Backend).To(Equal("essent"))
	})
})

var _ = Describe("FitInputs", func() {
	It("should name the port in range errors", func() {
		_, err := model.FitInputs("mmio", axi.Inputs{RID: 16}, bits.Reject)

		var rangeErr *model.SignalRangeError
		Expect(errors.As(err, &rangeErr)).To(BeTrue())
		Expect(rangeErr.Signal).To(Equal("mmio.r_id"))
		Expect(rangeErr.Value).To(Equal(uint64(16)))
	})

	It("should return fitted inputs", func() {
		in, err := model.FitInputs("mem", axi.Inputs{BID: 0x12, RData: 7}, bits.Truncate)
		Expect(err).NotTo(HaveOccurred())
		Expect(in).To(Equal(axi.Inputs{BID: 2, RData: 7}))
	})
})

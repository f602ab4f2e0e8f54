package valley_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecisneros/cosmofig/internal/valley"
)

// unpenalized deterministic component, mirroring the model's arithmetic
// so penalty expectations can be compared bit-for-bit.
func unpenalized(tau, omega float64) float64 {
	r := tau * omega
	g := (r - 2.0) / 3.0
	return 0.15 - 0.12*math.Exp(-g*g)
}

var _ = Describe("Attractor", func() {
	var a *valley.Attractor

	BeforeEach(func() {
		a = valley.NewAttractor()
	})

	Describe("deterministic component", func() {
		It("bottoms out at 0.03 along the valley ridge", func() {
			// R = 2 with both parameters in range: 0.15 - 0.12, no penalty.
			// Tolerance covers one ulp of the subtraction.
			Expect(a.Deterministic(1.0, 2.0)).To(BeNumerically("~", 0.03, 1e-15))
			Expect(a.Deterministic(2.0, 1.0)).To(BeNumerically("~", 0.03, 1e-15))
			Expect(a.Deterministic(0.5, 4.0)).To(BeNumerically("~", 0.03, 1e-15))
		})

		It("approaches the base variance far from the valley", func() {
			v := a.Deterministic(5.0, 5.5) // R = 27.5, valley term ~ 0
			Expect(v).To(BeNumerically("~", 0.15, 1e-9))
		})

		It("adds exactly one penalty when tau leaves its range", func() {
			Expect(a.Deterministic(0.1, 2.0)).To(Equal(unpenalized(0.1, 2.0) + 0.1))
		})

		It("adds exactly one penalty when omega leaves its range", func() {
			Expect(a.Deterministic(2.0, 7.0)).To(Equal(unpenalized(2.0, 7.0) + 0.1))
		})

		It("stacks both penalties when both parameters are extreme", func() {
			Expect(a.Deterministic(0.1, 0.1)).To(Equal(unpenalized(0.1, 0.1) + 0.1 + 0.1))
		})

		It("applies no penalty at the range boundaries", func() {
			Expect(a.Deterministic(0.3, 2.0)).To(Equal(unpenalized(0.3, 2.0)))
			Expect(a.Deterministic(6.0, 0.5)).To(Equal(unpenalized(6.0, 0.5)))
		})
	})

	Describe("sampling", func() {
		It("never returns below the floor", func() {
			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 5000; i++ {
				v := a.Sample(1.0, 2.0, rng)
				Expect(v).To(BeNumerically(">=", a.Floor))
			}
		})

		It("stays near the deterministic value", func() {
			rng := rand.New(rand.NewSource(11))
			det := a.Deterministic(1.0, 2.0)
			for i := 0; i < 1000; i++ {
				v := a.Sample(1.0, 2.0, rng)
				// 10 sigma bound; failures here mean the noise term changed
				Expect(math.Abs(v - det)).To(BeNumerically("<", 10*a.NoiseSigma))
			}
		})

		It("reproduces the same draws for the same seed", func() {
			r1 := rand.New(rand.NewSource(42))
			r2 := rand.New(rand.NewSource(42))
			for i := 0; i < 100; i++ {
				Expect(a.Sample(1.5, 1.3, r1)).To(Equal(a.Sample(1.5, 1.3, r2)))
			}
		})
	})
})

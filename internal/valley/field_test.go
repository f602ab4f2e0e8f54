package valley_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecisneros/cosmofig/internal/valley"
)

func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

var _ = Describe("Evaluate", func() {
	var a *valley.Attractor

	BeforeEach(func() {
		a = valley.NewAttractor()
	})

	It("produces a rectangular grid matching both axes", func() {
		tau := linspace(0.2, 5.0, 20)
		omega := linspace(0.5, 5.5, 30)

		f, err := valley.Evaluate(a, tau, omega, rand.New(rand.NewSource(1)))
		Expect(err).NotTo(HaveOccurred())

		cols, rows := f.Dims()
		Expect(cols).To(Equal(20))
		Expect(rows).To(Equal(30))
		Expect(f.Data).To(HaveLen(30))
		for _, row := range f.Data {
			Expect(row).To(HaveLen(20))
		}
	})

	It("is bit-identical across runs with the same seed", func() {
		tau := linspace(0.2, 5.0, 80)
		omega := linspace(0.5, 5.5, 80)

		f1, err := valley.Evaluate(a, tau, omega, rand.New(rand.NewSource(42)))
		Expect(err).NotTo(HaveOccurred())
		f2, err := valley.Evaluate(a, tau, omega, rand.New(rand.NewSource(42)))
		Expect(err).NotTo(HaveOccurred())

		Expect(f1.Data).To(Equal(f2.Data))
	})

	It("differs across seeds", func() {
		tau := linspace(0.2, 5.0, 10)
		omega := linspace(0.5, 5.5, 10)

		f1, _ := valley.Evaluate(a, tau, omega, rand.New(rand.NewSource(1)))
		f2, _ := valley.Evaluate(a, tau, omega, rand.New(rand.NewSource(2)))
		Expect(f1.Data).NotTo(Equal(f2.Data))
	})

	It("rejects empty and unordered axes", func() {
		rng := rand.New(rand.NewSource(1))

		_, err := valley.Evaluate(a, nil, linspace(0.5, 5.5, 5), rng)
		Expect(err).To(MatchError(valley.ErrEmptyAxis))

		_, err = valley.Evaluate(a, []float64{1, 1, 2}, linspace(0.5, 5.5, 5), rng)
		Expect(err).To(MatchError(valley.ErrAxisOrder))

		_, err = valley.Evaluate(a, linspace(0.2, 5.0, 5), []float64{3, 2, 1}, rng)
		Expect(err).To(MatchError(valley.ErrAxisOrder))
	})

	It("exposes grid coordinates through the plotting contract", func() {
		tau := linspace(0.2, 5.0, 8)
		omega := linspace(0.5, 5.5, 6)

		f, err := valley.Evaluate(a, tau, omega, rand.New(rand.NewSource(3)))
		Expect(err).NotTo(HaveOccurred())

		Expect(f.X(0)).To(Equal(0.2))
		Expect(f.X(7)).To(Equal(5.0))
		Expect(f.Y(0)).To(Equal(0.5))
		Expect(f.Y(5)).To(Equal(5.5))
		Expect(f.Z(3, 2)).To(Equal(f.Data[2][3]))
	})

	It("finds the minimum near the valley ridge", func() {
		tau := linspace(0.3, 5.0, 60)
		omega := linspace(0.5, 5.5, 60)

		f, err := valley.Evaluate(a, tau, omega, rand.New(rand.NewSource(42)))
		Expect(err).NotTo(HaveOccurred())

		minTau, minOmega, minVar := f.Min()
		Expect(minVar).To(BeNumerically(">=", a.Floor))
		// noise sigma 0.01 can move the minimum along the ridge but not
		// far from R = 2
		Expect(minTau * minOmega).To(BeNumerically("~", a.ValleyCenter, 1.5))
	})
})

var _ = Describe("ValleyCurve", func() {
	It("tracks omega = R/tau with the deterministic variance", func() {
		a := valley.NewAttractor()
		pts := valley.ValleyCurve(a, 2.0, 0.3, 4.0, 50)

		Expect(pts).To(HaveLen(50))
		Expect(pts[0].Tau).To(Equal(0.3))
		Expect(pts[49].Tau).To(Equal(4.0))
		for _, p := range pts {
			Expect(p.Tau * p.Omega).To(BeNumerically("~", 2.0, 1e-9))
			Expect(p.Variance).To(Equal(a.Deterministic(p.Tau, p.Omega)))
		}
	})
})

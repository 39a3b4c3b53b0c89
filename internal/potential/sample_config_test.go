package potential_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arpitban/ljmc/internal/box"
	"github.com/arpitban/ljmc/internal/potential"
	"github.com/arpitban/ljmc/internal/xyz"
)

// Regression values computed for testdata/sample_config.xyz: 800
// particles in a box of side 10.0 with cutoff 3.0 (reduced units).
var _ = Describe("sample configuration energies", func() {
	var (
		b  *box.Box
		lj *potential.LennardJones
	)

	BeforeEach(func() {
		coords, err := xyz.ReadFile(filepath.Join("testdata", "sample_config.xyz"))
		Expect(err).NotTo(HaveOccurred())
		Expect(coords).To(HaveLen(800))

		b, err = box.New(10.0, coords)
		Expect(err).NotTo(HaveOccurred())

		lj, err = potential.New(1.0, 1.0, 3.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(lj.ValidateForBox(b.Length)).To(Succeed())
	})

	It("reproduces the total pair energy", func() {
		Expect(lj.TotalPairEnergy(b)).To(BeNumerically("~", -2087.532621, 1e-5))
	})

	It("computes the same total through the chunked sum", func() {
		serial := lj.TotalPairEnergy(b)
		Expect(lj.ChunkedTotalPairEnergy(b, 4)).To(BeNumerically("~", serial, 1e-9))
	})

	It("reproduces the energy of particle 0", func() {
		Expect(lj.ParticleEnergy(b, 0)).To(BeNumerically("~", -3.033683, 1e-5))
	})

	It("reproduces the tail correction", func() {
		Expect(lj.TailCorrection(b.NumParticles(), b.Volume())).
			To(BeNumerically("~", -198.488884, 1e-5))
	})

	It("derives the unit energy from pair sum and tail", func() {
		want := (lj.TotalPairEnergy(b) + lj.TailCorrection(800, b.Volume())) / 800
		Expect(lj.UnitEnergy(b)).To(BeNumerically("~", want, 1e-9))
		Expect(lj.UnitEnergy(b)).To(BeNumerically("~", -2.857527, 1e-5))
	})
})

package pipeline_test

import (
	"image/png"
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tsplot/internal/chart"
	"github.com/san-kum/tsplot/internal/config"
	"github.com/san-kum/tsplot/internal/pipeline"
	"github.com/san-kum/tsplot/internal/series"
	"github.com/san-kum/tsplot/internal/walk"
)

var _ = Describe("Pipeline", func() {
	var (
		dir string
		cfg pipeline.Config
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		cfg = pipeline.DefaultConfig()
		cfg.Seed = 42
		cfg.Output = filepath.Join(dir, "timeseries.png")
	})

	Describe("Compute", func() {
		It("produces two series of the configured length", func() {
			res, err := pipeline.New(cfg).Compute()
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Raw).To(HaveLen(500))
			Expect(res.Smoothed).To(HaveLen(500))
			Expect(res.Raw[0]).To(Equal(5.0))
			Expect(res.Smoothed[0]).To(Equal(res.Raw[0]))
		})

		It("uses the N-period smoothing factor", func() {
			res, err := pipeline.New(cfg).Compute()
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Alpha).To(BeNumerically("~", 2.0/501.0, 1e-15))
		})

		It("keeps every smoothed sample between its predecessor and the raw sample", func() {
			res, err := pipeline.New(cfg).Compute()
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i < len(res.Raw); i++ {
				lo := math.Min(res.Smoothed[i-1], res.Raw[i])
				hi := math.Max(res.Smoothed[i-1], res.Raw[i])
				Expect(res.Smoothed[i]).To(BeNumerically(">=", lo-1e-12))
				Expect(res.Smoothed[i]).To(BeNumerically("<=", hi+1e-12))
			}
		})

		It("reports the raw extremes", func() {
			res, err := pipeline.New(cfg).Compute()
			Expect(err).NotTo(HaveOccurred())

			for _, v := range res.Raw {
				Expect(v).To(BeNumerically("<=", res.YMax))
				Expect(v).To(BeNumerically(">=", res.YMin))
			}
			Expect(res.Raw).To(ContainElement(res.YMax))
			Expect(res.Raw).To(ContainElement(res.YMin))
		})

		It("rejects non-finite samples before rendering", func() {
			cfg.InitValue = math.NaN()
			_, err := pipeline.New(cfg).Run()
			Expect(err).To(MatchError(series.ErrNonFinite))

			_, statErr := os.Stat(cfg.Output)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})

		It("rejects an infinite start value", func() {
			cfg.InitValue = math.Inf(1)
			_, err := pipeline.New(cfg).Compute()
			Expect(err).To(MatchError(series.ErrNonFinite))
		})

		It("is reproducible for a fixed seed", func() {
			a, err := pipeline.New(cfg).Compute()
			Expect(err).NotTo(HaveOccurred())
			b, err := pipeline.New(cfg).Compute()
			Expect(err).NotTo(HaveOccurred())

			Expect(a.Raw).To(Equal(b.Raw))
			Expect(a.Smoothed).To(Equal(b.Smoothed))
			Expect(a.Seed).To(Equal(int64(42)))
		})

		It("resolves a zero seed from the clock", func() {
			cfg.Seed = 0
			res, err := pipeline.New(cfg).Compute()
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Seed).NotTo(BeZero())
		})

		It("returns the seed value for a single sample", func() {
			cfg.Length = 1
			res, err := pipeline.NewWithSource(cfg, walk.NewSource(1)).Compute()
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Raw).To(Equal(series.Series{5.0}))
			Expect(res.Smoothed).To(Equal(series.Series{5.0}))
		})

		It("rejects a zero length", func() {
			cfg.Length = 0
			_, err := pipeline.New(cfg).Compute()
			Expect(err).To(MatchError(series.ErrInvalidLength))
		})
	})

	Describe("Run", func() {
		It("writes a 640x480 png with both lines on a white background", func() {
			res, err := pipeline.New(cfg).Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Output).To(Equal(cfg.Output))

			f, err := os.Open(cfg.Output)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			img, err := png.Decode(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds().Dx()).To(Equal(640))
			Expect(img.Bounds().Dy()).To(Equal(480))

			var red, blue int
			for y := 0; y < 480; y++ {
				for x := 0; x < 640; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					switch {
					case r>>8 >= 200 && g>>8 <= 60 && b>>8 <= 60:
						red++
					case b>>8 >= 200 && r>>8 <= 60 && g>>8 <= 60:
						blue++
					}
				}
			}
			Expect(red).To(BeNumerically(">", 0))
			Expect(blue).To(BeNumerically(">", 0))

			r, g, b, _ := img.At(0, 0).RGBA()
			Expect([]uint32{r >> 8, g >> 8, b >> 8}).To(Equal([]uint32{255, 255, 255}))
		})

		It("surfaces renderer failures", func() {
			cfg.Output = filepath.Join(dir, "missing", "timeseries.png")
			_, err := pipeline.New(cfg).Run()
			Expect(err).To(MatchError(ContainSubstring("render")))
			Expect(err).To(MatchError(os.ErrNotExist))
		})

		It("surfaces invalid drawing areas", func() {
			cfg.Chart.Width = 0
			_, err := pipeline.New(cfg).Run()
			Expect(err).To(MatchError(chart.ErrInvalidSize))
		})
	})

	Describe("FromFile", func() {
		It("carries file settings into the pipeline", func() {
			fc := config.DefaultConfig()
			fc.Length = 10
			fc.InitValue = 1.5
			fc.Seed = 9
			fc.Output = "walk.png"
			fc.Chart.Title = "Walk"

			pc := pipeline.FromFile(fc)
			Expect(pc.Length).To(Equal(10))
			Expect(pc.InitValue).To(Equal(1.5))
			Expect(pc.Seed).To(Equal(int64(9)))
			Expect(pc.Output).To(Equal("walk.png"))
			Expect(pc.Chart.Title).To(Equal("Walk"))
			Expect(pc.Chart.Width).To(Equal(640))
			Expect(pc.Chart.SmoothedLabel).To(Equal(chart.DefaultSmoothedLabel))
		})
	})
})

package scene_test

import (
	"fmt"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cimviz/internal/particle"
	"github.com/san-kum/cimviz/internal/scene"
)

var _ = Describe("Build", func() {
	var particles []particle.Particle
	var params scene.Params

	BeforeEach(func() {
		particles = []particle.Particle{
			{ID: "A", Radius: 0.5, X: 2, Y: 2, Neighbors: []string{"B"}},
			{ID: "B", Radius: 0.5, X: 3, Y: 3},
			{ID: "C", Radius: 0.5, X: 8, Y: 8},
		}
		params = scene.Params{PlaneLength: 10, InteractionRadius: 1.5, SelectedIndex: 0}
	})

	Context("with the three-particle example", func() {
		It("classifies selected, neighbor and other", func() {
			s, err := scene.Build(params, particles)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Glyphs).To(HaveLen(3))
			Expect(s.All()).To(HaveLen(4))
			Expect(s.Glyphs[0].Category).To(Equal(scene.Selected))
			Expect(s.Glyphs[0].Color).To(Equal(scene.ColorSelected))
			Expect(s.Glyphs[1].Category).To(Equal(scene.Neighbor))
			Expect(s.Glyphs[1].Color).To(Equal(scene.ColorNeighbor))
			Expect(s.Glyphs[2].Category).To(Equal(scene.Other))
			Expect(s.Glyphs[2].Color).To(Equal(scene.ColorOther))
		})

		It("draws the highlight ring around the selected particle", func() {
			s, err := scene.Build(params, particles)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Highlight.X).To(Equal(2.0))
			Expect(s.Highlight.Y).To(Equal(2.0))
			Expect(s.Highlight.Radius).To(BeNumerically("~", 2.0, 1e-12))
			Expect(s.Highlight.Color).To(Equal(scene.ColorHighlight))
			Expect(s.Highlight.Fill).To(BeFalse())
			Expect(s.All()[3]).To(Equal(s.Highlight))
		})

		It("configures a fixed square plot", func() {
			s, err := scene.Build(params, particles)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Title).To(Equal("Cell Index Method"))
			Expect(s.XLabel).To(Equal("X"))
			Expect(s.YLabel).To(Equal("Y"))
			Expect(s.Grid).To(BeTrue())
			Expect(s.EqualAspect).To(BeTrue())
			Expect(s.X).To(Equal(scene.Bounds{Min: 0, Max: 10}))
			Expect(s.Y).To(Equal(scene.Bounds{Min: 0, Max: 10}))
		})

		It("leaves every glyph unfilled", func() {
			s, err := scene.Build(params, particles)
			Expect(err).NotTo(HaveOccurred())
			for _, g := range s.All() {
				Expect(g.Fill).To(BeFalse())
			}
		})
	})

	It("keeps axis bounds at the plane even when particles lie outside", func() {
		particles[2].X = 25
		particles[2].Y = -4
		s, err := scene.Build(params, particles)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.X).To(Equal(scene.Bounds{Min: 0, Max: 10}))
		Expect(s.Y).To(Equal(scene.Bounds{Min: 0, Max: 10}))
	})

	It("lets selection win over a self-listed neighbor", func() {
		particles[0].Neighbors = []string{"A", "C"}
		s, err := scene.Build(params, particles)
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Glyphs[0].Category).To(Equal(scene.Selected))
		Expect(s.Glyphs[1].Category).To(Equal(scene.Other))
		Expect(s.Glyphs[2].Category).To(Equal(scene.Neighbor))
	})

	It("uses only the selected particle's neighbor list", func() {
		particles[2].Neighbors = []string{"A", "B"}
		params.SelectedIndex = 1
		s, err := scene.Build(params, particles)
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Glyphs[0].Category).To(Equal(scene.Other))
		Expect(s.Glyphs[1].Category).To(Equal(scene.Selected))
		Expect(s.Glyphs[2].Category).To(Equal(scene.Other))
	})

	It("honors a custom title", func() {
		params.Title = "Run 7"
		s, err := scene.Build(params, particles)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Title).To(Equal("Run 7"))
	})

	DescribeTable("rejects invalid input",
		func(modify func(*scene.Params), want error) {
			modify(&params)
			s, err := scene.Build(params, particles)
			Expect(err).To(MatchError(want))
			Expect(s).To(BeNil())
		},
		Entry("index past the end", func(p *scene.Params) { p.SelectedIndex = 3 }, scene.ErrSelectedOutOfRange),
		Entry("negative index", func(p *scene.Params) { p.SelectedIndex = -1 }, scene.ErrSelectedOutOfRange),
		Entry("zero plane length", func(p *scene.Params) { p.PlaneLength = 0 }, scene.ErrPlaneLength),
	)

	It("rejects an empty particle table", func() {
		_, err := scene.Build(params, nil)
		Expect(err).To(MatchError(scene.ErrSelectedOutOfRange))
	})

	Context("with random tables", func() {
		It("holds the classification properties", func() {
			rng := rand.New(rand.NewSource(3))
			for trial := 0; trial < 50; trial++ {
				n := 1 + rng.Intn(40)
				ps := make([]particle.Particle, n)
				for i := range ps {
					ps[i] = particle.Particle{
						ID:     fmt.Sprintf("p_%d", i),
						Radius: rng.Float64(),
						X:      rng.Float64() * 20,
						Y:      rng.Float64() * 20,
					}
				}
				sel := rng.Intn(n)
				for i := range ps {
					if i != sel && rng.Intn(3) == 0 {
						ps[sel].Neighbors = append(ps[sel].Neighbors, ps[i].ID)
					}
				}

				s, err := scene.Build(scene.Params{PlaneLength: 20, InteractionRadius: 1, SelectedIndex: sel}, ps)
				Expect(err).NotTo(HaveOccurred())

				Expect(s.Glyphs).To(HaveLen(n))
				Expect(s.Count(scene.Selected)).To(Equal(1))
				Expect(s.Glyphs[sel].Category).To(Equal(scene.Selected))
				Expect(s.Count(scene.Neighbor)).To(Equal(len(ps[sel].Neighbors)))
				Expect(s.Count(scene.Other)).To(Equal(n - 1 - len(ps[sel].Neighbors)))
				Expect(s.Highlight.Radius).To(BeNumerically("~", ps[sel].Radius+1, 1e-12))
				Expect(s.Highlight.X).To(Equal(ps[sel].X))
				Expect(s.Highlight.Y).To(Equal(ps[sel].Y))
			}
		})
	})
})

var _ = Describe("Category", func() {
	It("names and colors each category", func() {
		Expect(scene.Selected.String()).To(Equal("selected"))
		Expect(scene.Neighbor.String()).To(Equal("neighbor"))
		Expect(scene.Other.String()).To(Equal("other"))
		Expect(scene.Other.Color()).To(Equal(scene.ColorOther))
	})
})

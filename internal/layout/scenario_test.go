package layout_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/scenecore/internal/layout"
)

var _ = Describe("Graph layout", func() {
	var skills []layout.Item

	BeforeEach(func() {
		skills = []layout.Item{
			{Name: "React", Level: 90, Category: "frontend"},
			{Name: "TypeScript", Level: 85, Category: "frontend"},
			{Name: "Three.js", Level: 70, Category: "frontend"},
			{Name: "Go", Level: 80, Category: "backend"},
			{Name: "Node.js", Level: 75, Category: "backend"},
			{Name: "GraphQL", Level: 60, Category: "backend"},
			{Name: "PostgreSQL", Level: 70, Category: "database"},
			{Name: "Redis", Level: 55, Category: "database"},
		}
	})

	Context("with 8 skills across 3 categories", func() {
		It("produces one node per skill with unique ids", func() {
			g := layout.BuildGraph(skills, 3)
			Expect(g.Nodes).To(HaveLen(8))

			ids := map[string]bool{}
			for _, n := range g.Nodes {
				Expect(ids).NotTo(HaveKey(n.ID))
				ids[n.ID] = true
			}
		})

		It("only links categories from the adjacency table", func() {
			g := layout.BuildGraph(skills, 3)
			// 3 frontend x 3 backend + 3 backend x 2 database
			Expect(g.Edges).To(HaveLen(15))

			for _, e := range g.Edges {
				a, okA := g.Node(e.SourceID)
				b, okB := g.Node(e.TargetID)
				Expect(okA && okB).To(BeTrue())
				Expect(layout.Adjacent(a.Category, b.Category)).To(BeTrue())
				Expect(e.Strength).To(BeNumerically(">=", 0))
				Expect(e.Strength).To(BeNumerically("<=", 1))
			}
		})

		It("sizes nodes by level within [0.2, 0.5]", func() {
			for _, n := range layout.BuildGraph(skills, 3).Nodes {
				Expect(n.Radius).To(BeNumerically(">=", layout.MinNodeRadius))
				Expect(n.Radius).To(BeNumerically("<=", layout.MinNodeRadius+layout.NodeRadiusSpan))
				Expect(n.Position.Length()).To(BeNumerically("~", 3, 1e-9))
			}
		})

		It("is reproducible for the same input order", func() {
			Expect(layout.BuildGraph(skills, 3)).To(Equal(layout.BuildGraph(skills, 3)))
		})
	})

	It("never fails on empty input", func() {
		g := layout.BuildGraph(nil, 3)
		Expect(g.Nodes).To(BeEmpty())
		Expect(g.Edges).To(BeEmpty())
	})
})

var _ = Describe("Carousel layout", func() {
	Context("with 20 projects", func() {
		var cards []layout.CardPlacement

		BeforeEach(func() {
			cards = layout.Carousel(20, 6)
		})

		It("places every project", func() {
			Expect(cards).To(HaveLen(20))
		})

		It("uses at least two distinct ring radii", func() {
			radii := map[float64]bool{}
			for _, c := range cards {
				r := math.Round(math.Hypot(c.Position.X, c.Position.Z)*1e6) / 1e6
				radii[r] = true
			}
			Expect(len(radii)).To(BeNumerically(">=", 2))
		})

		It("never scales a card below 0.7", func() {
			for _, c := range cards {
				Expect(c.Scale).To(BeNumerically(">=", 0.7))
			}
		})
	})

	DescribeTable("single ring up to twelve cards",
		func(count int) {
			cards := layout.Carousel(count, 4)
			Expect(cards).To(HaveLen(count))
			for _, c := range cards {
				Expect(math.Hypot(c.Position.X, c.Position.Z)).To(BeNumerically("~", 4, 1e-9))
				Expect(c.Scale).To(Equal(1.0))
			}
		},
		Entry("one card", 1),
		Entry("six cards", 6),
		Entry("twelve cards", 12),
	)
})

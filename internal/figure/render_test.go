package figure_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gridplot/internal/figure"
	"github.com/san-kum/gridplot/internal/table"
)

func mustRead(content string) *table.Table {
	t, err := table.Read(strings.NewReader(content), "inline", table.Schema{})
	Expect(err).NotTo(HaveOccurred())
	return t
}

var _ = Describe("Render", func() {
	const cells = "Element,data.velocity.x,data.velocity.y,data.density\n" +
		"0,1.0,2.0,5.0\n" +
		"1,1.5,2.5,5.2\n"

	It("produces the four panels in fixed order", func() {
		fig, err := figure.Render(mustRead(cells), figure.DefaultLayout())
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Rows).To(Equal(2))
		Expect(fig.Cols).To(Equal(2))
		Expect(fig.Titles()).To(Equal([]string{"Velocity", "External Force", "Pressure and Density", "Temperature"}))
	})

	It("fills each panel with its enabled series only", func() {
		fig, err := figure.Render(mustRead(cells), figure.DefaultLayout())
		Expect(err).NotTo(HaveOccurred())

		Expect(fig.Panels[0].Series).To(HaveLen(2))
		Expect(fig.Panels[0].Legend()).To(Equal([]string{"Velocity X", "Velocity Y"}))
		for _, s := range fig.Panels[0].Series {
			Expect(s.Len()).To(Equal(2))
		}

		Expect(fig.Panels[1].Series).To(BeEmpty())
		Expect(fig.Panels[1].Legend()).To(BeEmpty())

		Expect(fig.Panels[2].Series).To(HaveLen(1))
		Expect(fig.Panels[2].Series[0].Label).To(Equal("Density"))
		Expect(fig.Panels[2].Series[0].Y).To(Equal([]float64{5.0, 5.2}))

		Expect(fig.Panels[3].Series).To(BeEmpty())
	})

	It("carries the loaded values through unchanged", func() {
		t := mustRead("Element,data.velocity.x,data.velocity.y\n" +
			"0,0.0,0.0\n" +
			"1,1.0,-1.0\n" +
			"2,2.0,-2.0\n")
		layout := figure.Layout{
			XColumn: "Element",
			Rows:    1,
			Cols:    1,
			Panels:  figure.DefaultLayout().Panels[:1],
		}

		fig, err := figure.Render(t, layout)
		Expect(err).NotTo(HaveOccurred())

		velocity := fig.Panels[0]
		Expect(velocity.Title).To(Equal("Velocity"))
		Expect(velocity.XLabel).To(Equal("Element"))
		Expect(velocity.Series).To(HaveLen(2))
		Expect(velocity.Series[0].X).To(Equal([]float64{0, 1, 2}))
		Expect(velocity.Series[0].Y).To(Equal([]float64{0.0, 1.0, 2.0}))
		Expect(velocity.Series[1].X).To(Equal([]float64{0, 1, 2}))
		Expect(velocity.Series[1].Y).To(Equal([]float64{0.0, -1.0, -2.0}))
	})

	It("fails on a missing series column", func() {
		t := mustRead("Element,data.velocity.y,data.density\n0,1,2\n")

		_, err := figure.Render(t, figure.DefaultLayout())
		Expect(err).To(MatchError(figure.ErrMissingColumn))
		Expect(err).To(MatchError(table.ErrMissingColumn))
		Expect(err.Error()).To(ContainSubstring("data.velocity.x"))
		Expect(err.Error()).To(ContainSubstring(`panel "Velocity"`))
	})

	It("fails on a missing x column", func() {
		t := mustRead("data.velocity.x,data.velocity.y,data.density\n0,1,2\n")

		_, err := figure.Render(t, figure.DefaultLayout())
		Expect(err).To(MatchError(figure.ErrMissingColumn))
		Expect(err.Error()).To(ContainSubstring("Element"))
	})

	It("fails on non-numeric data", func() {
		t := mustRead("Element,data.velocity.x,data.velocity.y,data.density\n0,1,2,dense\n")

		_, err := figure.Render(t, figure.DefaultLayout())
		Expect(err).To(MatchError(figure.ErrNonNumericData))
		Expect(err.Error()).To(ContainSubstring("data.density"))
	})

	It("needs no disabled column to succeed", func() {
		fig, err := figure.Render(mustRead(cells), figure.DefaultLayout())
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Panels).To(HaveLen(4))
	})

	It("rejects layouts that overflow the grid", func() {
		layout := figure.DefaultLayout()
		layout.Rows = 1

		_, err := figure.Render(mustRead(cells), layout)
		Expect(err).To(MatchError(figure.ErrLayout))
	})
})

var _ = Describe("Layout", func() {
	It("requires only the enabled columns", func() {
		Expect(figure.DefaultLayout().RequiredColumns()).To(Equal([]string{
			"Element", "data.velocity.x", "data.velocity.y", "data.density",
		}))
	})

	It("lists shared columns once", func() {
		layout := figure.Layout{
			XColumn: "Element",
			Rows:    1,
			Cols:    2,
			Panels: []figure.PanelSpec{
				{Title: "a", Series: []figure.SeriesSpec{{Column: "data.pressure"}}},
				{Title: "b", Series: []figure.SeriesSpec{{Column: "data.pressure"}, {Column: "Element"}}},
			},
		}
		Expect(layout.RequiredColumns()).To(Equal([]string{"Element", "data.pressure"}))
	})

	It("labels unlabeled series by column", func() {
		Expect(figure.SeriesSpec{Column: "data.temperature"}.DisplayLabel()).To(Equal("data.temperature"))
		Expect(figure.SeriesSpec{Column: "data.temperature", Label: "Temperature"}.DisplayLabel()).To(Equal("Temperature"))
	})

	DescribeTable("validation",
		func(mutate func(*figure.Layout), ok bool) {
			layout := figure.DefaultLayout()
			mutate(&layout)
			if ok {
				Expect(layout.Validate()).To(Succeed())
			} else {
				Expect(layout.Validate()).To(MatchError(figure.ErrLayout))
			}
		},
		Entry("default", func(l *figure.Layout) {}, true),
		Entry("no x column", func(l *figure.Layout) { l.XColumn = "" }, false),
		Entry("zero cols", func(l *figure.Layout) { l.Cols = 0 }, false),
		Entry("series without column", func(l *figure.Layout) {
			l.Panels[1].Series = []figure.SeriesSpec{{Label: "External Force X"}}
		}, false),
		Entry("larger grid", func(l *figure.Layout) { l.Rows = 3 }, true),
	)
})

package table_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gridplot/internal/table"
)

func writeCSV(dir, content string) string {
	path := filepath.Join(dir, "data.csv")
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("keeps every header column on every row", func() {
		path := writeCSV(dir, "a,b,c\n1,2,3\n4,5,6\n7,8,9\n")

		t, err := table.Load(path, table.Schema{})
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(3))
		Expect(t.Columns()).To(Equal([]string{"a", "b", "c"}))
		for i := 0; i < t.Len(); i++ {
			Expect(t.Row(i)).To(HaveLen(3))
			Expect(t.Row(i)).To(HaveKey("a"))
			Expect(t.Row(i)).To(HaveKey("b"))
			Expect(t.Row(i)).To(HaveKey("c"))
		}
		Expect(t.Row(1)).To(Equal(table.Record{"a": "4", "b": "5", "c": "6"}))
	})

	It("trims whitespace following a delimiter", func() {
		path := writeCSV(dir, "Element, data.velocity.x,  data.density\n0,  1.5, 5.0\n")

		t, err := table.Load(path, table.NewSchema("Element", "data.velocity.x", "data.density"))
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Row(0)).To(Equal(table.Record{
			"Element":         "0",
			"data.velocity.x": "1.5",
			"data.density":    "5.0",
		}))
	})

	It("accepts a header with no data rows", func() {
		path := writeCSV(dir, "Element,data.density\n")

		t, err := table.Load(path, table.Schema{})
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(0))
	})

	It("reports a missing file", func() {
		_, err := table.Load(filepath.Join(dir, "nope.csv"), table.Schema{})
		Expect(err).To(MatchError(table.ErrFileNotFound))
		Expect(err.Error()).To(ContainSubstring("nope.csv"))
	})

	DescribeTable("rejects rows that do not match the header",
		func(content string, line int) {
			path := writeCSV(dir, content)

			_, err := table.Load(path, table.Schema{})
			Expect(err).To(MatchError(table.ErrMalformedInput))

			var te *table.Error
			Expect(errors.As(err, &te)).To(BeTrue())
			Expect(te.Line).To(Equal(line))
			Expect(te.Source).To(Equal(path))
		},
		Entry("too few fields", "a,b,c\n1,2,3\n4,5\n", 3),
		Entry("too many fields", "a,b\n1,2,3\n", 2),
	)

	It("rejects an empty file", func() {
		path := writeCSV(dir, "")

		_, err := table.Load(path, table.Schema{})
		Expect(err).To(MatchError(table.ErrMalformedInput))
	})

	It("rejects a duplicated header", func() {
		path := writeCSV(dir, "a,b,a\n1,2,3\n")

		_, err := table.Load(path, table.Schema{})
		Expect(err).To(MatchError(table.ErrMalformedInput))
		Expect(err.Error()).To(ContainSubstring(`"a"`))
	})

	It("validates the schema once at load time", func() {
		path := writeCSV(dir, "Element,data.velocity.y\n0,1\n")

		_, err := table.Load(path, table.NewSchema("Element", "data.velocity.x", "data.density"))
		Expect(err).To(MatchError(table.ErrMissingColumn))
		Expect(err.Error()).To(ContainSubstring("data.velocity.x"))
		Expect(err.Error()).To(ContainSubstring("data.density"))
	})

	It("reads other delimiters", func() {
		t, err := table.Read(strings.NewReader("x;y\n1; 2\n"), "inline", table.Schema{}, table.WithComma(';'))
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Row(0)).To(Equal(table.Record{"x": "1", "y": "2"}))
	})
})

var _ = Describe("Floats", func() {
	It("returns the parsed values in row order", func() {
		t, err := table.Read(strings.NewReader("v\n0.0\n-1.0\n2e3\n"), "inline", table.Schema{})
		Expect(err).NotTo(HaveOccurred())

		vals, err := t.Floats("v")
		Expect(err).NotTo(HaveOccurred())
		Expect(vals).To(Equal([]float64{0, -1, 2000}))
	})

	DescribeTable("rejects values that cannot be plotted",
		func(value string) {
			t, err := table.Read(strings.NewReader("v\n1\n"+value+"\n"), "inline", table.Schema{})
			Expect(err).NotTo(HaveOccurred())

			_, err = t.Floats("v")
			Expect(err).To(MatchError(table.ErrNonNumericData))
			Expect(err.Error()).To(ContainSubstring(`column "v" row 2`))
		},
		Entry("text", "fast"),
		Entry("empty", `""`),
		Entry("nan", "NaN"),
		Entry("inf", "+Inf"),
	)

	It("reports a missing column", func() {
		t, err := table.Read(strings.NewReader("v\n1\n"), "inline", table.Schema{})
		Expect(err).NotTo(HaveOccurred())

		_, err = t.Floats("w")
		Expect(err).To(MatchError(table.ErrMissingColumn))
		Expect(t.IsNumeric("w")).To(BeFalse())
		Expect(t.IsNumeric("v")).To(BeTrue())
	})
})

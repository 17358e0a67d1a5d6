package datatable

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in     string
		want   float64
		wantOK bool
	}{
		"integer":     {in: "42", want: 42, wantOK: true},
		"negative":    {in: "-0.5", want: -0.5, wantOK: true},
		"exponent":    {in: "1e3", want: 1000, wantOK: true},
		"plus sign":   {in: "+7", want: 7, wantOK: true},
		"empty":       {in: ""},
		"text":        {in: "abc"},
		"hex":         {in: "0x1p4"},
		"underscores": {in: "1_000"},
		"spaces":      {in: " 1"},
		"currency":    {in: "$5"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseDecimal(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestParseDecimalSpecialValues(t *testing.T) {
	t.Parallel()
	f, ok := parseDecimal("1e400")
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, 1))

	f, ok = parseDecimal("-1e400")
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, -1))

	f, ok = parseDecimal("NaN")
	assert.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   float64
		want string
	}{
		"integral":       {in: 2, want: "2.0"},
		"zero":           {in: 0, want: "0.0"},
		"fraction":       {in: 1.5, want: "1.5"},
		"negative":       {in: -12.25, want: "-12.25"},
		"large plain":    {in: 1e15, want: "1000000000000000.0"},
		"large exp":      {in: 1e16, want: "1e16"},
		"huge":           {in: 1.5e300, want: "1.5e300"},
		"small plain":    {in: 1e-5, want: "0.00001"},
		"small exp":      {in: 1e-6, want: "1e-6"},
		"small mantissa": {in: 1.5e-6, want: "1.5e-6"},
		"below boundary": {in: 9.5e-6, want: "9.5e-6"},
		"negative tiny":  {in: -2.5e-10, want: "-2.5e-10"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatFloat(tt.in))
		})
	}
}

func TestToUpper(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "STRASSE", toUpper("straße"))
	assert.Equal(t, "ÉCOLE", toUpper("école"))
	assert.Equal(t, "", toUpper(""))
}

func TestPageControls(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		total, size, page uint32
		want              string
	}{
		"first":  {total: 30, size: 10, page: 1, want: "[1] 2 3 Next >"},
		"middle": {total: 30, size: 10, page: 2, want: "< Previous 1 [2] 3 Next >"},
		"last":   {total: 30, size: 10, page: 3, want: "< Previous 1 2 [3]"},
		"window": {total: 120, size: 10, page: 6, want: "< Previous 4 5 [6] 7 8 Next >"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := NewPager(tt.size)
			p.SetTotal(tt.total)
			p.SetPage(tt.page)
			assert.Equal(t, tt.want, pageControls(p))
		})
	}
}

func TestWidenTo(t *testing.T) {
	t.Parallel()
	widths := []int{4, 3}
	widenTo(widths, 17)
	assert.Equal(t, []int{4, 10}, widths)

	widths = []int{10, 10}
	widenTo(widths, 5)
	assert.Equal(t, []int{10, 10}, widths)

	widenTo(nil, 5)
}

func TestTableInnerWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, tableInnerWidth(nil))
	assert.Equal(t, 7, tableInnerWidth([]int{5}))
	assert.Equal(t, 13, tableInnerWidth([]int{5, 3}))
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", alignCell("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", alignCell("ab", 5, AlignRight))
	assert.Equal(t, " ab  ", alignCell("ab", 5, AlignCenter))
	assert.Equal(t, "abcdef", alignCell("abcdef", 3, AlignLeft))
}

func TestFormatTableCellTruncates(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hel...", formatTableCell("hello world", 6, AlignLeft))
	assert.Equal(t, "hel", formatTableCell("hello", 3, AlignLeft))
	assert.Equal(t, "你好...", formatTableCell("你好世界你好", 7, AlignLeft))
}

func TestCellTagsOutOfRange(t *testing.T) {
	t.Parallel()
	l := tableLayout{tags: [][][]Style{{{StylePositive}}}}
	assert.Equal(t, []Style{StylePositive}, l.cellTags(0, 0))
	assert.Nil(t, l.cellTags(-1, 0))
	assert.Nil(t, l.cellTags(1, 0))
	assert.Nil(t, l.cellTags(0, 1))
}

func TestXLSXStylePrefersStatus(t *testing.T) {
	t.Parallel()
	ids := map[Style]int{StylePositive: 1, StyleNegative: 2, StyleSuccess: 3, StyleError: 4}
	tests := map[string]struct {
		tags   []Style
		want   int
		wantOK bool
	}{
		"sign only":      {tags: []Style{StyleNegative}, want: 2, wantOK: true},
		"status wins":    {tags: []Style{StylePositive, StyleSuccess}, want: 3, wantOK: true},
		"error wins":     {tags: []Style{StyleNegative, StyleError, StyleUppercase}, want: 4, wantOK: true},
		"uppercase only": {tags: []Style{StyleUppercase}},
		"none":           {},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := xlsxStyle(ids, tt.tags)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSheetName(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in, want string
	}{
		"empty":         {in: "", want: "Sheet1"},
		"blank":         {in: "   ", want: "Sheet1"},
		"plain":         {in: "Orders", want: "Orders"},
		"invalid chars": {in: "a/b:c[1]", want: "a b c(1)"},
		"quotes":        {in: "'quoted'", want: "quoted"},
		"long":          {in: strings.Repeat("x", 40), want: strings.Repeat("x", 31)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sheetName(tt.in))
		})
	}
}

func TestPaletteRender(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", NoColor().Render("abc", []Style{StylePositive, StyleError}))

	p := Palette{
		StylePositive: lipgloss.NewStyle().Transform(strings.ToUpper),
		StyleError:    lipgloss.NewStyle().Transform(func(s string) string { return s + "!" }),
	}
	assert.Equal(t, "abc", p.Render("abc", nil))
	assert.Equal(t, "abc", p.Render("abc", []Style{StyleUppercase}))
	assert.Equal(t, "ABC", p.Render("abc", []Style{StylePositive}))
	assert.Equal(t, "abc!", p.Render("abc", []Style{StyleError}))
	assert.Equal(t, "ABC", p.Render("abc", []Style{StylePositive, StyleError}))
}

func TestDefaultPaletteCoversSignAndStatus(t *testing.T) {
	t.Parallel()
	p := DefaultPalette()
	for _, s := range []Style{StylePositive, StyleNegative, StyleSuccess, StyleError} {
		assert.Contains(t, p, s)
	}
	assert.NotContains(t, p, StyleUppercase)
}

func TestNewTableLayout(t *testing.T) {
	t.Parallel()
	v := View{
		Columns: Columns{
			{Key: "code", Uppercase: true},
			{Key: "price", IsCurrency: true, CurrencyKey: "cur"},
		},
		Records: []Record{{"code": StringValue("ab"), "price": IntValue(3), "cur": StringValue("eur")}},
	}
	l := newTableLayout(v)
	assert.Equal(t, [][]string{{"AB", "3 eur"}}, l.rows)
	assert.Equal(t, []int{4, 5}, l.widths)
	assert.Equal(t, []Alignment{AlignLeft, AlignLeft}, l.aligns)
	assert.NotNil(t, l.pal)
}

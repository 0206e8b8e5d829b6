package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// SeparatorWidth is the width of the dashed line closing each report.
const SeparatorWidth = 40

// Banner renders a report title.
func Banner(title string) string {
	return bannerStyle.Render(title)
}

// Heading renders a label line inside a report.
func Heading(text string) string {
	return headingStyle.Render(text)
}

// Value highlights a reported value.
func Value(text string) string {
	return valueStyle.Render(text)
}

// Muted renders secondary text such as timings.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// Error renders an error message.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Success renders a confirmation message.
func Success(text string) string {
	return successStyle.Render(text)
}

// Separator returns the dashed line printed after every report.
func Separator() string {
	return strings.Repeat("-", SeparatorWidth)
}

// Count formats an occurrence count with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Quantity formats a measurement. Values of at least one keep up to three
// decimals with thousands separators; smaller values keep four significant
// digits so that e.g. 0.006944 days does not collapse to zero.
func Quantity(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if math.Abs(v) >= 1 || v == 0 {
		return humanize.CommafWithDigits(v, 3)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// Year formats a birth year, which datasets store as a float.
func Year(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Table renders headers and rows as a bordered table. Rows longer than the
// headers get extra unnamed columns instead of being cut.
func Table(headers []string, rows [][]string) string {
	cols := len(headers)
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if cols > len(headers) {
		headers = append(append(make([]string, 0, cols), headers...), make([]string, cols-len(headers))...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	for _, r := range rows {
		cells := make([]string, cols)
		copy(cells, r)
		t.Row(cells...)
	}
	return t.Render()
}

// RowsTable renders raw dataset rows under their header. firstRow is the
// 0-based table position of rows[0] and is shown in a leading column.
func RowsTable(header []string, rows [][]string, firstRow int) string {
	headers := append([]string{"#"}, header...)
	numbered := make([][]string, len(rows))
	for i, r := range rows {
		numbered[i] = append([]string{strconv.Itoa(firstRow + i)}, r...)
	}
	return Table(headers, numbered)
}

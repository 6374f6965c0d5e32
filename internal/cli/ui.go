package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vdobler/subplot"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle for layout and preset names.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text such as figure sizes.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for overflowing axes.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell        = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}

// rectTable renders one line per cell. unit is the column header suffix,
// e.g. "in".
func rectTable(cells []cell, unit string) string {
	suffix := ""
	if unit != "" {
		suffix = " [" + unit + "]"
	}
	rows := make([][]string, len(cells))
	for i, c := range cells {
		rows[i] = []string{
			strconv.Itoa(c.Index), strconv.Itoa(c.Row), strconv.Itoa(c.Col),
			num(c.Left), num(c.Bottom), num(c.Width), num(c.Height),
		}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Row", "Col", "Left"+suffix, "Bottom"+suffix, "Width"+suffix, "Height"+suffix).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col > 2 {
				return styleCell.Foreground(colorCyan)
			}
			return styleCell
		})
	return t.Render()
}

// fitTable compares the figure with the required extent per axis.
func fitTable(f subplot.Fit) string {
	status := func(over bool) string {
		if over {
			return StyleWarning.Render("overflow")
		}
		return "ok"
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Axis", "Figure [in]", "Required [in]", "").
		Rows(
			[]string{"width", num(f.Figure.Width), num(f.Required.Width), status(f.OverflowsX())},
			[]string{"height", num(f.Figure.Height), num(f.Required.Height), status(f.OverflowsY())},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
	return t.Render()
}

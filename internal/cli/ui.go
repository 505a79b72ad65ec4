package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hupe1980/slidego/puzzle"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings, numbers
	colorGreen = lipgloss.Color("35")  // Green - success, tiles in place
	colorAmber = lipgloss.Color("220") // Amber - warnings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)

	styleBoard    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	styleTile     = lipgloss.NewStyle().Width(3).Align(lipgloss.Right).Foreground(colorWhite)
	styleTileHome = styleTile.Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// numbers formats counts with thousands separators.
var numbers = message.NewPrinter(language.English)

func count(n int64) string {
	return numbers.Sprintf("%d", n)
}

// renderBoard draws a as a 4x4 grid. Tiles on their goal cell are highlighted.
func renderBoard(a puzzle.Arrangement) string {
	rows := make([]string, 0, puzzle.Width)
	for r := range puzzle.Width {
		var b strings.Builder
		for c := range puzzle.Width {
			i := r*puzzle.Width + c
			switch {
			case a[i] == puzzle.Blank:
				b.WriteString(styleTile.Render("·"))
			case a[i] == puzzle.Solved[i]:
				b.WriteString(styleTileHome.Render(fmt.Sprint(a[i])))
			default:
				b.WriteString(styleTile.Render(fmt.Sprint(a[i])))
			}
		}
		rows = append(rows, b.String())
	}
	return styleBoard.Render(strings.Join(rows, "\n"))
}

// renderPath lays boards out left to right, wrapping after perRow boards.
func renderPath(path []puzzle.Arrangement, perRow int) string {
	var lines []string
	for start := 0; start < len(path); start += perRow {
		end := min(start+perRow, len(path))
		blocks := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				blocks = append(blocks, styleDim.Render(" "+iconArrow+" "))
			}
			blocks = append(blocks, renderBoard(path[i]))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, blocks...))
	}
	return strings.Join(lines, "\n")
}

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

func printNumber(w io.Writer, key string, n int64) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleNumber.Render(count(n)))
}

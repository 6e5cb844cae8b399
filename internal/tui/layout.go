package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/verte-zerg/profileform/internal/form"
)

// alignSummary pads labels to a common display width so values line up.
func alignSummary(lines []form.SummaryLine) []string {
	labelWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line.Label) + 1; w > labelWidth {
			labelWidth = w
		}
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, runewidth.FillRight(line.Label+":", labelWidth)+" "+line.Value)
	}
	return out
}

// FormatSummary renders sum as plain aligned text.
func FormatSummary(sum form.Summary) string {
	return sum.Title + "\n" + strings.Join(alignSummary(sum.Lines), "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

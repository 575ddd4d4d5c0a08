// Package render turns a checked text plus its sorted error spans into
// an inline-highlighted terminal view. It relies exclusively on the
// Start/End offsets in the report and never recomputes them.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ejaan-id/ejaan/internal/model"
)

var kindStyles = map[model.Kind]lipgloss.Style{
	model.KindMisspelling:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Underline(true),
	model.KindSpelling:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Underline(true),
	model.KindInformal:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	model.KindPunctuation:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Reverse(true),
	model.KindCapitalization: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
}

var fallbackStyle = lipgloss.NewStyle().Underline(true)

// Highlight returns text with every positional error span wrapped in
// its kind's style. Errors must be sorted ascending by Start; spans
// that are empty, overlapping an already-rendered span, or out of
// bounds are skipped.
func Highlight(text string, errs []model.DetectedError) string {
	runes := []rune(text)
	var b strings.Builder
	pos := 0
	for _, e := range errs {
		if e.Start >= e.End || e.Start < pos || e.End > len(runes) {
			continue
		}
		b.WriteString(string(runes[pos:e.Start]))
		st, ok := kindStyles[e.Kind]
		if !ok {
			st = fallbackStyle
		}
		b.WriteString(st.Render(string(runes[e.Start:e.End])))
		pos = e.End
	}
	b.WriteString(string(runes[pos:]))
	return b.String()
}

// Legend lists document-level findings (format errors have no span) and
// a per-kind count, one line each, for printing under the highlight.
func Legend(errs []model.DetectedError) string {
	counts := map[model.Kind]int{}
	var lines []string
	for _, e := range errs {
		counts[e.Kind]++
		if e.Kind == model.KindFormat {
			lines = append(lines, "  ! "+e.MatchedText+": "+e.Suggestion)
		}
	}
	for _, k := range []model.Kind{
		model.KindMisspelling, model.KindSpelling, model.KindInformal,
		model.KindPunctuation, model.KindCapitalization, model.KindFormat,
	} {
		if n := counts[k]; n > 0 {
			lines = append(lines, "  "+string(k)+": "+strconv.Itoa(n))
		}
	}
	return strings.Join(lines, "\n")
}


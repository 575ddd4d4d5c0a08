package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ejaan-id/ejaan/internal/model"
)

func TestHighlightNoErrors(t *testing.T) {
	assert.Equal(t, "teks bersih", Highlight("teks bersih", nil))
}

func TestHighlightPreservesTextOrder(t *testing.T) {
	text := "saya sayah pergi"
	errs := []model.DetectedError{
		{Kind: model.KindMisspelling, MatchedText: "sayah", Start: 5, End: 10},
	}
	got := Highlight(text, errs)

	// Styling may add escape sequences but never reorders or drops text.
	assert.Contains(t, got, "sayah")
	assert.True(t, strings.HasPrefix(got, "saya "))
	assert.True(t, strings.HasSuffix(got, "pergi"))
}

func TestHighlightSkipsBadSpans(t *testing.T) {
	text := "pendek"
	errs := []model.DetectedError{
		{Kind: model.KindFormat, Start: 0, End: 0},      // empty span
		{Kind: model.KindSpelling, Start: 3, End: 99},   // out of bounds
		{Kind: model.KindPunctuation, Start: 5, End: 4}, // inverted
	}
	assert.Equal(t, "pendek", Highlight(text, errs))
}

func TestLegendCountsAndFormatLines(t *testing.T) {
	errs := []model.DetectedError{
		{Kind: model.KindInformal, Start: 0, End: 3},
		{Kind: model.KindInformal, Start: 5, End: 8},
		{Kind: model.KindFormat, MatchedText: "Margin Atas", Suggestion: "Atur Margin Atas menjadi 3.0 cm"},
	}
	legend := Legend(errs)
	assert.Contains(t, legend, "informal: 2")
	assert.Contains(t, legend, "Margin Atas")
}

package ejaan

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ejaan-id/ejaan/internal/model"
)

// Text-global punctuation patterns. RE2 has no backreferences, so the
// repeated-punctuation rule enumerates each mark.
var (
	reRepeatPunct = regexp.MustCompile(`\.{2,}|,{2,}|!{2,}|\?{2,}|;{2,}|:{2,}`)
	reDoubleSpace = regexp.MustCompile(`\s{2,}`)
	reSpacePunct  = regexp.MustCompile(`\s+[.,!?;:]`)
)

// detectPunctuation flags repeated identical punctuation, runs of two
// or more spaces, and whitespace directly before a punctuation mark.
func detectPunctuation(text string) []ranked {
	var out []ranked

	for _, m := range reRepeatPunct.FindAllStringIndex(text, -1) {
		matched := text[m[0]:m[1]]
		start, end := runeSpan(text, m[0], m[1])
		out = append(out, ranked{model.DetectedError{
			Kind:        model.KindPunctuation,
			MatchedText: matched,
			Suggestion:  fmt.Sprintf("Gunakan satu tanda \"%c\" saja", matched[0]),
			Replacement: matched[:1],
			Start:       start,
			End:         end,
		}, rankPunctuation})
	}

	for _, m := range reDoubleSpace.FindAllStringIndex(text, -1) {
		start, end := runeSpan(text, m[0], m[1])
		out = append(out, ranked{model.DetectedError{
			Kind:        model.KindPunctuation,
			MatchedText: text[m[0]:m[1]],
			Suggestion:  "Gunakan satu spasi",
			Replacement: " ",
			Start:       start,
			End:         end,
		}, rankPunctuation})
	}

	for _, m := range reSpacePunct.FindAllStringIndex(text, -1) {
		matched := text[m[0]:m[1]]
		start, end := runeSpan(text, m[0], m[1])
		out = append(out, ranked{model.DetectedError{
			Kind:        model.KindPunctuation,
			MatchedText: matched,
			Suggestion:  "Hapus spasi sebelum tanda baca",
			Replacement: matched[len(matched)-1:],
			Start:       start,
			End:         end,
		}, rankPunctuation})
	}

	return out
}

// runeSpan converts a byte-offset match into rune offsets.
func runeSpan(text string, byteStart, byteEnd int) (int, int) {
	start := utf8.RuneCountInString(text[:byteStart])
	return start, start + utf8.RuneCountInString(text[byteStart:byteEnd])
}

// Package ejaan checks Indonesian text for informal vocabulary, likely
// misspellings, punctuation irregularities, capitalization problems and
// document-margin conformance, reporting every finding as a span over
// the original text.
package ejaan

import (
	"sort"
	"unicode/utf8"

	"github.com/ejaan-id/ejaan/internal/lexicon"
	"github.com/ejaan-id/ejaan/internal/model"
	"github.com/ejaan-id/ejaan/internal/token"
	"github.com/ejaan-id/ejaan/internal/util"
)

// Detector precedence for spans flagged more than once. Lower wins.
const (
	rankTypo = iota
	rankInformal
	rankUnknown
	rankPhrase
	rankCapitalization
	rankPunctuation
	rankFormat
)

type ranked struct {
	err  model.DetectedError
	rank int
}

// Check runs every detector over text and returns a position-sorted,
// de-duplicated report. A nil or empty lexicon disables dictionary
// lookups (fail-open after a failed or still-pending load) but leaves
// the table- and pattern-based detectors fully functional.
//
// The call is pure: identical (text, lexicon) always yields an
// identical report.
func Check(text string, lex *lexicon.Lexicon) *model.Result {
	return CheckWithDict(text, lex, nil, nil)
}

// CheckWithMargins is Check plus document-margin conformance against
// the standard 3.0/2.5/2.5/2.5 cm layout.
func CheckWithMargins(text string, lex *lexicon.Lexicon, m *model.Margins) *model.Result {
	return CheckWithDict(text, lex, m, nil)
}

// CheckWithDict is CheckWithMargins with a user dictionary: any error
// whose matched text is listed in dict is dropped from the report.
func CheckWithDict(text string, lex *lexicon.Lexicon, m *model.Margins, dict *Dict) *model.Result {
	tokens := token.Split(text)

	var found []ranked
	found = append(found, detectLexical(tokens, lex)...)
	found = append(found, detectPhrases(text)...)
	found = append(found, detectPunctuation(text)...)
	found = append(found, detectSentenceCapitalization(text)...)
	found = append(found, detectMargins(m)...)

	errs := finalize(found)
	if dict != nil {
		errs = filterByDict(errs, dict)
	}

	res := &model.Result{
		Original:   text,
		CharCount:  utf8.RuneCountInString(text),
		ErrorCount: len(errs),
		Errors:     errs,
	}
	res.Corrected = applyReplacements(text, errs)
	res.EditDistance = util.Levenshtein(res.Original, res.Corrected)
	return res
}

// finalize orders the combined detector output by start offset (ties by
// detector precedence) and drops later duplicates of an exact
// (start, end) span. Format errors are document-level, share (0, 0) by
// contract and are exempt from span dedup.
func finalize(found []ranked) []model.DetectedError {
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].err.Start != found[j].err.Start {
			return found[i].err.Start < found[j].err.Start
		}
		return found[i].rank < found[j].rank
	})

	seen := make(map[[2]int]struct{}, len(found))
	out := make([]model.DetectedError, 0, len(found))
	for _, r := range found {
		if r.err.Kind != model.KindFormat {
			key := [2]int{r.err.Start, r.err.End}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, r.err)
	}
	return out
}

// applyReplacements builds the corrected text by applying every
// machine-applicable replacement right-to-left, so earlier rune
// offsets stay valid.
func applyReplacements(text string, errs []model.DetectedError) string {
	fixes := make([]model.DetectedError, 0, len(errs))
	for _, e := range errs {
		if e.Replacement != "" && e.End > e.Start {
			fixes = append(fixes, e)
		}
	}
	if len(fixes) == 0 {
		return text
	}
	sort.Slice(fixes, func(i, j int) bool { return fixes[i].Start > fixes[j].Start })

	runes := []rune(text)
	applied := len(runes) + 1 // leftmost start already rewritten
	for _, e := range fixes {
		if e.End > len(runes) || e.End > applied {
			continue // overlaps a span already replaced
		}
		runes = append(runes[:e.Start], append([]rune(e.Replacement), runes[e.End:]...)...)
		applied = e.Start
	}
	return string(runes)
}

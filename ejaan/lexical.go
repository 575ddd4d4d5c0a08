package ejaan

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ejaan-id/ejaan/internal/lexicon"
	"github.com/ejaan-id/ejaan/internal/model"
	"github.com/ejaan-id/ejaan/internal/rules"
	"github.com/ejaan-id/ejaan/internal/token"
)

// Minimum rune length for a word to reach the dictionary lookup.
const minLookupLen = 2

// detectLexical runs the per-token passes: exact typo table, informal
// vocabulary, proper-noun capitalization and the lexicon/suffix/fuzzy
// chain. Separator tokens, digit/punctuation tokens and tokens starting
// with an uppercase letter are skipped; the proper-noun rule only fires
// on all-lowercase tokens anyway.
func detectLexical(tokens []token.Token, lex *lexicon.Lexicon) []ranked {
	var out []ranked
	for _, t := range tokens {
		if t.Skippable() || !hasLetter(t.Norm) {
			continue
		}
		if startsUpper(t.Raw) {
			continue
		}

		if fix, ok := rules.Typos[t.Norm]; ok {
			out = append(out, ranked{model.DetectedError{
				Kind:        model.KindMisspelling,
				MatchedText: t.Raw,
				Suggestion:  fmt.Sprintf("Maksud Anda \"%s\"?", fix),
				Replacement: fix,
				Start:       t.Start,
				End:         t.End,
			}, rankTypo})
			continue
		}

		if formal, ok := rules.Informal[t.Norm]; ok {
			out = append(out, ranked{model.DetectedError{
				Kind:        model.KindInformal,
				MatchedText: t.Raw,
				Suggestion:  fmt.Sprintf("Kata tidak baku, gunakan \"%s\"", formal),
				Replacement: formal,
				Start:       t.Start,
				End:         t.End,
			}, rankInformal})
			continue
		}

		if rules.IsProperNoun(t.Norm) {
			if t.Raw == t.Norm { // written without the capital
				fixed := capitalize(t.Norm)
				out = append(out, ranked{model.DetectedError{
					Kind:        model.KindCapitalization,
					MatchedText: t.Raw,
					Suggestion:  fmt.Sprintf("Nama diri, tulis \"%s\"", fixed),
					Replacement: fixed,
					Start:       t.Start,
					End:         t.End,
				}, rankCapitalization})
			}
			continue
		}

		if utf8.RuneCountInString(t.Norm) <= minLookupLen {
			continue
		}
		if lex.Empty() || lex.IsKnownWithSuffix(t.Norm) {
			continue
		}

		if matches := lex.ClosestMatches(t.Norm); len(matches) > 0 {
			sugg := fmt.Sprintf("Maksud Anda \"%s\"?", matches[0])
			if len(matches) > 1 {
				sugg = fmt.Sprintf("Maksud Anda \"%s\" (atau \"%s\")?", matches[0], matches[1])
			}
			out = append(out, ranked{model.DetectedError{
				Kind:        model.KindMisspelling,
				MatchedText: t.Raw,
				Suggestion:  sugg,
				Replacement: matches[0],
				Start:       t.Start,
				End:         t.End,
			}, rankUnknown})
		} else if !containsDigit(t.Norm) {
			out = append(out, ranked{model.DetectedError{
				Kind:        model.KindSpelling,
				MatchedText: t.Raw,
				Suggestion:  "Kata tidak ditemukan dalam kamus",
				Start:       t.Start,
				End:         t.End,
			}, rankUnknown})
		}
	}
	return out
}

// detectPhrases scans the lowercased text once per table entry and
// flags every boundary-delimited occurrence of a mistake phrase.
func detectPhrases(text string) []ranked {
	lower := strings.ToLower(text)
	runes := []rune(lower)
	origRunes := []rune(text)

	var out []ranked
	for _, phrase := range rules.SortedPhrases() {
		fix := rules.Phrases[phrase]
		plen := utf8.RuneCountInString(phrase)
		from := 0
		for {
			idx := indexRunes(runes, phrase, from)
			if idx < 0 {
				break
			}
			from = idx + plen
			if !atBoundary(runes, idx, idx+plen) {
				continue
			}
			out = append(out, ranked{model.DetectedError{
				Kind:        model.KindMisspelling,
				MatchedText: string(origRunes[idx : idx+plen]),
				Suggestion:  fmt.Sprintf("Penulisan yang benar: \"%s\"", fix),
				Replacement: fix,
				Start:       idx,
				End:         idx + plen,
			}, rankPhrase})
		}
	}
	return out
}

// indexRunes returns the rune offset of the first occurrence of needle
// in haystack at or after from, or -1.
func indexRunes(haystack []rune, needle string, from int) int {
	n := []rune(needle)
	if len(n) == 0 {
		return -1
	}
	for i := from; i+len(n) <= len(haystack); i++ {
		match := true
		for j := range n {
			if haystack[i+j] != n[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// atBoundary reports that the [start, end) span is not embedded in a
// longer letter run.
func atBoundary(runes []rune, start, end int) bool {
	if start > 0 && unicode.IsLetter(runes[start-1]) {
		return false
	}
	if end < len(runes) && unicode.IsLetter(runes[end]) {
		return false
	}
	return true
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

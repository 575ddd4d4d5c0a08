package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ejaan-id/ejaan/internal/util"
)

// Fuzzy-match cost controls. The length prefilter and the
// character-overlap gate bound the per-word scan; they trade recall
// for latency on document-sized inputs.
const (
	maxLengthDelta = 2
	shortWordLen   = 4   // rune length at or below which only distance 1 is allowed
	minOverlap     = 0.5 // fraction of the word's distinct runes present in a candidate
)

// ClosestMatches returns up to two lexicon entries within the allowed
// edit distance of word, ordered by distance then lexicographically.
// Distance 0 never appears: a known word is the caller's precondition
// to not be here. An empty lexicon yields nil.
func (l *Lexicon) ClosestMatches(word string) []string {
	if l.Empty() {
		return nil
	}

	w := strings.ToLower(word)
	wlen := utf8.RuneCountInString(w)
	maxDist := 2
	if wlen <= shortWordLen {
		maxDist = 1
	}
	distinct := distinctRunes(w)

	type candidate struct {
		word string
		dist int
	}
	var found []candidate
	for _, entry := range l.sorted {
		elen := utf8.RuneCountInString(entry)
		if elen-wlen > maxLengthDelta || wlen-elen > maxLengthDelta {
			continue
		}
		if overlapRatio(distinct, entry) < minOverlap {
			continue
		}
		d := util.Levenshtein(w, entry)
		if d == 0 || d > maxDist {
			continue
		}
		found = append(found, candidate{entry, d})
	}
	if len(found) == 0 {
		return nil
	}

	// l.sorted is lexicographic, so a stable sort by distance keeps
	// lexicographic order within each distance bucket.
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })
	if len(found) > 2 {
		found = found[:2]
	}

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.word
	}
	return out
}

func distinctRunes(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// overlapRatio is the fraction of runes in set that occur in candidate.
func overlapRatio(set map[rune]struct{}, candidate string) float64 {
	if len(set) == 0 {
		return 0
	}
	hits := 0
	for r := range set {
		if strings.ContainsRune(candidate, r) {
			hits++
		}
	}
	return float64(hits) / float64(len(set))
}

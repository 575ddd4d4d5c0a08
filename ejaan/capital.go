package ejaan

import (
	"strings"
	"unicode"

	"github.com/ejaan-id/ejaan/internal/model"
)

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// detectSentenceCapitalization splits the text on sentence terminators
// and flags every sentence whose first alphabetic rune is lowercase.
// The error spans exactly that rune.
func detectSentenceCapitalization(text string) []ranked {
	runes := []rune(text)
	var out []ranked
	i := 0
	for i < len(runes) {
		for i < len(runes) && (isTerminator(runes[i]) || unicode.IsSpace(runes[i])) {
			i++
		}
		if i >= len(runes) {
			break
		}
		start := i
		for i < len(runes) && !isTerminator(runes[i]) {
			i++
		}
		for j := start; j < i; j++ {
			r := runes[j]
			if !unicode.IsLetter(r) {
				continue
			}
			if unicode.IsLower(r) {
				out = append(out, ranked{model.DetectedError{
					Kind:        model.KindCapitalization,
					MatchedText: string(r),
					Suggestion:  "Awal kalimat menggunakan huruf kapital",
					Replacement: strings.ToUpper(string(r)),
					Start:       j,
					End:         j + 1,
				}, rankCapitalization})
			}
			break
		}
	}
	return out
}

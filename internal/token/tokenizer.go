// Package token splits raw text into word, whitespace and punctuation
// tokens while tracking absolute rune offsets. Every detector and every
// consumer of the error report shares this coordinate system.
package token

import (
	"strings"
	"unicode"
)

// Kind discriminates token classes.
type Kind int

const (
	Word  Kind = iota
	Space      // a run of one or more whitespace runes
	Punct      // a single separator punctuation rune
)

// Token is a contiguous substring of the input.
// Start/End are half-open rune offsets into the original text.
type Token struct {
	Kind  Kind
	Raw   string // exact substring
	Norm  string // lowercased, trimmed
	Start int
	End   int
}

// Skippable reports whether the token only advances position and is
// never checked on its own.
func (t Token) Skippable() bool {
	return t.Kind != Word || t.Norm == ""
}

// IsSeparator reports whether r terminates a word.
func IsSeparator(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':':
		return true
	}
	return false
}

// Split scans text into tokens. Words alternate with separators, where
// a separator is a whitespace run or a single punctuation rune from
// the sentence set. The concatenation of all Raw fields reproduces the
// input exactly.
func Split(text string) []Token {
	runes := []rune(text)
	var out []Token
	i := 0
	for i < len(runes) {
		start := i
		switch r := runes[i]; {
		case unicode.IsSpace(r):
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			out = append(out, tok(Space, runes, start, i))
		case IsSeparator(r):
			i++
			out = append(out, tok(Punct, runes, start, i))
		default:
			for i < len(runes) && !unicode.IsSpace(runes[i]) && !IsSeparator(runes[i]) {
				i++
			}
			out = append(out, tok(Word, runes, start, i))
		}
	}
	return out
}

func tok(k Kind, runes []rune, start, end int) Token {
	raw := string(runes[start:end])
	return Token{
		Kind:  k,
		Raw:   raw,
		Norm:  strings.ToLower(strings.TrimSpace(raw)),
		Start: start,
		End:   end,
	}
}

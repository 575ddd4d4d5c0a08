package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitKindsAndOffsets(t *testing.T) {
	tokens := Split("Halo,  dunia!")

	require.Len(t, tokens, 5)

	assert.Equal(t, Token{Kind: Word, Raw: "Halo", Norm: "halo", Start: 0, End: 4}, tokens[0])
	assert.Equal(t, Token{Kind: Punct, Raw: ",", Norm: ",", Start: 4, End: 5}, tokens[1])
	assert.Equal(t, Space, tokens[2].Kind)
	assert.Equal(t, "  ", tokens[2].Raw)
	assert.Equal(t, Token{Kind: Word, Raw: "dunia", Norm: "dunia", Start: 7, End: 12}, tokens[3])
	assert.Equal(t, Token{Kind: Punct, Raw: "!", Norm: "!", Start: 12, End: 13}, tokens[4])
}

func TestSplitRoundTrips(t *testing.T) {
	for _, text := range []string{
		"",
		"satu",
		"saya pergi, kamu tidak.",
		"  leading and trailing  ",
		"tanya? jawab! titik dua: selesai;",
	} {
		var b strings.Builder
		for _, tok := range Split(text) {
			b.WriteString(tok.Raw)
		}
		assert.Equal(t, text, b.String(), "concatenated tokens must reproduce the input")
	}
}

func TestSplitRuneOffsets(t *testing.T) {
	// Offsets count runes, not bytes.
	tokens := Split("café enak")
	require.Len(t, tokens, 3)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 4, tokens[0].End)
	assert.Equal(t, 5, tokens[2].Start)
	assert.Equal(t, 9, tokens[2].End)
}

func TestSkippable(t *testing.T) {
	tokens := Split("kata .")
	require.Len(t, tokens, 3)
	assert.False(t, tokens[0].Skippable())
	assert.True(t, tokens[1].Skippable(), "whitespace run")
	assert.True(t, tokens[2].Skippable(), "punctuation")
}

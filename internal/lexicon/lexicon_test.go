package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineRules(t *testing.T) {
	in := strings.Join([]string{
		"Saya",
		"(anotasi kamus)",
		"kata-kata", // hyphenated entries are dropped
		"a",         // single rune
		"",
		"  Pergi  ",
		"saya", // duplicate after lowercasing
	}, "\n")

	l, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, l.Len())
	assert.True(t, l.IsKnown("saya"))
	assert.True(t, l.IsKnown("PERGI"), "membership is case-insensitive")
	assert.False(t, l.IsKnown("kata-kata"))
	assert.False(t, l.IsKnown("a"))
}

func TestNilAndEmptyLexicon(t *testing.T) {
	var nilLex *Lexicon
	assert.True(t, nilLex.Empty())
	assert.False(t, nilLex.IsKnown("saya"))
	assert.False(t, nilLex.IsKnownWithSuffix("bukunya"))
	assert.Nil(t, nilLex.ClosestMatches("saya"))

	empty := New(nil)
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.ClosestMatches("saya"))
}

func TestIsKnownWithSuffix(t *testing.T) {
	l := New([]string{"buku", "makan", "rumah"})

	assert.True(t, l.IsKnownWithSuffix("buku"), "direct membership")
	assert.True(t, l.IsKnownWithSuffix("bukunya"))
	assert.True(t, l.IsKnownWithSuffix("bukuku"))
	assert.True(t, l.IsKnownWithSuffix("makanan"))
	assert.True(t, l.IsKnownWithSuffix("rumahmu"))

	assert.False(t, l.IsKnownWithSuffix("gedungnya"), "unknown root")
	assert.False(t, l.IsKnownWithSuffix("bukunyaan"), "only one suffix is stripped")
}

func TestClosestMatchesOrderingAndThreshold(t *testing.T) {
	l := New([]string{"saya", "sayu", "sana", "langit"})

	// Length 4 allows distance 1 only; ties break lexicographically.
	got := l.ClosestMatches("sayz")
	assert.Equal(t, []string{"saya", "sayu"}, got)

	// Deterministic across calls.
	assert.Equal(t, got, l.ClosestMatches("sayz"))

	// Distance 2 on a short word is out of reach.
	assert.Nil(t, l.ClosestMatches("szzz"))
}

func TestClosestMatchesLongWordAllowsDistanceTwo(t *testing.T) {
	l := New([]string{"sekolah"})
	assert.Equal(t, []string{"sekolah"}, l.ClosestMatches("sekilax"))
}

func TestClosestMatchesNeverSuggestsExact(t *testing.T) {
	l := New([]string{"saya", "sayu"})
	got := l.ClosestMatches("saya")
	assert.NotContains(t, got, "saya", "distance 0 must never be suggested")
}

func TestClosestMatchesLengthPrefilter(t *testing.T) {
	l := New([]string{"keberlangsungan"})
	assert.Nil(t, l.ClosestMatches("kebe"), "length gap beyond 2 is skipped")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.txt")
	assert.Error(t, err, "caller decides to fail open, the loader reports honestly")
}

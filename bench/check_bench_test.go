package bench

import (
	"strings"
	"testing"

	"github.com/ejaan-id/ejaan/ejaan"
	"github.com/ejaan-id/ejaan/internal/lexicon"
	"github.com/ejaan-id/ejaan/internal/util"
)

var (
	lex = lexicon.New([]string{
		"saya", "pergi", "sekolah", "rumah", "makan", "minum", "buku",
		"kata", "kalimat", "dokumen", "teks", "periksa", "benar", "salah",
	})
	// ~500-word document with a sprinkle of every error type.
	doc = strings.Repeat("saya pergi ke sekolah. dia gak makan  disana. bukunya salahh.. ", 50)
)

func BenchmarkCheck(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ejaan.Check(doc, lex)
	}
}

func BenchmarkCheckNoLexicon(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ejaan.Check(doc, nil)
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = util.Levenshtein("pemeriksaan", "pemerikasan")
	}
}

func BenchmarkClosestMatches(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = lex.ClosestMatches("sekolh")
	}
}

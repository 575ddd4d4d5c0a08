// Package rules holds the static Indonesian correction tables: informal
// ("tidak baku") vocabulary, frequent misspellings, fused/mistaken
// phrases, proper nouns and the recognized derivational suffixes.
// All tables are immutable after package init; keys are lowercase.
package rules

import "sort"

// Informal maps colloquial tokens to their formal ("baku") equivalents.
var Informal = map[string]string{
	"gak":     "tidak",
	"ga":      "tidak",
	"nggak":   "tidak",
	"ngga":    "tidak",
	"engga":   "tidak",
	"gitu":    "begitu",
	"gini":    "begini",
	"udah":    "sudah",
	"aja":     "saja",
	"kalo":    "kalau",
	"kayak":   "seperti",
	"emang":   "memang",
	"gimana":  "bagaimana",
	"kenapa":  "mengapa",
	"banget":  "sangat",
	"tau":     "tahu",
	"liat":    "lihat",
	"cuma":    "hanya",
	"cuman":   "hanya",
	"sampe":   "sampai",
	"males":   "malas",
	"bener":   "benar",
	"pengen":  "ingin",
	"dapet":   "dapat",
	"bikin":   "membuat",
	"ketemu":  "bertemu",
	"ngomong": "berbicara",
	"dikit":   "sedikit",
	"duit":    "uang",
	"abis":    "habis",
	"trus":    "lalu",
	"entar":   "nanti",
	"ntar":    "nanti",
}

// Typos maps frequent misspellings to the standard spelling.
var Typos = map[string]string{
	"sayah":        "saya",
	"silahkan":     "silakan",
	"apotik":       "apotek",
	"praktek":      "praktik",
	"analisa":      "analisis",
	"resiko":       "risiko",
	"jaman":        "zaman",
	"ijin":         "izin",
	"nafas":        "napas",
	"hakekat":      "hakikat",
	"nasehat":      "nasihat",
	"himbau":       "imbau",
	"aktifitas":    "aktivitas",
	"efektifitas":  "efektivitas",
	"kreatifitas":  "kreativitas",
	"sistim":       "sistem",
	"metoda":       "metode",
	"obyek":        "objek",
	"subyek":       "subjek",
	"kwalitas":     "kualitas",
	"kwitansi":     "kuitansi",
	"sekedar":      "sekadar",
	"karir":        "karier",
	"atlit":        "atlet",
	"cabe":         "cabai",
	"nopember":     "november",
	"pebruari":     "februari",
	"milyar":       "miliar",
	"trilyun":      "triliun",
	"propinsi":     "provinsi",
	"fikir":        "pikir",
	"faham":        "paham",
	"jadual":       "jadwal",
	"hembus":       "embus",
	"hutang":       "utang",
	"isteri":       "istri",
	"photo":        "foto",
	"standarisasi": "standardisasi",
}

// Phrases maps fused or wrongly split phrases to their corrected form.
// Matching is whole-text with word boundaries, not per token.
var Phrases = map[string]string{
	"kesana":        "ke sana",
	"kesini":        "ke sini",
	"kemana":        "ke mana",
	"dimana":        "di mana",
	"disana":        "di sana",
	"disini":        "di sini",
	"dirumah":       "di rumah",
	"terimakasih":   "terima kasih",
	"kerjasama":     "kerja sama",
	"tanggungjawab": "tanggung jawab",
	"orangtua":      "orang tua",
	"di karenakan":  "dikarenakan",
	"di lakukan":    "dilakukan",
	"di berikan":    "diberikan",
	"ber beda":      "berbeda",
}

// properNouns lists tokens that must start with a capital letter.
// Ambiguous words that double as common nouns (medan, minggu) are
// deliberately absent.
var properNouns = map[string]struct{}{}

// Suffixes are clitic/derivational endings recognized by the
// suffix-aware dictionary lookup. Longest first so a single pass can
// stop at the first eligible match.
var Suffixes = []string{
	"nya", "lah", "kah", "tah", "kan",
	"ku", "mu", "an", "in", "i",
}

var properNounList = []string{
	"indonesia", "jakarta", "bandung", "surabaya", "yogyakarta",
	"semarang", "makassar", "palembang", "denpasar",
	"jawa", "sumatera", "kalimantan", "sulawesi", "papua", "bali",
	"senin", "selasa", "rabu", "kamis", "jumat", "sabtu",
	"januari", "februari", "maret", "april", "mei", "juni", "juli",
	"agustus", "september", "oktober", "november", "desember",
}

// phraseKeys is the deterministic scan order for Phrases.
var phraseKeys []string

func init() {
	for _, w := range properNounList {
		properNouns[w] = struct{}{}
	}
	phraseKeys = make([]string, 0, len(Phrases))
	for k := range Phrases {
		phraseKeys = append(phraseKeys, k)
	}
	sort.Strings(phraseKeys)
}

// IsProperNoun reports whether the lowercased token is a known proper noun.
func IsProperNoun(word string) bool {
	_, ok := properNouns[word]
	return ok
}

// SortedPhrases returns the phrase-table keys in lexicographic order.
// Callers must not mutate the returned slice.
func SortedPhrases() []string { return phraseKeys }

package model

// Kind classifies a detected error.
type Kind string

const (
	KindGrammar        Kind = "grammar" // reserved, no detector emits it yet
	KindSpelling       Kind = "spelling"
	KindMisspelling    Kind = "misspelling"
	KindInformal       Kind = "informal"
	KindPunctuation    Kind = "punctuation"
	KindCapitalization Kind = "capitalization"
	KindFormat         Kind = "format"
)

// DetectedError is a single flagged span.
//
// Start/End are half-open rune offsets into the original text. Format
// errors are document-level and always carry (0, 0). Replacement is the
// machine-applicable fix; it is empty for advisory errors (an unknown
// word without a confident candidate, a document-format deviation).
type DetectedError struct {
	Kind        Kind   `json:"kind"`
	MatchedText string `json:"matchedText"`
	Suggestion  string `json:"suggestion"`
	Replacement string `json:"replacement,omitempty"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
}

// Margins are page margins in centimeters, as estimated by the document
// ingestion side. A nil *Margins means "no margin check".
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Result is JSON-serialisable as-is.
type Result struct {
	Original     string          `json:"original"`     // input text
	Corrected    string          `json:"corrected"`    // text with every Replacement applied
	EditDistance int             `json:"editDistance"` // Levenshtein(original, corrected)
	CharCount    int             `json:"charCount"`    // UTF-8 rune length
	ErrorCount   int             `json:"errorCount"`   // len(Errors)
	Errors       []DetectedError `json:"errors"`       // sorted ascending by Start
}

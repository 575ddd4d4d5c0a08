// Package lexicon loads and holds the canonical Indonesian word list
// ("kamus baku") as an immutable membership set. Loading fails open:
// a missing or malformed resource yields an empty lexicon, which
// downstream turns into "dictionary lookups disabled", never "every
// word unknown".
package lexicon

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"

	xnet "github.com/ejaan-id/ejaan/internal/net"
	"github.com/ejaan-id/ejaan/internal/rules"
)

// Lexicon is an immutable set of standard word forms. The zero value
// and nil are both valid empty lexicons.
type Lexicon struct {
	words  map[string]struct{}
	sorted []string // deterministic iteration order for the fuzzy matcher
}

// New builds a Lexicon from already-normalized words. Input that fails
// the line rules (annotations, hyphens, single runes) is discarded the
// same way Parse discards it.
func New(words []string) *Lexicon {
	l := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = normalizeLine(w); w != "" {
			l.words[w] = struct{}{}
		}
	}
	l.freeze()
	return l
}

// Parse reads a newline-delimited word list. Lines are lowercased and
// trimmed; empty lines, annotation lines starting with "(", hyphenated
// entries and entries of a single rune are skipped.
func Parse(r io.Reader) (*Lexicon, error) {
	l := &Lexicon{words: make(map[string]struct{}, 1<<15)}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if w := normalizeLine(sc.Text()); w != "" {
			l.words[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: parse: %w", err)
	}
	l.freeze()
	return l, nil
}

// LoadFile memory-maps a local word-list file and parses it.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("lexicon: stat %s: %w", path, err)
	}
	if st.Size() == 0 {
		return New(nil), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("lexicon: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return Parse(bytes.NewReader(m))
}

// Fetch downloads the word list from url and parses it.
func Fetch(ctx context.Context, url string) (*Lexicon, error) {
	body, err := xnet.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("lexicon: fetch: %w", err)
	}
	return Parse(bytes.NewReader(body))
}

// Load resolves source as a URL when it has an http(s) scheme and as a
// local file path otherwise.
func Load(ctx context.Context, source string) (*Lexicon, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return Fetch(ctx, source)
	}
	return LoadFile(source)
}

func normalizeLine(line string) string {
	w := strings.ToLower(strings.TrimSpace(line))
	switch {
	case w == "",
		strings.HasPrefix(w, "("),
		strings.ContainsRune(w, '-'),
		utf8.RuneCountInString(w) <= 1:
		return ""
	}
	return w
}

func (l *Lexicon) freeze() {
	l.sorted = make([]string, 0, len(l.words))
	for w := range l.words {
		l.sorted = append(l.sorted, w)
	}
	sort.Strings(l.sorted)
}

// Len returns the number of entries. Nil-safe.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Empty reports whether the lexicon has no entries (unloaded or failed
// load). Nil-safe.
func (l *Lexicon) Empty() bool { return l.Len() == 0 }

// IsKnown reports exact case-insensitive membership.
func (l *Lexicon) IsKnown(word string) bool {
	if l.Empty() {
		return false
	}
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// IsKnownWithSuffix reports membership of the word itself or of the
// root obtained by stripping one recognized suffix. Only a single
// suffix is stripped; the word must be longer than the suffix plus two
// runes so the remaining root is substantial.
func (l *Lexicon) IsKnownWithSuffix(word string) bool {
	if l.IsKnown(word) {
		return true
	}
	w := strings.ToLower(word)
	wlen := utf8.RuneCountInString(w)
	for _, sfx := range rules.Suffixes {
		if wlen <= len(sfx)+2 || !strings.HasSuffix(w, sfx) {
			continue
		}
		if l.IsKnown(w[:len(w)-len(sfx)]) {
			return true
		}
	}
	return false
}

// Command ejaan-cli pipes stdin (or a file) through the checker and
// prints the pretty-printed JSON result, or an inline highlighted view.
//
// Usage:
//
//	echo "saya gak pergi kesana." | ejaan-cli -lexicon kbbi.txt
//	ejaan-cli -f naskah.txt -lexicon https://example.org/kbbi.txt
//	ejaan-cli -f naskah.txt -lexicon kbbi.txt -margins 2.0,2.5,2.5,2.5 -highlight
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ejaan-id/ejaan/ejaan"
	"github.com/ejaan-id/ejaan/internal/lexicon"
	"github.com/ejaan-id/ejaan/internal/model"
	"github.com/ejaan-id/ejaan/internal/render"
	"github.com/ejaan-id/ejaan/internal/util"
)

func main() {
	file      := flag.String("f", "", "file to read instead of stdin")
	dictPath  := flag.String("d", "", "user dictionary JSON file (optional)")
	lexSrc    := flag.String("lexicon", "", "word-list file path or URL (optional, spell checks off without it)")
	marginArg := flag.String("margins", "", "page margins in cm: top,bottom,left,right")
	highlight := flag.Bool("highlight", false, "print the text with colored error spans instead of JSON")
	timeout   := flag.Duration("t", 30*time.Second, "lexicon fetch timeout")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		must(err)
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	must(err)
	text := string(data)

	// Lexicon is fail-open: a load failure only disables dictionary
	// lookups, the remaining detectors still run.
	var lex *lexicon.Lexicon
	if *lexSrc != "" {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		lex, err = lexicon.Load(ctx, *lexSrc)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ejaan-cli: lexicon unavailable:", err)
			lex = nil
		}
	}

	var d *ejaan.Dict
	if *dictPath != "" {
		d, err = ejaan.LoadDict(*dictPath)
		must(err)
	}

	var margins *model.Margins
	if *marginArg != "" {
		margins, err = parseMargins(*marginArg)
		must(err)
	}

	res := ejaan.CheckWithDict(text, lex, margins, d)

	if *highlight {
		fmt.Println(render.Highlight(text, res.Errors))
		if legend := render.Legend(res.Errors); legend != "" {
			fmt.Println(legend)
		}
		return
	}

	out, _ := util.MarshalNoEscape(res, true)
	fmt.Println(string(out))
}

// parseMargins parses "top,bottom,left,right" in centimeters.
func parseMargins(s string) (*model.Margins, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("margins: want 4 comma-separated values, got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("margins: %q: %w", p, err)
		}
		vals[i] = v
	}
	return &model.Margins{Top: vals[0], Bottom: vals[1], Left: vals[2], Right: vals[3]}, nil
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "ejaan-cli:", err)
		os.Exit(1)
	}
}

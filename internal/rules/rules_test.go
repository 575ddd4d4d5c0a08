package rules

import (
	"sort"
	"strings"
	"testing"
)

func TestTablesAreNormalized(t *testing.T) {
	for k, v := range Informal {
		if k != strings.ToLower(k) {
			t.Errorf("informal key %q is not lowercase", k)
		}
		if k == v {
			t.Errorf("informal entry %q maps to itself", k)
		}
	}
	for k, v := range Typos {
		if k != strings.ToLower(k) {
			t.Errorf("typo key %q is not lowercase", k)
		}
		if k == v {
			t.Errorf("typo entry %q maps to itself", k)
		}
	}
	for k := range Phrases {
		if k != strings.ToLower(k) {
			t.Errorf("phrase key %q is not lowercase", k)
		}
	}
}

func TestSortedPhrasesCoversTable(t *testing.T) {
	keys := SortedPhrases()
	if len(keys) != len(Phrases) {
		t.Fatalf("SortedPhrases() has %d keys, table has %d", len(keys), len(Phrases))
	}
	if !sort.StringsAreSorted(keys) {
		t.Error("SortedPhrases() is not sorted")
	}
	for _, k := range keys {
		if _, ok := Phrases[k]; !ok {
			t.Errorf("SortedPhrases() key %q missing from table", k)
		}
	}
}

func TestProperNouns(t *testing.T) {
	for _, w := range []string{"indonesia", "jakarta", "senin", "januari"} {
		if !IsProperNoun(w) {
			t.Errorf("IsProperNoun(%q) = false, want true", w)
		}
	}
	if IsProperNoun("rumah") {
		t.Error(`IsProperNoun("rumah") = true, want false`)
	}
}

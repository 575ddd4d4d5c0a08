package ejaan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ejaan-id/ejaan/internal/model"
)

// Dict is a user dictionary for protecting specific terms from being
// flagged (names, product terms, field jargon).
type Dict struct {
	Words []string `json:"words"`
}

// NewDict creates a Dict from the given words.
func NewDict(words ...string) *Dict {
	return &Dict{Words: words}
}

// LoadDict reads a JSON file of the form {"words": ["Soekarno", ...]}.
func LoadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ejaan: read dict: %w", err)
	}
	var d Dict
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("ejaan: parse dict: %w", err)
	}
	return &d, nil
}

// filterByDict drops every error whose matched text equals a dict word,
// case-insensitively.
func filterByDict(errs []model.DetectedError, dict *Dict) []model.DetectedError {
	protected := make(map[string]struct{}, len(dict.Words))
	for _, w := range dict.Words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			protected[w] = struct{}{}
		}
	}
	if len(protected) == 0 {
		return errs
	}

	kept := errs[:0]
	for _, e := range errs {
		if _, ok := protected[strings.ToLower(e.MatchedText)]; ok {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

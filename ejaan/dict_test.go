package ejaan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejaan-id/ejaan/internal/model"
)

func TestCheckWithDictProtectsWords(t *testing.T) {
	res := CheckWithDict("Dia gak datang.", nil, nil, NewDict("gak"))

	assert.Nil(t, findByText(res, "gak"), "protected word must not be flagged")
	assert.Equal(t, len(res.Errors), res.ErrorCount)
}

func TestCheckWithDictIsCaseInsensitive(t *testing.T) {
	res := CheckWithDict("Dia gak datang.", nil, nil, NewDict("  GAK "))
	assert.Nil(t, findByText(res, "gak"))
}

func TestCheckWithNilDict(t *testing.T) {
	withNil := CheckWithDict("Dia gak datang.", nil, nil, nil)
	plain := Check("Dia gak datang.", nil)
	assert.Equal(t, plain, withNil)
}

func TestLoadDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"words": ["kafka", "GoLand"]}`), 0o644))

	d, err := LoadDict(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"kafka", "GoLand"}, d.Words)

	_, err = LoadDict(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFilterByDictKeepsOtherSpans(t *testing.T) {
	errs := []model.DetectedError{
		{Kind: model.KindInformal, MatchedText: "gak", Start: 4, End: 7},
		{Kind: model.KindPunctuation, MatchedText: "  ", Start: 10, End: 12},
	}
	got := filterByDict(errs, NewDict("gak"))
	require.Len(t, got, 1)
	assert.Equal(t, model.KindPunctuation, got[0].Kind)
}

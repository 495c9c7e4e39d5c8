package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocuments() []*Document {
	return []*Document{
		{ID: "1", Name: "獺祭 純米大吟醸", NameEN: "Dassai Junmai Daiginjo", Prefecture: "山口県", Price: 8000},
		{ID: "2", Name: "久保田 千寿", NameEN: "Kubota Senju", Prefecture: "新潟県", Price: 1200},
		{ID: "3", Name: "八海山 純米吟醸", NameEN: "Hakkaisan Junmai Ginjo", Prefecture: "新潟県", Price: 2500},
		{ID: "4", Name: "白鶴 特別純米", NameEN: "Hakutsuru Tokubetsu Junmai", Prefecture: "兵庫県", Price: 1800, Tags: []string{"米の旨味"}},
		{ID: "6", Name: "日本盛 本醸造", NameEN: "Nihonsakari Honjozo", Prefecture: "兵庫県", Price: 800},
	}
}

// setupTestIndex creates an in-memory index loaded with testDocuments.
func setupTestIndex(t *testing.T) *Index {
	t.Helper()

	index, err := NewIndex(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	require.NoError(t, index.Rebuild(testDocuments()))
	return index
}

func hitIDs(result *Result) []string {
	ids := make([]string, 0, len(result.Hits))
	for _, h := range result.Hits {
		ids = append(ids, h.ID)
	}
	return ids
}

func TestNewIndex_Empty(t *testing.T) {
	index, err := NewIndex(Options{})
	require.NoError(t, err)
	defer func() { _ = index.Close() }()

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestIndex_RebuildFromEmpty(t *testing.T) {
	index := setupTestIndex(t)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), count)
}

func TestSearch_RomanisedName(t *testing.T) {
	index := setupTestIndex(t)

	result, err := index.Search(context.Background(), Params{Query: "kubota", Limit: 10})
	require.NoError(t, err)

	require.Len(t, result.Hits, 1)
	assert.Equal(t, "2", result.Hits[0].ID)
	assert.Equal(t, "久保田 千寿", result.Hits[0].Name)
	assert.Equal(t, "Kubota Senju", result.Hits[0].NameEN)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	index := setupTestIndex(t)

	result, err := index.Search(context.Background(), Params{Query: "HAKKAISAN", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, hitIDs(result))
}

func TestSearch_SharedTerm(t *testing.T) {
	index := setupTestIndex(t)

	result, err := index.Search(context.Background(), Params{Query: "junmai", Limit: 10})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "3", "4"}, hitIDs(result))
	assert.Equal(t, uint64(3), result.Total)
}

func TestSearch_FuzzyMatch(t *testing.T) {
	index := setupTestIndex(t)

	result, err := index.Search(context.Background(), Params{Query: "kubta", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, hitIDs(result))
}

func TestSearch_PrefectureFilter(t *testing.T) {
	index := setupTestIndex(t)

	result, err := index.Search(context.Background(), Params{Prefecture: "新潟県", Limit: 10})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2", "3"}, hitIDs(result))
}

func TestSearch_MaxPrice(t *testing.T) {
	index := setupTestIndex(t)

	result, err := index.Search(context.Background(), Params{MaxPrice: 1500, Limit: 10})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2", "6"}, hitIDs(result))
}

func TestSearch_Limit(t *testing.T) {
	index := setupTestIndex(t)

	result, err := index.Search(context.Background(), Params{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Hits, 2)
	assert.Equal(t, uint64(5), result.Total)
}

func TestSearch_NoMatch(t *testing.T) {
	index := setupTestIndex(t)

	result, err := index.Search(context.Background(), Params{Query: "zzzzzz", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
}

func TestRebuild_ReplacesContents(t *testing.T) {
	index := setupTestIndex(t)

	err := index.Rebuild([]*Document{
		{ID: "9", Name: "新政 No.6", NameEN: "Aramasa No6", Prefecture: "秋田県", Price: 2800},
	})
	require.NoError(t, err)

	count, err := index.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	result, err := index.Search(context.Background(), Params{Query: "kubota", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Hits)

	result, err = index.Search(context.Background(), Params{Query: "aramasa", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, hitIDs(result))
}

func TestBuildSearchQuery_Empty(t *testing.T) {
	q := buildSearchQuery(Params{})
	assert.NotNil(t, q)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/iroha-labs/palette-server/internal/errors"
	"github.com/iroha-labs/palette-server/internal/sake"
)

func setupSakeService(t *testing.T) *SakeService {
	t.Helper()

	catalog, err := sake.Open("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })

	return NewSakeService(catalog, nil)
}

func sakeIDs(sakes []sake.Sake) []string {
	out := make([]string, len(sakes))
	for i, s := range sakes {
		out[i] = s.ID
	}
	return out
}

func TestSakeService_Recommend(t *testing.T) {
	svc := setupSakeService(t)

	recs := svc.Recommend(context.Background(), sake.Preferences{Price: sake.Price1000To3000})
	assert.Equal(t, []string{"2", "3", "4"}, sakeIDs(recs))

	recs = svc.Recommend(context.Background(), sake.Preferences{Flavor: "存在しない"})
	assert.Empty(t, recs)
}

func TestSakeService_All(t *testing.T) {
	svc := setupSakeService(t)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, sakeIDs(svc.All(context.Background())))
}

func TestSakeService_Get(t *testing.T) {
	svc := setupSakeService(t)

	s, err := svc.Get(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, "月桂冠 大吟醸", s.Name)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSakeService_Search(t *testing.T) {
	svc := setupSakeService(t)

	result, err := svc.Search(context.Background(), SearchInput{Query: "  Kubota "})
	require.NoError(t, err)
	assert.Equal(t, "Kubota", result.Query)
	assert.Equal(t, uint64(1), result.Total)
	assert.Equal(t, []string{"2"}, sakeIDs(result.Sakes))
}

func TestSakeService_Search_Limit(t *testing.T) {
	svc := setupSakeService(t)

	result, err := svc.Search(context.Background(), SearchInput{Query: "junmai", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Sakes, 2)
	assert.Equal(t, uint64(3), result.Total)

	result, err = svc.Search(context.Background(), SearchInput{Query: "junmai", Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, result.Sakes, 3)
}

func TestSakeService_Search_EmptyQuery(t *testing.T) {
	svc := setupSakeService(t)

	_, err := svc.Search(context.Background(), SearchInput{Query: "   ", Limit: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestSakeService_Search_Filters(t *testing.T) {
	svc := setupSakeService(t)

	result, err := svc.Search(context.Background(), SearchInput{Query: "junmai", Prefecture: "新潟県"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, sakeIDs(result.Sakes))

	_, err = svc.Search(context.Background(), SearchInput{Query: "junmai", MaxPrice: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestSakeService_Counts(t *testing.T) {
	svc := setupSakeService(t)

	assert.Equal(t, 6, svc.Count())
	indexed, err := svc.IndexedCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(6), indexed)
}

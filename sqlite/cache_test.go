package sqlite_test

import (
	"context"
	"testing"

	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache(t *testing.T) {
	t.Parallel()

	records := []editais.Record{
		{
			Title:     "Edital de escultura",
			Link:      "https://example.org/edital",
			Source:    "example.org",
			Date:      "15/03/2024",
			Kind:      editais.KindWeb,
			Relevance: 73,
		},
	}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, cache.Put(ctx, "https://example.org/", "escultura", records))

		got, ok, err := cache.Get(ctx, "https://example.org/", "escultura")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, records, got)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(mustOpenDB(t))

		_, ok, err := cache.Get(context.Background(), "https://example.org/", "escultura")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("terms are distinct keys", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, cache.Put(ctx, "https://example.org/", "escultura", records))

		_, ok, err := cache.Get(ctx, "https://example.org/", "pintura")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("term matching ignores accents and case", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, cache.Put(ctx, "https://example.org/", "Exposição", records))

		_, ok, err := cache.Get(ctx, "https://example.org/", "exposicao")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("expired entries are misses", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(mustOpenDB(t), sqlite.WithTTL(0))
		ctx := context.Background()

		require.NoError(t, cache.Put(ctx, "https://example.org/", "escultura", records))

		_, ok, err := cache.Get(ctx, "https://example.org/", "escultura")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("put replaces previous entry", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewResultCache(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, cache.Put(ctx, "https://example.org/", "escultura", records))

		updated := []editais.Record{{Title: "Novo edital", Link: "https://example.org/novo"}}
		require.NoError(t, cache.Put(ctx, "https://example.org/", "escultura", updated))

		got, ok, err := cache.Get(ctx, "https://example.org/", "escultura")
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "Novo edital", got[0].Title)
	})
}

package feed_test

import (
	"testing"

	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "feed", feed.NewExtractor().Name())
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	source := editais.Source{
		ID:   "cultura-mercado",
		Name: "Cultura em Mercado",
		URL:  "https://culturaemercado.com.br/editais/",
	}

	t.Run("extracts matching items", func(t *testing.T) {
		t.Parallel()

		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Cultura em Mercado</title>
	<item>
		<title>Edital de escultura urbana abre inscrições</title>
		<link>https://culturaemercado.com.br/editais/escultura-urbana</link>
		<description>Inscrições para projetos de escultura em espaço público.</description>
		<pubDate>Mon, 11 Mar 2024 10:00:00 +0000</pubDate>
	</item>
	<item>
		<title>Festival de dança contemporânea</title>
		<link>https://culturaemercado.com.br/editais/danca</link>
		<description>Seleção de espetáculos de dança.</description>
	</item>
</channel>
</rss>`

		e := feed.NewExtractor()
		records, err := e.Extract(rss, source, "escultura")

		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "Edital de escultura urbana abre inscrições", records[0].Title)
		assert.Equal(t, "https://culturaemercado.com.br/editais/escultura-urbana", records[0].Link)
		assert.Equal(t, "culturaemercado.com.br", records[0].Source)
		assert.Equal(t, "11/03/2024", records[0].Date)
		assert.Equal(t, editais.KindWeb, records[0].Kind)
		assert.Equal(t, "edital", records[0].MatchedKeyword)
		assert.Greater(t, records[0].Relevance, 0)
	})

	t.Run("falls back to text dates without pubDate", func(t *testing.T) {
		t.Parallel()

		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Feed</title>
	<item>
		<title>Edital de escultura com prazo 20/05/2024</title>
		<link>https://example.org/edital</link>
	</item>
</channel>
</rss>`

		e := feed.NewExtractor()
		records, err := e.Extract(rss, source, "escultura")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "20/05/2024", records[0].Date)
	})

	t.Run("placeholder when nothing matches", func(t *testing.T) {
		t.Parallel()

		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Feed</title>
	<item>
		<title>Oficina de teatro</title>
		<link>https://example.org/teatro</link>
	</item>
</channel>
</rss>`

		e := feed.NewExtractor()
		records, err := e.Extract(rss, source, "escultura")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Navegar em Cultura em Mercado", records[0].Title)
	})

	t.Run("invalid feed", func(t *testing.T) {
		t.Parallel()

		e := feed.NewExtractor()
		_, err := e.Extract("not a feed", source, "escultura")

		require.Error(t, err)
		assert.Equal(t, editais.EINVALID, editais.ErrorCode(err))
	})
}

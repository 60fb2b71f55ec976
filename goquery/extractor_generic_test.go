package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExtractor_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "generic", goquery.NewGenericExtractor().Name())
}

func TestGenericExtractor_Extract(t *testing.T) {
	t.Parallel()

	source := editais.Source{
		ID:   "test",
		Name: "Portal de Teste",
		URL:  "https://example.org/",
	}

	t.Run("extracts matching links with resolved URLs", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<ul>
	<li><a href="/editais/escultura-2024.pdf">Edital de escultura 2024</a> publicado em 15/03/2024</li>
</ul>
<h2>Concurso de escultura monumental</h2>
<p>Notícias institucionais sem relação com o tema da busca.</p>
</body>
</html>`

		e := goquery.NewGenericExtractor()
		records, err := e.Extract(html, source, "escultura")

		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "Edital de escultura 2024", records[0].Title)
		assert.Equal(t, "https://example.org/editais/escultura-2024.pdf", records[0].Link)
		assert.Equal(t, "example.org", records[0].Source)
		assert.Equal(t, "15/03/2024", records[0].Date)
		assert.Equal(t, editais.KindPDF, records[0].Kind)
		assert.Equal(t, "edital", records[0].MatchedKeyword)
		assert.Greater(t, records[0].Relevance, 0)

		assert.Equal(t, "Concurso de escultura monumental", records[1].Title)
		assert.Equal(t, source.URL, records[1].Link)
		assert.Equal(t, editais.KindWeb, records[1].Kind)
	})

	t.Run("skips fragments embedded in longer words", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/quartel">Visita ao quartel general</a></body></html>`

		e := goquery.NewGenericExtractor()
		records, err := e.Extract(html, source, "arte")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Navegar em Portal de Teste", records[0].Title)
	})

	t.Run("classifies document links by extension", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/anexo.docx">Edital de arte e cultura anexo</a>
</body></html>`

		e := goquery.NewGenericExtractor()
		records, err := e.Extract(html, source, "arte")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, editais.KindDoc, records[0].Kind)
	})

	t.Run("returns placeholder when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Página institucional sem oportunidades.</p></body></html>`

		e := goquery.NewGenericExtractor()
		records, err := e.Extract(html, source, "escultura")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Navegar em Portal de Teste", records[0].Title)
		assert.Equal(t, source.URL, records[0].Link)
		assert.Equal(t, editais.SentinelDate, records[0].Date)
		assert.Equal(t, "navegação", records[0].MatchedKeyword)
	})

	t.Run("deduplicates by link within the page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/edital-1">Edital de escultura</a>
<a href="/edital-1#inscricao">Edital de escultura</a>
</body></html>`

		e := goquery.NewGenericExtractor()
		records, err := e.Extract(html, source, "escultura")

		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("caps the number of records", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 0; i < 50; i++ {
			fmt.Fprintf(&b, `<a href="/edital-%d">Edital de escultura %d</a>`, i, i)
		}
		b.WriteString("</body></html>")

		e := goquery.NewGenericExtractor()
		records, err := e.Extract(b.String(), source, "escultura")

		require.NoError(t, err)
		assert.Len(t, records, 30)
	})

	t.Run("invalid source URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewGenericExtractor()
		_, err := e.Extract("<html></html>", editais.Source{URL: "://bad"}, "arte")

		require.Error(t, err)
		assert.Equal(t, editais.EINVALID, editais.ErrorCode(err))
	})
}

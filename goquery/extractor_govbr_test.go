package goquery_test

import (
	"testing"

	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGovBRExtractor_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "govbr", goquery.NewGovBRExtractor().Name())
}

func TestGovBRExtractor_Extract(t *testing.T) {
	t.Parallel()

	source := editais.Source{
		ID:   "funarte",
		Name: "FUNARTE - Artes Visuais",
		URL:  "https://www.gov.br/funarte/editais-arte-visual",
	}

	t.Run("extracts listing tiles", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>
	<h2 class="tileHeadline">Edital de escultura em praça pública</h2>
	<a href="/funarte/edital-42">Leia mais</a>
	<span>10 de março de 2024</span>
</article>
</body></html>`

		e := goquery.NewGovBRExtractor()
		records, err := e.Extract(html, source, "escultura")

		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "Edital de escultura em praça pública", records[0].Title)
		assert.Equal(t, "https://www.gov.br/funarte/edital-42", records[0].Link)
		assert.Equal(t, "10/03/2024", records[0].Date)
		assert.Equal(t, "edital", records[0].MatchedKeyword)
		assert.Equal(t, editais.KindWeb, records[0].Kind)
	})

	t.Run("extracts document attachments with edict wording", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p><a href="/funarte/files/anexo.pdf">Anexo do edital de seleção</a> atualizado em 03/02/2024</p>
</body></html>`

		e := goquery.NewGovBRExtractor()
		records, err := e.Extract(html, source, "escultura")

		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "Anexo do edital de seleção", records[0].Title)
		assert.Equal(t, editais.KindPDF, records[0].Kind)
		assert.Equal(t, "03/02/2024", records[0].Date)
	})

	t.Run("uses governmental fallback keyword", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>
	<h2>Chamamento para obras de tapeçaria</h2>
	<a href="/funarte/chamamento">Detalhes</a>
</article>
</body></html>`

		e := goquery.NewGovBRExtractor()
		records, err := e.Extract(html, source, "tapeçaria")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "governamental", records[0].MatchedKeyword)
	})

	t.Run("ignores attachments without term or edict wording", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/funarte/files/relatorio.pdf">Relatório anual</a>
</body></html>`

		e := goquery.NewGovBRExtractor()
		records, err := e.Extract(html, source, "escultura")

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Navegar em FUNARTE - Artes Visuais", records[0].Title)
	})
}

package editais_test

import (
	"testing"

	"github.com/mapacultural/editais"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		term string
		kind editais.ElementKind
		want int
	}{
		{
			// heading 15, term present 20, prefix 30, one occurrence 5,
			// weighted keyword "premio" 16
			name: "heading with term prefix",
			text: "Prêmio PIPA",
			term: "prêmio",
			kind: editais.ElementHeading,
			want: 86,
		},
		{
			// heading 15, present 20, exact 50, prefix 30, suffix 25,
			// occurrence 5, weighted keyword 16, short text -10
			name: "exact match",
			text: "Prêmio",
			term: "prêmio",
			kind: editais.ElementHeading,
			want: 151,
		},
		{
			// paragraph 8, short -2 floored
			name: "floored at zero",
			text: "xyz",
			term: "edital",
			kind: editais.ElementParagraph,
			want: 0,
		},
		{
			name: "no term no keywords",
			text: "notícias institucionais variadas",
			term: "escultura",
			kind: editais.ElementParagraph,
			want: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, editais.Score(tt.text, tt.term, tt.kind))
		})
	}
}

func TestScore_HeadingTermMatchClearsFloor(t *testing.T) {
	t.Parallel()

	// a heading whose only signal is the search term must still rank well
	// above the default aggregation floor
	score := editais.Score("Prêmio PIPA", "prêmio", editais.ElementHeading)
	assert.GreaterOrEqual(t, score, 85)
}

func TestScore_OccurrenceBonus(t *testing.T) {
	t.Parallel()

	once := editais.Score("Edital aberto para inscrição", "edital", editais.ElementParagraph)
	twice := editais.Score("Edital aberto, veja o edital para inscrição", "edital", editais.ElementParagraph)

	// every occurrence earns the bonus, the first included
	assert.Equal(t, once+5, twice)
}

func TestScore_LinkBonuses(t *testing.T) {
	t.Parallel()

	link := editais.Score("Edital de licitação em PDF", "edital", editais.ElementLink)
	paragraph := editais.Score("Edital de licitação em PDF", "edital", editais.ElementParagraph)

	// link base is 2 above paragraph, plus 20 for edict wording and 15 for
	// the document-format hint
	assert.Equal(t, paragraph+37, link)
}

func TestScore_DateBonus(t *testing.T) {
	t.Parallel()

	without := editais.Score("Edital de seleção cultural aberto", "edital", editais.ElementParagraph)
	with := editais.Score("Edital de seleção cultural aberto até 15/03/2024", "edital", editais.ElementParagraph)

	assert.Equal(t, without+15, with)
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()

	text := "Edital de Seleção Pública para Artistas Visuais 2024"
	first := editais.Score(text, "edital", editais.ElementHeading)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, editais.Score(text, "edital", editais.ElementHeading))
	}
	assert.GreaterOrEqual(t, first, 0)
}

func TestHasRealMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		term string
		want bool
	}{
		{"word in sentence", "Edital de escultura pública", "escultura", true},
		{"exact", "escultura", "escultura", true},
		{"hyphen bounded", "mini-escultura em bronze", "escultura", true},
		{"embedded in longer word", "quartel general", "arte", false},
		{"absent", "notícias gerais", "escultura", false},
		{"accent insensitive", "EXPOSIÇÃO de arte", "exposicao", true},
		{"short terms ignored", "ar do mar", "ar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, editais.HasRealMatch(tt.text, tt.term))
		})
	}
}

func TestMatchedKeyword(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "edital", editais.MatchedKeyword("Edital de fomento à cultura"))
	assert.Equal(t, "cultura", editais.MatchedKeyword("Fundação de cultura abre vagas"))
	assert.Equal(t, "busca livre", editais.MatchedKeyword("texto sem vocabulário conhecido"))
}

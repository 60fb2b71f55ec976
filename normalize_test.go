package editais_test

import (
	"testing"

	"github.com/mapacultural/editais"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "EDITAL", "edital"},
		{"strips accents", "Seleção Pública", "selecao publica"},
		{"strips cedilla and tilde", "licitação março", "licitacao marco"},
		{"trims whitespace", "  prêmio  ", "premio"},
		{"plain ascii unchanged", "cultura", "cultura"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, editais.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Exposição de Artes Visuais", "CAMBORIÚ", "já normalizado", ""}
	for _, in := range inputs {
		once := editais.Normalize(in)
		assert.Equal(t, once, editais.Normalize(once))
	}
}

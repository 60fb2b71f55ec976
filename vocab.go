package editais

// Shared keyword vocabulary, consolidated into one table per concern.
// All entries are stored in normalized form (lower-case, accent-stripped);
// callers compare against Normalize(text). The reference keywords
// categorize results only — they never restrict what a user may search.

// EdictTerms is the edict/bidding vocabulary used by the strict relevance
// gate: a candidate must mention at least one of these to be admitted.
var EdictTerms = []string{
	"edital", "selecao", "processo seletivo", "inscricao", "premio",
	"bolsa", "fomento", "incentivo", "patrocinio", "licitacao", "pregao",
	"concorrencia", "tomada de preco", "inexigibilidade", "dispensa",
	"convite", "modalidade", "credenciamento", "oportunidade", "programa",
	"projeto", "rodada", "seletivo", "certame", "manifestacao",
	"interesse", "cadastro", "registro", "salao", "mostra", "exposicao",
	"bienal", "residencia", "circuito", "festival", "showcase", "ata",
	"contratacao", "homologacao", "concurso", "chamada", "convocacao",
}

// CultureTerms is the culture/arts vocabulary required by the strict gate.
var CultureTerms = []string{
	"cultura", "cultural", "artes visuais", "escultura", "estatua",
	"estatueta", "relevo", "trofeu", "monumental", "monumento",
	"site-specific", "modelagem", "busto", "torso", "tridimensional",
	"exposicao", "acervo", "mostra", "bienal", "3d", "arte", "artista",
	"artistico", "galeria", "museu", "curadoria", "instalacao",
	"patrimonio",
}

// EdictContextTerms marks text that sits in an edict/bidding context and
// earns the scorer's context bonus.
var EdictContextTerms = []string{
	"edital", "licitacao", "selecao", "processo", "concurso", "chamada",
	"convocacao",
}

// ReferenceKeywords is the categorization vocabulary: the first keyword
// found in a candidate's text becomes its MatchedKeyword, and each distinct
// hit earns a small score bonus.
var ReferenceKeywords = []string{
	// Edicts and opportunities
	"edital", "selecao", "processo seletivo", "inscricao", "premio",
	"bolsa", "fomento", "incentivo", "patrocinio", "licitacao", "pregao",
	"concorrencia", "credenciamento", "oportunidade", "programa",
	"projeto", "certame", "chamada", "residencia", "circuito", "festival",
	"mostra", "concurso", "apresentacao de propostas",
	"manifestacao de interesse",

	// Culture and the arts
	"cultura", "cultural", "artes visuais", "escultura", "estatua",
	"estatueta", "relevo", "trofeu", "monumental", "monumento",
	"site-specific", "modelagem", "busto", "torso", "tridimensional",
	"exposicao", "acervo", "bienal", "3d", "arte", "artista", "curadoria",
	"galeria", "museu", "instalacao", "arte tridimensional",
	"arte contemporanea", "arte moderna", "arte publica",

	// Broader categorization terms
	"artistico", "criativo", "inovacao", "tecnologia", "digital",
	"multimidia", "performance", "interativo", "experimental",
	"tradicional", "popular", "erudito", "classico", "moderno",
	"pos-moderno", "vanguarda", "emergente", "estabelecido", "heranca",
	"patrimonio", "historico", "sociedade", "comunidade", "educacao",
	"formacao", "capacitacao", "workshop", "oficina", "palestra",
	"debate", "seminario", "congresso", "encontro", "coloquio",
	"simposio", "conferencia", "apresentacao", "auxilio", "apoio",
	"financiamento", "investimento",
}

// referenceKeywordWeights gives the high-signal reference keywords extra
// scoring weight: the core cultural terms plus every keyword that carries
// an accented spelling in running text.
var referenceKeywordWeights = map[string]int{
	"premio": 2, "arte": 2, "cultural": 2, "artistico": 2, "inovacao": 2,
	"multimidia": 2, "classico": 2, "pos-moderno": 2, "heranca": 2,
	"patrimonio": 2, "historico": 2, "educacao": 2, "formacao": 2,
	"capacitacao": 2, "seminario": 2, "coloquio": 2, "simposio": 2,
	"conferencia": 2, "apresentacao": 2, "auxilio": 2,
}

// keywordWeight returns the scoring weight of a reference keyword.
func keywordWeight(k string) int {
	if w, ok := referenceKeywordWeights[k]; ok {
		return w
	}
	return 1
}

// SCLocaleTerms lists Santa Catarina municipality and region names for the
// government-domain locale gate. Short entries ("sc") are matched as whole
// tokens only; longer entries match by containment.
var SCLocaleTerms = []string{
	"balneario picarras", "barra velha", "bombinhas", "camboriu",
	"ilhota", "itajai", "itapema", "luiz alves", "navegantes", "penha",
	"porto belo", "santa catarina", "sc",
}

// NationalScopeTerms lists phrases that mark an opportunity as open
// nationwide, satisfying the locale gate for government sources.
var NationalScopeTerms = []string{
	"brasil", "nacional", "todo o pais", "qualquer estado",
	"todas as regioes",
}

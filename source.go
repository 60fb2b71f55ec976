package editais

import "net/url"

// Category groups sources by the kind of institution behind them.
type Category string

// Source categories.
const (
	CategoryFederal   Category = "federal"
	CategoryState     Category = "estadual"
	CategoryPlatform  Category = "plataforma"
	CategoryRegional  Category = "regional"
	CategoryMunicipal Category = "municipal"
	CategorySESC      Category = "sesc"
)

// Source describes one site to scan. The registry is static configuration;
// the pipeline only reads URL to select an extraction strategy and to
// resolve relative links.
type Source struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Active   bool     `json:"active"`
	Category Category `json:"category"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "source ID required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	return nil
}

// Hostname returns the host part of the source URL, or the raw URL if it
// cannot be parsed.
func (s Source) Hostname() string {
	u, err := url.Parse(s.URL)
	if err != nil || u.Host == "" {
		return s.URL
	}
	return u.Host
}

// FindSource returns the source with the given ID.
func FindSource(sources []Source, id string) (Source, bool) {
	for _, s := range sources {
		if s.ID == id {
			return s, true
		}
	}
	return Source{}, false
}

// ActiveSources filters the list down to active sources.
func ActiveSources(sources []Source) []Source {
	out := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// DefaultSources returns the built-in registry of cultural edict sources.
func DefaultSources() []Source {
	return []Source{
		// Federal
		{ID: "rouanet", Name: "Lei Rouanet", URL: "https://www.gov.br/rouanet", Active: true, Category: CategoryFederal},
		{ID: "fnc", Name: "Fundo Nacional de Cultura", URL: "https://www.gov.br/cultura/pt-br/assuntos/fnc", Active: true, Category: CategoryFederal},
		{ID: "funarte", Name: "FUNARTE - Artes Visuais", URL: "https://www.gov.br/funarte/editais-arte-visual", Active: true, Category: CategoryFederal},
		{ID: "funarte-editais", Name: "FUNARTE - Editais", URL: "https://www.gov.br/funarte/pt-br/editais-1", Active: true, Category: CategoryFederal},
		{ID: "cultura-viva", Name: "Cultura Viva", URL: "https://www.gov.br/cultura/pt-br/cultura-viva", Active: true, Category: CategoryFederal},
		{ID: "iphan", Name: "IPHAN", URL: "https://www.gov.br/iphan", Active: true, Category: CategoryFederal},
		{ID: "iphan-editais", Name: "IPHAN - Editais", URL: "https://www.gov.br/iphan/editais", Active: true, Category: CategoryFederal},
		{ID: "minc", Name: "Ministério da Cultura", URL: "https://www.gov.br/cultura", Active: true, Category: CategoryFederal},
		{ID: "salic", Name: "SALIC", URL: "https://www.gov.br/cultura/pt-br/assuntos/salic", Active: true, Category: CategoryFederal},
		{ID: "bndes", Name: "BNDES Cultural", URL: "https://www.bndes.gov.br", Active: true, Category: CategoryFederal},

		// State (Santa Catarina)
		{ID: "gov-sc", Name: "Governo SC", URL: "https://estado.sc.gov.br", Active: true, Category: CategoryState},
		{ID: "cultura-sc", Name: "Cultura SC", URL: "https://www.cultura.sc.gov.br/", Active: true, Category: CategoryState},
		{ID: "fcc-sc", Name: "FCC SC", URL: "https://www.fcc.sc.gov.br", Active: true, Category: CategoryState},
		{ID: "transparencia-sc", Name: "Transparência SC", URL: "https://www.transparencia.sc.gov.br/", Active: true, Category: CategoryState},

		// Edict platforms
		{ID: "cultura-presente", Name: "Cultura Presente", URL: "https://culturapresente.com.br/editais-culturais/", Active: true, Category: CategoryPlatform},
		{ID: "cultura-mercado", Name: "Cultura em Mercado", URL: "https://culturaemercado.com.br/editais/", Active: true, Category: CategoryPlatform},
		{ID: "cultura-mercado-feed", Name: "Cultura em Mercado (RSS)", URL: "https://culturaemercado.com.br/feed/", Active: true, Category: CategoryPlatform},
		{ID: "prosas", Name: "Prosas", URL: "https://prosas.com.br/editais", Active: true, Category: CategoryPlatform},
		{ID: "premio-pipa", Name: "Prêmio PIPA", URL: "https://www.premiopipa.com/", Active: true, Category: CategoryPlatform},
		{ID: "cultura-catarina", Name: "Cultura Catarina", URL: "https://culturacatarina.com.br", Active: true, Category: CategoryPlatform},

		// Regional associations
		{ID: "amfri", Name: "AMFRI", URL: "https://amfri.org.br", Active: true, Category: CategoryRegional},
		{ID: "amfri-cultura", Name: "AMFRI - Cultura", URL: "https://amfri.org.br/pagina-47428/", Active: true, Category: CategoryRegional},
		{ID: "amavi", Name: "AMAVI", URL: "https://www.amavi.org.br", Active: true, Category: CategoryRegional},
		{ID: "amosc", Name: "AMOSC", URL: "https://www.amosc.org.br", Active: true, Category: CategoryRegional},

		// Municipal cultural foundations
		{ID: "itajai", Name: "Fundação Cultural Itajaí", URL: "https://fundacaocultural.itajai.sc.gov.br/", Active: true, Category: CategoryMunicipal},
		{ID: "camboriu", Name: "Camboriú", URL: "https://camboriu.sc.gov.br/", Active: true, Category: CategoryMunicipal},
		{ID: "bombinhas", Name: "Bombinhas", URL: "https://bombinhas.sc.gov.br", Active: true, Category: CategoryMunicipal},
		{ID: "itapema", Name: "Itapema", URL: "https://itapema.sc.gov.br", Active: true, Category: CategoryMunicipal},
		{ID: "navegantes", Name: "Navegantes", URL: "https://navegantes.sc.gov.br/", Active: true, Category: CategoryMunicipal},

		// SESC
		{ID: "sesc-sc", Name: "SESC SC - Licitações", URL: "https://sesc-sc.com.br/sobre-o-sesc/licitacoes", Active: true, Category: CategorySESC},
	}
}

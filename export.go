package editais

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

// csvHeader matches the column order of the export contract.
var csvHeader = []string{"Título", "Fonte", "Link", "Data", "Trecho", "Palavra-chave", "Tipo"}

// WriteCSV serializes records as CSV with a UTF-8 BOM so spreadsheet
// applications pick up the encoding. Embedded quotes are escaped by the
// CSV writer. The full record set is written; display truncation never
// applies to export.
func WriteCSV(w io.Writer, records []Record) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Title, r.Source, r.Link, r.Date, r.Excerpt, r.MatchedKeyword, string(r.Kind)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON serializes records as pretty-printed JSON using the Portuguese
// field names of the export contract.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

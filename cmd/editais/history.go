package main

import (
	"fmt"

	"github.com/mapacultural/editais"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	scans, err := deps.History.RecentScans(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", editais.ErrorMessage(err))
		return err
	}

	if len(scans) == 0 {
		fmt.Fprintln(deps.Stdout, "No scans recorded. Use 'editais search' to run one.")
		return nil
	}

	for _, s := range scans {
		fmt.Fprintf(deps.Stdout, "%s  %-20q  %d sources  %d records\n",
			s.Session.StartedAt.Format("2006-01-02 15:04"), s.Session.Term,
			s.SourcesScanned, s.RecordsFound)
	}

	return nil
}

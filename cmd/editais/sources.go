package main

import (
	"fmt"

	"github.com/mapacultural/editais"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	sources := deps.Sources
	if c.Category != "" {
		filtered := make([]editais.Source, 0, len(sources))
		for _, s := range sources {
			if string(s.Category) == c.Category {
				filtered = append(filtered, s)
			}
		}
		sources = filtered
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found.")
		return nil
	}

	for _, s := range sources {
		status := " "
		if !s.Active {
			status = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s %-22s %-12s %s\n", status, s.ID, s.Category, s.URL)
	}

	return nil
}

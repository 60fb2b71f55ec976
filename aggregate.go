package editais

import "sort"

// AggregateOptions configures result aggregation.
type AggregateOptions struct {
	// MinRelevance suppresses records scoring below the floor. Zero
	// disables the floor; pipelines that never score records must leave
	// it at zero so unscored (zero-relevance) records survive.
	MinRelevance int

	// Limit truncates the result set for display. Zero means no limit;
	// export paths always pass zero and serialize the full filtered set.
	Limit int
}

// Aggregate merges per-source extractor outputs into the final ranked list:
// deduplicate by exact link equality keeping the first occurrence in input
// order, stable-sort descending by relevance (ties keep input order), apply
// the minimum-relevance floor, and truncate for display.
func Aggregate(records []Record, opts AggregateOptions) []Record {
	seen := make(map[string]bool, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if seen[r.Link] {
			continue
		}
		seen[r.Link] = true
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Relevance > out[j].Relevance
	})

	if opts.MinRelevance > 0 {
		filtered := out[:0]
		for _, r := range out {
			if r.Relevance >= opts.MinRelevance {
				filtered = append(filtered, r)
			}
		}
		out = filtered
	}

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return out
}

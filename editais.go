// Package editais provides a relevance-scoring and extraction pipeline for
// cultural edict and grant opportunity announcements. It scans a fixed
// registry of government, NGO, and platform websites, extracts candidate
// opportunity records from fetched pages, scores them against a free-text
// search term, and aggregates a ranked, deduplicated result set.
//
// This package contains domain types, interfaces, and pure domain logic
// (normalization, date extraction, scoring, relevance gating, aggregation,
// export) following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, sqlite/, rod/).
package editais

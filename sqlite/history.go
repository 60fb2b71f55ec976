package sqlite

import (
	"context"
	"time"

	"github.com/mapacultural/editais"
)

// HistoryService records completed scans for later inspection.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// RecordScan stores the outcome of one scan session.
func (s *HistoryService) RecordScan(ctx context.Context, session editais.Session, sourcesScanned, recordsFound int) error {
	if session.ID == "" {
		return editais.Errorf(editais.EINVALID, "session ID required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_history (id, term, started_at, sources_scanned, records_found)
		VALUES (?, ?, ?, ?, ?)
	`, session.ID, session.Term, session.StartedAt.UTC().Format(time.RFC3339),
		sourcesScanned, recordsFound)

	return err
}

// RecentScans returns the most recent scans, newest first.
func (s *HistoryService) RecentScans(ctx context.Context, limit int) ([]editais.ScanSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, term, started_at, sources_scanned, records_found
		FROM scan_history
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []editais.ScanSummary
	for rows.Next() {
		var sum editais.ScanSummary
		var startedAt string
		if err := rows.Scan(&sum.Session.ID, &sum.Session.Term, &startedAt,
			&sum.SourcesScanned, &sum.RecordsFound); err != nil {
			return nil, err
		}
		sum.Session.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, editais.Errorf(editais.EINTERNAL, "failed to parse started_at: %v", err)
		}
		scans = append(scans, sum)
	}

	return scans, rows.Err()
}

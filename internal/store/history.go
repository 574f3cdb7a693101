package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// CleanRun is one recorded invocation of the clean command.
type CleanRun struct {
	ID       int64
	RanAt    time.Time
	KeepLast int
	DryRun   bool
	Deleted  []int
}

// RecordCleanRun inserts a clean run and returns its ID.
func (s *Store) RecordCleanRun(run *CleanRun) (int64, error) {
	deletedJSON, err := json.Marshal(run.Deleted)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal deleted generations: %w", err)
	}

	query := `
		INSERT INTO clean_runs (ran_at, keep_last, dry_run, deleted, deleted_count)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.Exec(query,
		run.RanAt.Format(time.RFC3339),
		run.KeepLast,
		run.DryRun,
		string(deletedJSON),
		len(run.Deleted),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record clean run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get clean run ID: %w", err)
	}
	return id, nil
}

// ListCleanRuns returns the most recent clean runs, newest first.
// A limit <= 0 returns all runs.
func (s *Store) ListCleanRuns(limit int) ([]*CleanRun, error) {
	query := `
		SELECT id, ran_at, keep_last, dry_run, deleted
		FROM clean_runs
		ORDER BY ran_at DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clean runs: %w", err)
	}
	defer rows.Close()

	var runs []*CleanRun
	for rows.Next() {
		var run CleanRun
		var ranAt string
		var deletedJSON string

		if err := rows.Scan(&run.ID, &ranAt, &run.KeepLast, &run.DryRun, &deletedJSON); err != nil {
			return nil, fmt.Errorf("failed to scan clean run: %w", err)
		}

		run.RanAt, err = time.Parse(time.RFC3339, ranAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ran_at for run %d: %w", run.ID, err)
		}

		if err := json.Unmarshal([]byte(deletedJSON), &run.Deleted); err != nil {
			return nil, fmt.Errorf("failed to parse deleted generations for run %d: %w", run.ID, err)
		}

		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clean runs: %w", err)
	}
	return runs, nil
}

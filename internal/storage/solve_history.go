package storage

import (
	"fmt"
)

// SolveRecord represents one recorded solve in the database.
type SolveRecord struct {
	SolveID    string
	SolvedAt   string
	Algorithm  string
	Scramble   string
	Facelet    string
	Solution   string
	MoveCount  int
	DurationMS int64
}

// SolveRepository inserts, lists and counts solve history records.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create inserts a new solve record.
func (r *SolveRepository) Create(rec SolveRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, solved_at, algorithm, scramble, facelet, solution, move_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.SolveID, rec.SolvedAt, rec.Algorithm, rec.Scramble, rec.Facelet, rec.Solution, rec.MoveCount, rec.DurationMS)
	if err != nil {
		return fmt.Errorf("failed to create solve record: %w", err)
	}
	return nil
}

// Recent returns the n most recently solved records, newest first.
func (r *SolveRepository) Recent(n int) ([]SolveRecord, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, solved_at, algorithm, scramble, facelet, solution, move_count, duration_ms
		FROM solves
		ORDER BY solved_at DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent solves: %w", err)
	}
	defer rows.Close()

	var out []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		if err := rows.Scan(&rec.SolveID, &rec.SolvedAt, &rec.Algorithm, &rec.Scramble, &rec.Facelet, &rec.Solution, &rec.MoveCount, &rec.DurationMS); err != nil {
			return nil, fmt.Errorf("failed to scan solve record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the total number of recorded solves.
func (r *SolveRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}

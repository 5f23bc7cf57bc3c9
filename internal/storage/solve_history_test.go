package storage

import (
	"path/filepath"
	"testing"
)

func TestSolveRepositoryCreateAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "solves.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	repo := NewSolveRepository(db)

	records := []SolveRecord{
		{SolveID: "a", SolvedAt: "2026-01-01T00:00:00Z", Algorithm: "kociemba", Scramble: "R U", Facelet: "...", Solution: "U' R'", MoveCount: 2, DurationMS: 5},
		{SolveID: "b", SolvedAt: "2026-01-02T00:00:00Z", Algorithm: "kociemba", Scramble: "F2", Facelet: "...", Solution: "F2", MoveCount: 1, DurationMS: 3},
	}
	for _, rec := range records {
		if err := repo.Create(rec); err != nil {
			t.Fatalf("Create(%q): %v", rec.SolveID, err)
		}
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}

	recent, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(Recent(10)) = %d, want 2", len(recent))
	}
	if recent[0].SolveID != "b" {
		t.Errorf("Recent()[0].SolveID = %q, want most-recent-first order", recent[0].SolveID)
	}
}

func TestOpenAppliesSchemaIdempotently(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "solves.db")

	db1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	db1.Close()

	db2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open (re-applying migrations): %v", err)
	}
	defer db2.Close()

	if _, err := NewSolveRepository(db2).Count(); err != nil {
		t.Errorf("Count after reopen: %v", err)
	}
}

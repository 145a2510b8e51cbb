package testutil

import (
	"database/sql"
	"testing"
)

// AssertTableExists fails the test when db (SQLite) has no table named table.
func AssertTableExists(t *testing.T, db *sql.DB, table string) {
	t.Helper()

	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&n)
	if err != nil {
		t.Fatalf("failed to check table %s: %v", table, err)
	}
	if n == 0 {
		t.Errorf("expected table %s to exist", table)
	}
}

// AssertRowCount fails the test when table does not hold exactly want rows.
func AssertRowCount(t *testing.T, db *sql.DB, table string, want int) {
	t.Helper()

	var got int
	// table comes from test code, never from input.
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	if got != want {
		t.Errorf("table %s has %d rows, want %d", table, got, want)
	}
}

package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/hlop3z/sqlforge/internal/alerr"
)

const (
	// HistoryLimit is the number of scripts kept; older entries are pruned.
	HistoryLimit = 10

	// UnnamedProject labels history entries of projects without a database name.
	UnnamedProject = "untitled"
)

// HistoryEntry is one recorded script.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	ProjectName string    `json:"project_name"`
	Dialect     string    `json:"dialect"`
	Fingerprint string    `json:"fingerprint"`
	SQL         string    `json:"sql"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddHistory records a generated script and prunes the table to the last
// HistoryLimit entries. Blank scripts are ignored. When the newest entry
// already has the same non-empty fingerprint and project, nothing is added
// and that entry is returned with added == false.
func (s *Store) AddHistory(e HistoryEntry) (HistoryEntry, bool, error) {
	if strings.TrimSpace(e.SQL) == "" {
		return HistoryEntry{}, false, nil
	}
	if strings.TrimSpace(e.ProjectName) == "" {
		e.ProjectName = UnnamedProject
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Fingerprint != "" {
		last, err := s.latest()
		if err != nil {
			return HistoryEntry{}, false, err
		}
		if last != nil && last.Fingerprint == e.Fingerprint && last.ProjectName == e.ProjectName {
			return *last, false, nil
		}
	}

	ts := now()
	res, err := s.db.Exec(
		"INSERT INTO history (project_name, dialect, fingerprint, sql_content, created_at) VALUES (?, ?, ?, ?, ?)",
		e.ProjectName, e.Dialect, e.Fingerprint, e.SQL, ts,
	)
	if err != nil {
		return HistoryEntry{}, false, alerr.WrapStore(alerr.ErrStoreWrite, err, "add history entry", "history").
			With("project", e.ProjectName)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return HistoryEntry{}, false, alerr.WrapStore(alerr.ErrStoreWrite, err, "read history id", "history")
	}
	e.CreatedAt = parseTime(ts)

	_, err = s.db.Exec(
		"DELETE FROM history WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)",
		HistoryLimit,
	)
	if err != nil {
		return HistoryEntry{}, false, alerr.WrapStore(alerr.ErrStoreWrite, err, "prune history", "history")
	}
	return e, true, nil
}

// latest returns the newest entry or nil. Callers hold the lock.
func (s *Store) latest() (*HistoryEntry, error) {
	row := s.db.QueryRow(
		"SELECT id, project_name, dialect, fingerprint, sql_content, created_at FROM history ORDER BY id DESC LIMIT 1",
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "read history", "history")
	}
	return &e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (HistoryEntry, error) {
	var e HistoryEntry
	var created string
	err := row.Scan(&e.ID, &e.ProjectName, &e.Dialect, &e.Fingerprint, &e.SQL, &created)
	e.CreatedAt = parseTime(created)
	return e, err
}

// ListHistory returns the recorded scripts, newest first.
func (s *Store) ListHistory() ([]HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, project_name, dialect, fingerprint, sql_content, created_at FROM history ORDER BY id DESC",
	)
	if err != nil {
		return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "list history", "history")
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "scan history entry", "history")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "iterate history", "history")
	}
	return out, nil
}

// GetHistory returns one entry by id.
func (s *Store) GetHistory(id int64) (*HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		"SELECT id, project_name, dialect, fingerprint, sql_content, created_at FROM history WHERE id = ?", id,
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, alerr.New(alerr.ErrStoreRead, "history entry not found").
			With("id", id).
			WithHelp("run 'sqlforge history list' to see recorded scripts")
	}
	if err != nil {
		return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "read history entry", "history").With("id", id)
	}
	return &e, nil
}

// DeleteHistory removes one entry.
func (s *Store) DeleteHistory(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM history WHERE id = ?", id); err != nil {
		return alerr.WrapStore(alerr.ErrStoreWrite, err, "delete history entry", "history").With("id", id)
	}
	return nil
}

// ClearHistory removes every entry.
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM history"); err != nil {
		return alerr.WrapStore(alerr.ErrStoreWrite, err, "clear history", "history")
	}
	return nil
}

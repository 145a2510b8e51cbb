// Package store persists projects and recently generated scripts in a local
// SQLite database. Nothing in the generation core depends on it.
package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hlop3z/sqlforge/internal/alerr"
	"github.com/hlop3z/sqlforge/internal/model"

	_ "modernc.org/sqlite" // SQLite driver
)

const (
	// DefaultDir is the directory holding the store, relative to the working directory.
	DefaultDir = ".sqlforge"
	// DefaultFile is the SQLite database file name.
	DefaultFile = "store.db"
)

// DefaultPath returns the store location under root.
func DefaultPath(root string) string {
	return filepath.Join(root, DefaultDir, DefaultFile)
}

// Store provides project and history persistence.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Open opens or creates the store database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, alerr.Wrap(alerr.ErrStoreInit, err, "failed to create store directory").
			WithPath(filepath.Dir(path))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, alerr.Wrap(alerr.ErrStoreInit, err, "failed to open store database").
			WithPath(path)
	}
	// A single connection keeps writes ordered.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, alerr.Wrap(alerr.ErrStoreInit, err, "failed to connect to store database").
			WithPath(path)
	}

	s := &Store{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

func (s *Store) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS projects (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			name         TEXT NOT NULL UNIQUE,
			payload_json TEXT NOT NULL,
			created_at   TEXT NOT NULL,
			updated_at   TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS history (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			project_name TEXT NOT NULL,
			dialect      TEXT NOT NULL DEFAULT '',
			fingerprint  TEXT NOT NULL DEFAULT '',
			sql_content  TEXT NOT NULL,
			created_at   TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS store_meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		INSERT OR REPLACE INTO store_meta (key, value) VALUES ('version', '1');
	`

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(schema); err != nil {
		return alerr.Wrap(alerr.ErrStoreInit, err, "failed to initialize store schema").
			WithPath(s.path)
	}
	return nil
}

// timeFormat is fixed width so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

func now() string {
	return time.Now().UTC().Format(timeFormat)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// -----------------------------------------------------------------------------
// Projects
// -----------------------------------------------------------------------------

// ProjectInfo is a project listing entry.
type ProjectInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveProject inserts p or replaces the stored project with the same name.
// The name is p.StoreName().
func (s *Store) SaveProject(p *model.Project) (ProjectInfo, error) {
	if p == nil {
		return ProjectInfo{}, alerr.New(alerr.ErrProjectInvalid, "project is nil")
	}
	data, err := model.EncodeJSON(p)
	if err != nil {
		return ProjectInfo{}, err
	}

	name := p.StoreName()
	ts := now()

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		`INSERT INTO projects (name, payload_json, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload_json = excluded.payload_json, updated_at = excluded.updated_at`,
		name, string(data), ts, ts,
	)
	if err != nil {
		return ProjectInfo{}, alerr.WrapStore(alerr.ErrStoreWrite, err, "save project", "projects").
			With("project", name)
	}

	var info ProjectInfo
	var updated string
	err = s.db.QueryRow("SELECT id, name, updated_at FROM projects WHERE name = ?", name).
		Scan(&info.ID, &info.Name, &updated)
	if err != nil {
		return ProjectInfo{}, alerr.WrapStore(alerr.ErrStoreRead, err, "read saved project", "projects").
			With("project", name)
	}
	info.UpdatedAt = parseTime(updated)
	return info, nil
}

// LoadProject returns the project stored under name.
func (s *Store) LoadProject(name string) (*model.Project, error) {
	return s.loadProject("name = ?", name)
}

// LoadProjectByID returns the project with the given id.
func (s *Store) LoadProjectByID(id int64) (*model.Project, error) {
	return s.loadProject("id = ?", id)
}

func (s *Store) loadProject(where string, arg any) (*model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRow("SELECT payload_json FROM projects WHERE "+where, arg).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, alerr.New(alerr.ErrProjectNotFound, "project not found in store").
			With("project", arg).
			WithHelp("run 'sqlforge project list' to see stored projects")
	}
	if err != nil {
		return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "load project", "projects").
			With("project", arg)
	}
	return model.DecodeJSON([]byte(payload))
}

// ListProjects returns all stored projects, most recently updated first.
func (s *Store) ListProjects() ([]ProjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, updated_at FROM projects ORDER BY updated_at DESC, id DESC")
	if err != nil {
		return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "list projects", "projects")
	}
	defer rows.Close()

	var out []ProjectInfo
	for rows.Next() {
		var info ProjectInfo
		var updated string
		if err := rows.Scan(&info.ID, &info.Name, &updated); err != nil {
			return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "scan project", "projects")
		}
		info.UpdatedAt = parseTime(updated)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, alerr.WrapStore(alerr.ErrStoreRead, err, "iterate projects", "projects")
	}
	return out, nil
}

// DeleteProject removes the project stored under name. Deleting a missing
// project is not an error.
func (s *Store) DeleteProject(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM projects WHERE name = ?", name); err != nil {
		return alerr.WrapStore(alerr.ErrStoreWrite, err, "delete project", "projects").
			With("project", name)
	}
	return nil
}

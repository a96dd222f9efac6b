// Package store keeps tfdsearch bookkeeping in SQLite: the per-resource
// cache manifest (etag, checksum, fetch time) that drives conditional GETs
// and `cache status`, and the search history that feeds autocomplete.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"tfdsearch/internal/api"
	"tfdsearch/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS cache_manifest (
	resource    TEXT PRIMARY KEY,
	url         TEXT NOT NULL,
	etag        TEXT NOT NULL DEFAULT '',
	sha256      TEXT NOT NULL DEFAULT '',
	entry_count INTEGER NOT NULL DEFAULT 0,
	fetched_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS search_history (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	kind        TEXT NOT NULL,
	term        TEXT NOT NULL,
	matches     INTEGER NOT NULL,
	searched_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_kind_time
	ON search_history(kind, searched_at DESC);
`

// Manifest records one resource's last successful fetch.
type Manifest struct {
	Resource   api.Resource
	URL        string
	ETag       string
	SHA256     string
	EntryCount int
	FetchedAt  time.Time
}

// SearchRecord is one remembered search.
type SearchRecord struct {
	Kind       string // "weapons" or "modules"
	Term       string
	Matches    int
	SearchedAt time.Time
}

// Store is the SQLite-backed metadata store.
type Store struct {
	db        *sql.DB
	mu        sync.Mutex
	path      string
	sessionID string
	log       *zap.Logger
}

// Open initializes the store at path (":memory:" for tests).
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	s := &Store{
		db:        db,
		path:      path,
		sessionID: uuid.NewString(),
		log:       logging.Named("store"),
	}
	s.log.Debug("store opened", zap.String("path", path), zap.String("session", s.sessionID))
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SessionID returns the uuid minted for this process.
func (s *Store) SessionID() string { return s.sessionID }

// UpsertManifest records a successful fetch for a resource.
func (s *Store) UpsertManifest(m Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO cache_manifest (resource, url, etag, sha256, entry_count, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(resource) DO UPDATE SET
			url = excluded.url,
			etag = excluded.etag,
			sha256 = excluded.sha256,
			entry_count = excluded.entry_count,
			fetched_at = excluded.fetched_at`,
		string(m.Resource), m.URL, m.ETag, m.SHA256, m.EntryCount, m.FetchedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert manifest %s: %w", m.Resource, err)
	}
	return nil
}

// Manifest returns the manifest row for a resource, or (nil, nil) when the
// resource has never been fetched.
func (s *Store) Manifest(res api.Resource) (*Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`
		SELECT resource, url, etag, sha256, entry_count, fetched_at
		FROM cache_manifest WHERE resource = ?`, string(res))

	var m Manifest
	var resource string
	if err := row.Scan(&resource, &m.URL, &m.ETag, &m.SHA256, &m.EntryCount, &m.FetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load manifest %s: %w", res, err)
	}
	m.Resource = api.Resource(resource)
	return &m, nil
}

// AllManifests returns every manifest row in resource order.
func (s *Store) AllManifests() ([]Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT resource, url, etag, sha256, entry_count, fetched_at
		FROM cache_manifest ORDER BY resource`)
	if err != nil {
		return nil, fmt.Errorf("load manifests: %w", err)
	}
	defer rows.Close()

	var out []Manifest
	for rows.Next() {
		var m Manifest
		var resource string
		if err := rows.Scan(&resource, &m.URL, &m.ETag, &m.SHA256, &m.EntryCount, &m.FetchedAt); err != nil {
			return nil, fmt.Errorf("scan manifest: %w", err)
		}
		m.Resource = api.Resource(resource)
		out = append(out, m)
	}
	return out, rows.Err()
}

// RecordSearch appends a search to the history.
func (s *Store) RecordSearch(kind, term string, matches int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO search_history (session_id, kind, term, matches, searched_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.sessionID, kind, term, matches, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}

// RecentSearches returns up to limit distinct terms for a kind, most
// recent first.
func (s *Store) RecentSearches(kind string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT term FROM search_history
		WHERE kind = ?
		GROUP BY term
		ORDER BY MAX(searched_at) DESC
		LIMIT ?`, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent searches: %w", err)
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("scan search term: %w", err)
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

// History returns the most recent limit records for a kind; empty kind
// means all kinds.
func (s *Store) History(kind string, limit int) ([]SearchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT kind, term, matches, searched_at FROM search_history
		WHERE (? = '' OR kind = ?)
		ORDER BY searched_at DESC LIMIT ?`
	rows, err := s.db.Query(query, kind, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var out []SearchRecord
	for rows.Next() {
		var r SearchRecord
		if err := rows.Scan(&r.Kind, &r.Term, &r.Matches, &r.SearchedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Clear wipes manifests and history, used by `cache clear`.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"cache_manifest", "search_history"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

package data

import (
	"database/sql"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	user_id  TEXT NOT NULL,
	username TEXT NOT NULL,
	token    TEXT NOT NULL,
	saved_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS search_history (
	term        TEXT NOT NULL,
	searched_at TIMESTAMP NOT NULL
);
`

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Repository is the local store: the signed-in session and the recent
// search terms used to pre-fill the search box.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveSession replaces any existing session with the given one.
func (r *Repository) SaveSession(s *Session) error {
	if _, err := r.db.Exec(`DELETE FROM session`); err != nil {
		return err
	}
	_, err := r.db.Exec(
		`INSERT INTO session (user_id, username, token, saved_at) VALUES (?, ?, ?, ?)`,
		s.UserID, s.Username, s.Token, time.Now(),
	)
	return err
}

// GetSession returns the stored session, or nil if nobody is signed in.
func (r *Repository) GetSession() (*Session, error) {
	row := r.db.QueryRow(`SELECT user_id, username, token, saved_at FROM session LIMIT 1`)
	var s Session
	if err := row.Scan(&s.UserID, &s.Username, &s.Token, &s.SavedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ClearSession() error {
	_, err := r.db.Exec(`DELETE FROM session`)
	return err
}

// RecordSearch stores a submitted search term. Repeated terms are moved
// to the front rather than duplicated.
func (r *Repository) RecordSearch(term string) error {
	if term == "" {
		return nil
	}
	if _, err := r.db.Exec(`DELETE FROM search_history WHERE term = ?`, term); err != nil {
		return err
	}
	_, err := r.db.Exec(
		`INSERT INTO search_history (term, searched_at) VALUES (?, ?)`,
		term, time.Now(),
	)
	return err
}

// RecentSearches returns up to limit terms, most recent first.
func (r *Repository) RecentSearches(limit int) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT term FROM search_history ORDER BY searched_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

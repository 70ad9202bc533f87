package vocab

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store persists entries in a SQLite database. List-valued fields are
// kept as JSON columns.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS vocab (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	translations TEXT NOT NULL,
	sentences TEXT NOT NULL
);`

// Open opens (and if needed creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts the entry when its ID is zero, otherwise updates the
// existing row. On insert the assigned ID is written back.
func (s *Store) Put(e *Entry) error {
	translations, err := json.Marshal(e.Translations)
	if err != nil {
		return fmt.Errorf("encoding translations: %w", err)
	}
	sentences, err := json.Marshal(e.Sentences)
	if err != nil {
		return fmt.Errorf("encoding sentences: %w", err)
	}

	if e.ID == 0 {
		res, err := s.db.Exec(
			"INSERT INTO vocab (word, translations, sentences) VALUES (?, ?, ?)",
			e.Word, string(translations), string(sentences))
		if err != nil {
			return fmt.Errorf("inserting entry: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading insert id: %w", err)
		}
		e.ID = id
		return nil
	}

	if _, err := s.db.Exec(
		"UPDATE vocab SET word = ?, translations = ?, sentences = ? WHERE id = ?",
		e.Word, string(translations), string(sentences), e.ID); err != nil {
		return fmt.Errorf("updating entry %d: %w", e.ID, err)
	}
	return nil
}

// Get fetches one entry by id.
func (s *Store) Get(id int64) (*Entry, error) {
	row := s.db.QueryRow("SELECT id, word, translations, sentences FROM vocab WHERE id = ?", id)
	return scanEntry(row)
}

// Delete removes an entry. Deleting an unknown id is not an error.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM vocab WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}
	return nil
}

// All returns every entry, newest first.
func (s *Store) All() ([]*Entry, error) {
	rows, err := s.db.Query("SELECT id, word, translations, sentences FROM vocab ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var e Entry
	var translations, sentences string
	if err := row.Scan(&e.ID, &e.Word, &translations, &sentences); err != nil {
		return nil, fmt.Errorf("scanning entry: %w", err)
	}
	if err := json.Unmarshal([]byte(translations), &e.Translations); err != nil {
		return nil, fmt.Errorf("decoding translations: %w", err)
	}
	if err := json.Unmarshal([]byte(sentences), &e.Sentences); err != nil {
		return nil, fmt.Errorf("decoding sentences: %w", err)
	}
	return &e, nil
}

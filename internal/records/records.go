// Package records keeps local best times, one sorted list per board
// configuration, in a small sqlite database.
package records

import (
	"bytes"
	"cmp"
	"database/sql"
	"encoding/gob"
	"fmt"
	"slices"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Keep keeps the leaderboard of each configuration this long.
const Keep = 10

var ErrNotFound = fmt.Errorf("no records for this configuration")

type Record struct {
	Playtime time.Duration
	WonAt    time.Time
}

// Store is a key-value table keyed by board configuration, holding a
// gob-encoded slice of records ordered fastest first.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open records db: %w", err)
	}
	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS records (
	key		TEXT PRIMARY KEY,
	value	BLOB
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to create records table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func key(width, height, mineCount int) string {
	return fmt.Sprintf("%dx%d(%d)", width, height, mineCount)
}

// Best returns the records for a configuration, fastest first. A
// configuration that was never won yields [ErrNotFound].
func (s *Store) Best(width, height, mineCount int) ([]Record, error) {
	var blob []byte
	err := s.db.QueryRow(
		`SELECT value FROM records WHERE key = ?;`,
		key(width, height, mineCount),
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	var records []Record
	dec := gob.NewDecoder(bytes.NewReader(blob))
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// Add inserts a won round into its configuration's leaderboard, dropping
// anything beyond the [Keep] fastest, and returns the updated list.
func (s *Store) Add(width, height, mineCount int, rec Record) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.Best(width, height, mineCount)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	at, _ := slices.BinarySearchFunc(records, rec, func(a, b Record) int {
		return cmp.Compare(a.Playtime, b.Playtime)
	})
	records = slices.Insert(records, at, rec)
	if len(records) > Keep {
		records = records[:Keep]
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(records); err != nil {
		return nil, err
	}
	_, err = s.db.Exec(`
INSERT INTO records (key, value)
VALUES(?, ?)
ON CONFLICT(key)
DO UPDATE SET value=excluded.value;`,
		key(width, height, mineCount), buf.Bytes())
	if err != nil {
		return nil, err
	}
	return records, nil
}

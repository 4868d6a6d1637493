package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Record is one solve run as stored in history and returned by the API.
type Record struct {
	ID            string    `json:"id"`
	Algorithm     string    `json:"algorithm"`
	Heuristic     string    `json:"heuristic"`
	Found         bool      `json:"found"`
	Cost          int       `json:"cost"`
	Length        int       `json:"length"`
	Path          string    `json:"path"`
	Rendered      string    `json:"rendered"`
	ElapsedMs     float64   `json:"elapsed_ms"`
	Expanded      int       `json:"expanded"`
	Generated     int       `json:"generated"`
	MaxFrontier   int       `json:"max_frontier"`
	MaxExplored   int       `json:"max_explored"`
	MaxStructures int       `json:"max_structures"`
	Complete      string    `json:"complete"`
	Optimal       string    `json:"optimal"`
	SolvedAt      time.Time `json:"solved_at"`
}

// Store persists run records in a badger database keyed by run id.
type Store struct {
	db *badger.DB
}

// OpenStore opens the history database rooted at dir, creating it if
// needed. An empty dir opens an in-memory database whose contents vanish
// on Close.
func OpenStore(dir string) (*Store, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Put stores one record under its id, overwriting any previous value.
func (s *Store) Put(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(rec.ID), data)
	})
	if err != nil {
		return fmt.Errorf("store record %s: %w", rec.ID, err)
	}
	return nil
}

// Get loads one record by id. The bool reports whether it exists.
func (s *Store) Get(id string) (Record, bool, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if err != nil {
			return err
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, &rec)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("load record %s: %w", id, err)
	}
	return rec, true, nil
}

// List returns every stored record, newest solve first.
func (s *Store) List() ([]Record, error) {
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var rec Record
			if err := json.Unmarshal(data, &rec); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].SolvedAt.After(records[j].SolvedAt)
	})
	return records, nil
}

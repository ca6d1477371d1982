package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "table/"

// ErrNotFound reports a lookup for a table file with no manifest record.
var ErrNotFound = errors.New("manifest: record not found")

// Record describes one generated table file.
type Record struct {
	File        string    `json:"file"`
	SHA256      string    `json:"sha256"`
	Bytes       int64     `json:"bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Problem describes one table file that failed verification.
type Problem struct {
	File   string
	Reason string
}

// Store wraps BadgerDB for persistent manifest records.
type Store struct {
	db *badger.DB
}

// Open opens the manifest database under dir, creating it if needed.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the manifest database in the platform data directory.
func OpenDefault() (*Store, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put stores or replaces the record for one table file.
func (s *Store) Put(rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+rec.File), data)
	})
}

// Get loads the record for a table file name, ErrNotFound if absent.
func (s *Store) Get(file string) (*Record, error) {
	rec := &Record{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + file))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%s: %w", file, ErrNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// All returns every stored record in key order.
func (s *Store) All() ([]*Record, error) {
	var recs []*Record

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			rec := &Record{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// RecordFile digests the table file at path and stores a record for it under
// its base name.
func (s *Store) RecordFile(path string) (*Record, error) {
	sum, size, err := FileDigest(path)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		File:        filepath.Base(path),
		SHA256:      sum,
		Bytes:       size,
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.Put(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Verify re-digests every recorded table file under dir and reports the
// ones that are missing or no longer match their record. An empty problem
// list means the directory agrees with the manifest.
func (s *Store) Verify(dir string) ([]Problem, error) {
	recs, err := s.All()
	if err != nil {
		return nil, err
	}

	var problems []Problem
	for _, rec := range recs {
		path := filepath.Join(dir, rec.File)
		sum, size, err := FileDigest(path)
		if os.IsNotExist(err) {
			problems = append(problems, Problem{File: rec.File, Reason: "missing"})
			continue
		}
		if err != nil {
			return nil, err
		}
		if size != rec.Bytes {
			problems = append(problems, Problem{
				File:   rec.File,
				Reason: fmt.Sprintf("size %d, manifest has %d", size, rec.Bytes),
			})
			continue
		}
		if sum != rec.SHA256 {
			problems = append(problems, Problem{File: rec.File, Reason: "content digest mismatch"})
		}
	}
	return problems, nil
}

// FileDigest returns the hex SHA-256 digest and size of the file at path.
func FileDigest(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}

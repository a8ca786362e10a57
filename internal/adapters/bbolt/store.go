// Package bbolt implements the ports.Storage run log using bbolt (embedded
// B+ tree). Runs append under monotonically increasing sequence keys with
// JSON values. Writes are transactional — a crash mid-write cannot corrupt
// previously committed records.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/astdump/internal/ports"
)

var bucketRuns = []byte("runs")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun appends one run under the next bucket sequence number, so
// iteration order is append order.
func (s *Store) RecordRun(r *ports.Run) error {
	if r == nil {
		return fmt.Errorf("nil run")
	}
	value, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return b.Put(key[:], value)
	})
}

// Runs returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) Runs(limit int) ([]*ports.Run, error) {
	var runs []*ports.Run
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil // nothing recorded yet
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			var r ports.Run
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshal run: %w", err)
			}
			runs = append(runs, &r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Package snapshot keeps the last payment-type list the console fetched, in a
// single BoltDB file, so a later run can still show something when the
// backend is unreachable.
package snapshot

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "github.com/boltdb/bolt"

	"carniceria-admin/services/admin-console/internal/models"
)

const (
	bucketName = "tipopago"
	listKey    = "list"
)

// ErrEmpty is returned by Load before the first Save.
var ErrEmpty = errors.New("no snapshot stored")

type record struct {
	List    []models.PaymentType `json:"list"`
	SavedAt time.Time            `json:"saved_at"`
}

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the snapshot file and ensures the bucket exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored list. Writing the same list twice skips the write.
func (s *Store) Save(list []models.PaymentType) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		if existing := b.Get([]byte(listKey)); existing != nil {
			var rec record
			if err := json.Unmarshal(existing, &rec); err == nil && equal(rec.List, list) {
				return nil
			}
		}

		data, err := json.Marshal(record{List: list, SavedAt: time.Now().UTC()})
		if err != nil {
			return err
		}
		return b.Put([]byte(listKey), data)
	})
}

// Load returns the stored list, or ErrEmpty.
func (s *Store) Load() ([]models.PaymentType, error) {
	rec, err := s.load()
	if err != nil {
		return nil, err
	}
	return rec.List, nil
}

// SavedAt reports when the stored list was written.
func (s *Store) SavedAt() (time.Time, error) {
	rec, err := s.load()
	if err != nil {
		return time.Time{}, err
	}
	return rec.SavedAt, nil
}

func (s *Store) load() (*record, error) {
	var rec record

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(listKey))
		if v == nil {
			return ErrEmpty
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return nil, err
	}

	if rec.List == nil {
		rec.List = []models.PaymentType{}
	}
	return &rec, nil
}

func equal(a, b []models.PaymentType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Package prefs persists the dashboard's single durable preference, the
// calculation method, in a local bbolt key-value file. Everything else in the
// system is deliberately in-memory only.
package prefs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/platformetrics/maturityboard/internal/aggregate"
	"github.com/platformetrics/maturityboard/internal/errors"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketName = "preferences"

	// KeyCalculationMethod stores the active aggregation method.
	KeyCalculationMethod = "calculationMethod"
)

// Store is a tiny persisted key-value preference store.
type Store struct {
	db *bolt.DB
}

// Open opens (creating as needed) the preference database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.StorageError(err, "failed to create preference directory").WithContext("path", path)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.StorageError(err, "failed to open preference store").WithContext("path", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.StorageError(err, "failed to initialize preference store")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, or "" when unset.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			value = string(v)
		}
		return nil
	})
	if err != nil {
		return "", errors.StorageError(err, "failed to read preference")
	}
	return value, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return errors.StorageError(err, "failed to write preference")
	}
	return nil
}

// CalculationMethod returns the persisted aggregation method. Absence or an
// unrecognized stored value both fall back to the simple mean.
func (s *Store) CalculationMethod() aggregate.Method {
	raw, err := s.Get(KeyCalculationMethod)
	if err != nil || raw == "" {
		return aggregate.MethodSimple
	}
	method, err := aggregate.ParseMethod(raw)
	if err != nil {
		return aggregate.MethodSimple
	}
	return method
}

// SetCalculationMethod persists the aggregation method.
func (s *Store) SetCalculationMethod(m aggregate.Method) error {
	return s.Set(KeyCalculationMethod, m.String())
}

package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/turbogarage/garage/internal/model"
)

// ErrCorruptSnapshot is returned when the persisted collection exists
// but cannot be deserialized.
//
// Callers treat this as non-fatal: they report it and fall back to the
// seed catalog instead of crashing startup.
var ErrCorruptSnapshot = errors.New("persisted collection is corrupt")

const (
	bucketName = "turbogarage"
	storageKey = "hotwheels-collection"
)

// Bolt persists the full collection under one fixed key in a bbolt
// database.
//
// The whole ordered car list is serialized as a single JSON value, so a
// save is always a full-state write and last-write-wins holds trivially.
//
// Example:
//
//	mirror, err := persist.Open("/home/user/.turbogarage/garage.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mirror.Close()
//
//	cars, found, err := mirror.Load()
type Bolt struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path and ensures the storage
// bucket exists. Parent directories are created as needed.
func Open(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create storage bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Load reads the persisted collection snapshot.
//
// found is false when nothing has been persisted yet. A stored value
// that fails to decode returns an error wrapping ErrCorruptSnapshot.
func (b *Bolt) Load() (cars []model.Car, found bool, err error) {
	var raw []byte
	err = b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(storageKey)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read collection: %w", err)
	}
	if raw == nil {
		return nil, false, nil
	}

	if err := json.Unmarshal(raw, &cars); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return cars, true, nil
}

// Save overwrites the persisted snapshot with the given full list.
func (b *Bolt) Save(cars []model.Car) error {
	data, err := json.Marshal(cars)
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(storageKey), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (b *Bolt) Close() error {
	return b.db.Close()
}

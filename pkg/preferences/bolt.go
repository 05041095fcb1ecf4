package preferences

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var themeBucket = []byte("themes")

// BoltDB holds theme preferences for many keys (one per HTTP session) in one bbolt file
type BoltDB struct {
	db *bbolt.DB
}

// OpenBolt opens or creates the database at path
func OpenBolt(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(themeBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bolt: create bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

func (b *BoltDB) Close() error {
	return b.db.Close()
}

// For returns a Store scoped to key
func (b *BoltDB) For(key string) Store {
	return &boltStore{db: b.db, key: []byte(key)}
}

// Delete removes the preference stored for key
func (b *BoltDB) Delete(key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(themeBucket).Delete([]byte(key))
	})
}

type boltStore struct {
	db  *bbolt.DB
	key []byte
}

func (s *boltStore) GetTheme() (Theme, error) {
	theme := ThemeNone
	err := s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(themeBucket).Get(s.key)
		if value == nil {
			return nil
		}
		return theme.UnmarshalText(value)
	})
	return theme, err
}

func (s *boltStore) SetTheme(theme Theme) error {
	value, err := theme.MarshalText()
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(themeBucket).Put(s.key, value)
	})
}

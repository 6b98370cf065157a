package boltstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	bolt "go.etcd.io/bbolt"
)

// Bucket names. Each holds one nested bucket per user, keyed by record id.
const (
	BucketTransactions       = "transactions"
	BucketInstallments       = "installments"
	BucketRecurringTemplates = "recurring_templates"
	BucketDebts              = "debts"
	BucketSettings           = "settings"
)

// settingsKey is the only key inside a user's settings bucket.
const settingsKey = "settings"

// Store keeps every user's data in one bbolt file.
type Store struct {
	db *bolt.DB
}

// New prepares the top-level buckets of db.
func New(db *bolt.DB) (*Store, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		buckets := []string{BucketTransactions, BucketInstallments, BucketRecurringTemplates, BucketDebts, BucketSettings}
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewRepositoryProvider builds every bbolt-backed repository over one store.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: &TransactionRepository{store: s},
		InstallmentRepo: &InstallmentRepository{store: s},
		RecurringRepo:   &RecurringRepository{store: s},
		DebtRepo:        &DebtRepository{store: s},
		SettingsRepo:    &SettingsRepository{store: s},
	}
}

func storeError(message string, err error) error {
	return apperrors.NewAppError(500, message, err)
}

// userBucket returns the user's bucket inside name, or nil when the user has none yet.
func userBucket(tx *bolt.Tx, name, userID string) *bolt.Bucket {
	root := tx.Bucket([]byte(name))
	if root == nil {
		return nil
	}
	return root.Bucket([]byte(userID))
}

// put stores value under key. With replace set, the key must already exist.
func (s *Store) put(name, userID, key string, value any, replace bool) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", name, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket([]byte(name))
		if root == nil {
			return fmt.Errorf("bucket %s not found", name)
		}
		b, err := root.CreateBucketIfNotExists([]byte(userID))
		if err != nil {
			return err
		}
		if replace && b.Get([]byte(key)) == nil {
			return apperrors.NewNotFoundError(name + " " + key + " not found")
		}
		return b.Put([]byte(key), data)
	})
	if err != nil && !isNotFound(err) {
		return storeError("failed to write "+name+" "+key, err)
	}
	return err
}

// get decodes the record under key into value.
func (s *Store) get(name, userID, key string, value any) error {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := userBucket(tx, name, userID)
		if b == nil {
			return apperrors.ErrNotFound
		}
		v := b.Get([]byte(key))
		if v == nil {
			return apperrors.ErrNotFound
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return err
		}
		return storeError("failed to read "+name+" "+key, err)
	}
	if err := json.Unmarshal(data, value); err != nil {
		return storeError("failed to decode "+name+" "+key, err)
	}
	return nil
}

// remove deletes key, reporting apperrors.ErrNotFound when it is absent.
func (s *Store) remove(name, userID, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := userBucket(tx, name, userID)
		if b == nil || b.Get([]byte(key)) == nil {
			return apperrors.NewNotFoundError(name + " " + key + " not found")
		}
		return b.Delete([]byte(key))
	})
	if err != nil && !isNotFound(err) {
		return storeError("failed to delete "+name+" "+key, err)
	}
	return err
}

// update applies fn to the decoded record under key and writes it back in one bbolt transaction.
func update[M any](s *Store, name, userID, key string, fn func(*M)) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := userBucket(tx, name, userID)
		if b == nil {
			return apperrors.NewNotFoundError(name + " " + key + " not found")
		}
		v := b.Get([]byte(key))
		if v == nil {
			return apperrors.NewNotFoundError(name + " " + key + " not found")
		}
		var m M
		if err := json.Unmarshal(v, &m); err != nil {
			return fmt.Errorf("failed to decode %s %s: %w", name, key, err)
		}
		fn(&m)
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
	if err != nil && !isNotFound(err) {
		return storeError("failed to update "+name+" "+key, err)
	}
	return err
}

// list decodes every record of the user. Undecodable records are logged and skipped.
func list[M any](ctx context.Context, s *Store, name, userID string) ([]M, error) {
	var out []M
	err := s.db.View(func(tx *bolt.Tx) error {
		b := userBucket(tx, name, userID)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var m M
			if err := json.Unmarshal(v, &m); err != nil {
				middleware.GetLoggerFromCtx(ctx).Warn("Skipping undecodable record",
					slog.String("bucket", name),
					slog.String("key", string(k)),
					slog.String("error", err.Error()))
				return nil
			}
			out = append(out, m)
			return nil
		})
	})
	if err != nil {
		return nil, storeError("failed to list "+name, err)
	}
	return out, nil
}

func warnMalformed(ctx context.Context, name string, err error) {
	if err == nil {
		return
	}
	middleware.GetLoggerFromCtx(ctx).Warn("Skipping malformed stored records",
		slog.String("bucket", name),
		slog.String("error", err.Error()))
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

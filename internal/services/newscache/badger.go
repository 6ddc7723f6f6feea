package newscache

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/models"
)

const badgerKeyPrefix = "news:"

// BadgerCache is a disk-backed TTL cache of raw news items. Entries are
// JSON-encoded and expire via badger's native entry TTL, so freshness
// survives process restarts. Any storage error degrades to a cache miss.
type BadgerCache struct {
	db     *badger.DB
	ttl    time.Duration
	logger arbor.ILogger
}

// NewBadgerCache opens (or creates) the badger store at path.
func NewBadgerCache(path string, ttl time.Duration, logger arbor.ILogger) (*BadgerCache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	logger.Debug().Str("path", path).Msg("Opening news cache database")

	options := badger.DefaultOptions(path)
	options.Logger = nil // Disable default badger logger to use arbor

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open news cache database: %w", err)
	}

	return &BadgerCache{
		db:     db,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Get returns the cached items for a ticker when present and unexpired.
func (c *BadgerCache) Get(ticker string) ([]models.RawNewsItem, bool) {
	key := []byte(badgerKeyPrefix + normalizeKey(ticker))

	var items []models.RawNewsItem
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &items)
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, false
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("News cache read failed")
		return nil, false
	}

	return items, true
}

// Put stores the items for a ticker with the configured TTL.
func (c *BadgerCache) Put(ticker string, items []models.RawNewsItem) {
	key := []byte(badgerKeyPrefix + normalizeKey(ticker))

	data, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("News cache encode failed")
		return
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, data).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("News cache write failed")
	}
}

// Close closes the underlying database.
func (c *BadgerCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

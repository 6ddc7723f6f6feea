// Package newscache provides the raw-news TTL cache that sits between
// the sentiment pipeline and the market data provider. The cache is a
// performance layer only: every miss falls through to a live fetch.
package newscache

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerpulse/internal/common"
	"github.com/ternarybob/tickerpulse/internal/interfaces"
)

// New builds the configured cache: nil when caching is disabled,
// badger-backed when a path is set, memory-only otherwise. The returned
// closer is non-nil only for the badger layer.
func New(config common.CacheConfig, clock interfaces.Clock, logger arbor.ILogger) (interfaces.NewsCache, func() error, error) {
	if !config.Enabled {
		return nil, nil, nil
	}

	if config.Path != "" {
		cache, err := NewBadgerCache(config.Path, config.TTL, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("path", config.Path).Dur("ttl", config.TTL).Msg("News cache enabled (persistent)")
		return cache, cache.Close, nil
	}

	logger.Info().Dur("ttl", config.TTL).Msg("News cache enabled (memory)")
	return NewMemoryCache(config.TTL, clock), nil, nil
}

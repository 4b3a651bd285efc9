// Package store opens and owns the process-wide database handles
package store

import (
	"context"

	perr "anchors/internal/platform/errors"
	"anchors/internal/platform/logger"
	"anchors/internal/platform/store/pg"
)

// Config selects which backends to open
type Config struct {
	PG PGConfig
}

// PGConfig configures the Postgres pool
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32
}

// Store bundles the opened handles
type Store struct {
	PG *pg.PG
}

// Option mutates open-time settings
type Option func(*options)

type options struct {
	log logger.Logger
}

// WithLogger attaches a logger used for open/close events
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Open connects the configured backends, pinging each before returning
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	var o options
	o.log = *logger.Get()
	for _, fn := range opts {
		fn(&o)
	}

	s := &Store{}
	if cfg.PG.Enabled {
		if cfg.PG.URL == "" {
			return nil, perr.InvalidArgf("store: postgres enabled without URL")
		}
		p, err := pg.Open(ctx, pg.Config{URL: cfg.PG.URL, MaxConns: cfg.PG.MaxConns})
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "store: open postgres")
		}
		s.PG = p
		o.log.Info().Msg("postgres pool opened")
	}
	return s, nil
}

// Close releases all opened handles
func (s *Store) Close(ctx context.Context) error {
	if s.PG != nil {
		s.PG.Close()
	}
	return nil
}

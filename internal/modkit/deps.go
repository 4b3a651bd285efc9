package modkit

import (
	"anchors/internal/platform/config"
	"anchors/internal/platform/logger"
	"anchors/internal/platform/store/pg"
)

// Deps holds core dependencies passed to modules.
// This is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  pg.Querier
}

// ZeroOK returns true when deps are safe to use with zero values in tests.
// Consumers should still nil check optional stores
func (d Deps) ZeroOK() bool { return true }

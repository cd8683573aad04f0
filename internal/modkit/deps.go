// Package modkit provides module wiring and core deps
package modkit

import (
	"moodroom/internal/modkit/repokit"
	"moodroom/internal/platform/clock"
	"moodroom/internal/platform/config"
	"moodroom/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	Clock clock.Clock
}

// Now returns the clock, falling back to the system clock for zero Deps in tests
func (d Deps) Now() clock.Clock {
	if d.Clock == nil {
		return clock.System{}
	}
	return d.Clock
}

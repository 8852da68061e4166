// Package plannerlog provides the zap-based logging conventions shared by
// every planner: a production logger for real use and a zaptest-backed
// logger for tests, matching the motionplan snapshots that build zap
// directly rather than through a larger framework logging wrapper.
package plannerlog

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// New builds a production *zap.SugaredLogger.
func New() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

// Nop returns a logger that discards everything, used as the default on a
// freshly constructed planner before a caller attaches a real logger.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// NewTestLogger returns a logger that writes through t.Log, for use in
// planner tests.
func NewTestLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	return zaptest.NewLogger(t).Sugar()
}

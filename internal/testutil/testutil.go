// Package testutil holds shared helpers for passforge tests.
package testutil

import (
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/goleak"
)

var loggerInitOnce sync.Once

// InitTestLogger silences the global logger for tests.
func InitTestLogger(t *testing.T) {
	t.Helper()
	loggerInitOnce.Do(func() {
		log.Logger = zerolog.New(io.Discard)
	})
}

// VerifyNoLeaks verifies that no goroutines are leaked during test
// execution. Defer it at the start of tests that open files or
// terminals.
func VerifyNoLeaks(t *testing.T) {
	t.Helper()
	goleak.VerifyNone(t, defaultOptions()...)
}

// defaultOptions returns common ignore patterns for testing framework goroutines
func defaultOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("testing.tRunner.func1"),
		goleak.IgnoreTopFunction("testing.runTests"),
		goleak.IgnoreTopFunction("testing.(*M).Run"),
		goleak.IgnoreTopFunction("testing.(*testContext).waitParallel"),
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
	}
}

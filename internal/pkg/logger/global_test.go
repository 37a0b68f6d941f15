package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGlobalLogger_ConcurrentFallback(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()

	const goroutines = 16
	loggers := make([]*ZapLogger, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, loggers[0])
	for _, l := range loggers[1:] {
		assert.Same(t, loggers[0], l, "all callers see the same fallback instance")
	}
}

func TestSetGlobalLogger_ReplacesInstance(t *testing.T) {
	custom, err := NewZapLogger(ConsoleLogger, "error", "")
	require.NoError(t, err)

	SetGlobalLogger(custom)
	assert.Same(t, custom, GetGlobalLogger())
}

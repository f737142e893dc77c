package logging

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockOutput struct {
	entries []LogEntry
	mu      sync.Mutex
	closed  bool
}

func NewMockOutput() *MockOutput {
	return &MockOutput{
		entries: make([]LogEntry, 0),
	}
}

func (m *MockOutput) Write(entry LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("output is closed")
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockOutput) Sync() error {
	return nil
}

func (m *MockOutput) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MockOutput) GetEntries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries
}

func TestNewLogger(t *testing.T) {
	mockOutput := NewMockOutput()
	defaultFields := map[string]interface{}{
		"service": "test",
		"version": "1.0",
	}

	cfg := Config{
		Severity:      INFO,
		Outputs:       []Output{mockOutput},
		DefaultFields: defaultFields,
	}

	logger := NewLogger(cfg)

	assert.Equal(t, INFO, logger.severity)
	assert.Equal(t, defaultFields, logger.fields)
}

func TestGlobalLogger(t *testing.T) {
	// Test default logger creation
	logger1 := GetLogger()
	assert.NotNil(t, logger1)

	// Test setting custom logger
	mockOutput := NewMockOutput()
	custom := NewLogger(Config{
		Severity: DEBUG,
		Outputs:  []Output{mockOutput},
	})
	SetLogger(custom)
	assert.Equal(t, custom, GetLogger())

	// Restore the original
	SetLogger(logger1)
}

func TestSeverityFiltering(t *testing.T) {
	mockOutput := NewMockOutput()
	logger := NewLogger(Config{
		Severity: WARN,
		Outputs:  []Output{mockOutput},
	})

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	entries := mockOutput.GetEntries()
	assert.Len(t, entries, 2)
	assert.Equal(t, WARN, entries[0].Severity)
	assert.Equal(t, ERROR, entries[1].Severity)
}

func TestDefaultFieldsPropagate(t *testing.T) {
	mockOutput := NewMockOutput()
	logger := NewLogger(Config{
		Severity:      INFO,
		Outputs:       []Output{mockOutput},
		DefaultFields: map[string]interface{}{"suite": "dtlz"},
	})

	logger.Info(context.Background(), "evaluating")

	entries := mockOutput.GetEntries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "dtlz", entries[0].Fields["suite"])
	assert.Equal(t, "evaluating", entries[0].Message)
}

func TestCallerInformation(t *testing.T) {
	mockOutput := NewMockOutput()
	logger := NewLogger(Config{
		Severity: DEBUG,
		Outputs:  []Output{mockOutput},
	})

	logger.Info(context.Background(), "with caller")

	entries := mockOutput.GetEntries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "logger_test.go", entries[0].File)
	assert.NotZero(t, entries[0].Line)
}

func TestConcurrentLogging(t *testing.T) {
	mockOutput := NewMockOutput()
	logger := NewLogger(Config{
		Severity: DEBUG,
		Outputs:  []Output{mockOutput},
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info(context.Background(), "message %d", n)
		}(i)
	}
	wg.Wait()

	assert.Len(t, mockOutput.GetEntries(), 10)
}

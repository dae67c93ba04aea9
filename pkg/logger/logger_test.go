//go:build unit

package logger

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger_Logf(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}

func TestDefaultLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	logger := &defaultLogger{out: &buf}

	logger.Logf("test message with args: %s", "value")

	assert.Equal(t, "test message with args: value\n", buf.String())
}

func TestDefaultLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := &defaultLogger{out: &buf}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Logf("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestActionsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewActionsLoggerTo(&buf)

	logger.Group("Lookups")
	logger.Logf("plain %d", 1)
	logger.Debugf("multi\nline 100%%")
	logger.Errorf("boom")
	logger.EndGroup()

	assert.Equal(t, "::group::Lookups\n"+
		"plain 1\n"+
		"::debug::multi%0Aline 100%25\n"+
		"::error::boom\n"+
		"::endgroup::\n", buf.String())
}

func TestActionsLogger_AsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewActionsLoggerTo(&buf).AsDebug()

	logger.Logf("lookup %s", "org/repo#1")

	assert.Equal(t, "::debug::lookup org/repo#1\n", buf.String())
}

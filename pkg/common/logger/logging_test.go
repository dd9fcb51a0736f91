package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSwitch(t *testing.T) {
	impl, ok := DefaultLogger.(*LLoggerImpl)
	require.True(t, ok)
	SetOpenLogger(false)
	assert.False(t, impl.ReadLoggerStatus())
	// 关闭后调用是无害的
	DefaultLogger.Info("dropped %d", 1024)
	SetOpenLogger(true)
	assert.True(t, impl.ReadLoggerStatus())
}

func TestNilLogger(t *testing.T) {
	old := DefaultLogger
	defer func() {
		DefaultLogger = old
	}()
	DefaultLogger = NilLogger{}
	DefaultLogger.Info("hello %d", 1024)
	DefaultLogger.Debug("hello")
	DefaultLogger.Warn("hello")
	DefaultLogger.Error("hello")
	DefaultLogger.Panic("hello")
}

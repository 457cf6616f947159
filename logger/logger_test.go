package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, zap.String("playlistId", "playlist-1"), String("playlistId", "playlist-1"))

	err := errors.New("boom")
	assert.Equal(t, zap.Error(err), ErrorField(err))
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	// 未初始化时所有输出函数都是空操作，不会崩溃
	Info("info before init")
	Warn("warn before init", String("key", "value"))
	Error("error before init", ErrorField(errors.New("boom")))
}

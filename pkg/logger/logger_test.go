package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("Test message", "key", "value")
	mock.Debug("Debug message")
	mock.Warn("Warning message")
	mock.Error("Error message", "error", "test error")

	assert.Len(t, *mock.Messages, 4)
	assert.True(t, mock.HasMessage("INFO", "Test message"))
	assert.True(t, mock.HasMessageContaining("ERROR", "Error"))
	assert.False(t, mock.HasMessageContaining("ERROR", "nothing like this"))

	withContext := mock.With("user", "test-user")
	withContext.Info("Context message")

	lastMsg := (*mock.Messages)[len(*mock.Messages)-1]
	assert.Equal(t, "Context message", lastMsg.Msg)

	user, ok := lastMsg.Arg("user")
	require.True(t, ok, "expected user context in args: %s", mock.String())
	assert.Equal(t, "test-user", user)

	msg, ok := mock.Find("ERROR", "Error message")
	require.True(t, ok)
	errArg, _ := msg.Arg("error")
	assert.Equal(t, "test error", errArg)

	mock.Clear()
	assert.Empty(t, *mock.Messages)
}

func TestLoggerInterface(_ *testing.T) {
	var _ Logger = &SlogLogger{}
	var _ Logger = &MockLogger{}
	var _ Logger = NopLogger{}

	testLogger := func(l Logger) {
		l.Info("test")
		l.Debug("debug")
		l.Warn("warn")
		l.Error("error")
		l.With("key", "value").Info("with context")
		l.WithGroup("group").Info("with group")
	}

	testLogger(NewMockLogger())
	testLogger(NewLoggerWithWriter(&bytes.Buffer{}, false, "text"))
	testLogger(NopLogger{})
}

func TestSlogLoggerFormats(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithWriter(&buf, false, "json")
		l.With("source", "employees.csv").Info("loaded", "employees", 3)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "loaded", entry["msg"])
		assert.Equal(t, "employees.csv", entry["source"])
		assert.EqualValues(t, 3, entry["employees"])
	})

	t.Run("debug suppressed by default", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithWriter(&buf, false, "text")
		l.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("debug enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithWriter(&buf, true, "text")
		l.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})
}

func TestGlobalLogger(t *testing.T) {
	original := GetGlobalLogger()
	t.Cleanup(func() { SetGlobalLogger(original) })

	mock := NewMockLogger()
	SetGlobalLogger(mock)

	Info("global info", "k", "v")
	Warn("global warn")
	GetGlobalLogger().With("source", "stdin").Debug("with source")
	Error("global error")

	assert.True(t, mock.HasMessage("INFO", "global info"))
	assert.True(t, mock.HasMessage("WARN", "global warn"))
	assert.True(t, mock.HasMessage("ERROR", "global error"))
	msg, ok := mock.Find("DEBUG", "with source")
	require.True(t, ok)
	src, _ := msg.Arg("source")
	assert.Equal(t, "stdin", src)
}

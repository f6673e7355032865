package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/wxaverages/internal/ports"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "pipeline"})
	require.NoError(t, err)

	derived := log.With("render_to", "monthaveragesplot")
	derived.Info(context.Background(), "chart rendered", "series", 5)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "chart rendered", entry["message"])
	require.Equal(t, "monthaveragesplot", entry["render_to"])
	require.Equal(t, "pipeline", entry["component"])
	require.Equal(t, 5.0, entry["series"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	log.Error(ctx, "fetch failed", "error", errors.New("boom"), "source", "json/averages.json")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "fetch failed", entry["message"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "json/averages.json", entry["source"])
	require.Equal(t, "abc-123", entry["correlation_id"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info(context.Background(), "ignored")
	require.IsType(t, ports.NoOpLogger{}, log.With("k", "v"))
}

func TestCorrelationIDFormat(t *testing.T) {
	t.Parallel()

	id := ports.GenerateCorrelationID()
	require.Len(t, id, 36)
	require.Equal(t, byte('4'), id[14])
	require.Empty(t, ports.GetCorrelationID(context.Background()))
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

// ── newLogger ────────────────────────────────────────────────────────────────

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "sync-engine")

	l.Info().Str("zone", "Bookmark").Msg("zone ready")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "sync-engine", entry["role"])
	assert.Equal(t, "Bookmark", entry["zone"])
	assert.Equal(t, "zone ready", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape", "caller is reported as a function name")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// ── child loggers ────────────────────────────────────────────────────────────

func TestWithStr_DoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client")

	child := parent.WithStr("account_id", "acc-1")
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "acc-1", entries[0]["account_id"])
	assert.NotContains(t, entries[1], "account_id")
	assert.Equal(t, "client", entries[0]["role"], "child keeps the parent's fields")
}

func TestGetChildLogger_UpdateContextIsLocal(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "server")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})
	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "t-1", entries[0]["trace_id"])
	assert.NotContains(t, entries[1], "trace_id")
}

// ── FromContext / FromRequest ────────────────────────────────────────────────

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := newLogger(&buf, "server").WithStr("trace_id", "abc")
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])

	assert.NotNil(t, FromContext(context.Background()), "a bare context still yields a logger")
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	attached := newLogger(&buf, "server").WithStr("account_id", "acc-2")

	req := httptest.NewRequest("GET", "/api/account", nil)
	req = req.WithContext(attached.WithContext(req.Context()))

	FromRequest(req).Warn().Msg("restricted")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "acc-2", entries[0]["account_id"])
	assert.Equal(t, "warn", entries[0]["level"])
}

// ── NewClientLogger ──────────────────────────────────────────────────────────

func TestNewClientLogger_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.log")

	NewClientLogger("client", path).Info().Msg("first")
	NewClientLogger("client", path).Info().Msg("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entries := decodeLines(t, bytes.NewBuffer(data))
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0]["message"])
	assert.Equal(t, "second", entries[1]["message"])
}

func TestNewClientLogger_UnwritablePathFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "sync.log")

	l := NewClientLogger("client", path)

	require.NotNil(t, l)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// ── SetLevel ─────────────────────────────────────────────────────────────────

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{level: "", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: " ERROR ", want: zerolog.ErrorLevel},
		{level: "chatty", want: zerolog.DebugLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)

			err := SetLevel(tt.level)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureLogger returns a logger writing JSON lines into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// logRecords decodes every JSON log line written to buf.
func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "decode log line %q", line)
		records = append(records, rec)
	}
	return records
}

// loggedFields returns the "field" attribute of every captured record.
func loggedFields(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var fields []string
	for _, rec := range logRecords(t, buf) {
		if f, ok := rec["field"].(string); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// writeConf writes content to a temporary application.conf.
func writeConf(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "application.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

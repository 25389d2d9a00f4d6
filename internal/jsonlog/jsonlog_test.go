package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONLogger(t *testing.T) {
	t.Run("INFO level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintInfo("server started", map[string]string{"addr": ":4000"})
		var entry struct {
			Level      string            `json:"level"`
			Message    string            `json:"message"`
			Properties map[string]string `json:"properties"`
		}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("log entry is not valid JSON: %v", err)
		}
		if entry.Level != "INFO" {
			t.Errorf("expected level INFO; got %s", entry.Level)
		}
		if entry.Message != "server started" {
			t.Errorf("expected message %q; got %q", "server started", entry.Message)
		}
		if entry.Properties["addr"] != ":4000" {
			t.Errorf("expected addr property %q; got %q", ":4000", entry.Properties["addr"])
		}
	})

	t.Run("ERROR level includes trace", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintError(errors.New("boom"), nil)
		if !strings.Contains(buf.String(), `"trace"`) {
			t.Error("expected error entry to include a stack trace")
		}
	})

	t.Run("entries below minimum level are dropped", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelError)
		l.PrintInfo("should not appear", nil)
		if buf.Len() != 0 {
			t.Errorf("expected no output; got %q", buf.String())
		}
	})

	t.Run("Write satisfies io.Writer at ERROR level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		if _, err := l.Write([]byte("http server error")); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), `"level":"ERROR"`) {
			t.Errorf("expected ERROR level entry; got %q", buf.String())
		}
	})
}

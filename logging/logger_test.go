package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}

	if again := NewLogger("test-component"); again != logger {
		t.Error("Expected NewLogger to cache loggers per component")
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		level   logrus.Level
		fields  logrus.Fields
		want    []string
		notWant []string
	}{
		{
			name:   "default",
			config: FormatConfig{},
			level:  logrus.InfoLevel,
			fields: logrus.Fields{"component": "jobslots", "sections": 3, "jobs": 5},
			want:   []string{"2024-01-02 03:04:05", "[INFO]", "jobslots", "Applied", "jobs=5 sections=3"},
		},
		{
			name:    "no timestamp or component",
			config:  FormatConfig{DisableTimestamp: true, DisableComponent: true},
			level:   logrus.WarnLevel,
			fields:  logrus.Fields{"component": "jobslots"},
			want:    []string{"[WARN]", "Applied"},
			notWant: []string{"2024-01-02", "jobslots"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Data:    tt.fields,
				Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				Level:   tt.level,
				Message: "Applied",
			}
			out, err := (&TextFormatter{Config: tt.config}).Format(entry)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(string(out), w) {
					t.Errorf("expected %q in %q", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(string(out), w) {
					t.Errorf("did not expect %q in %q", w, out)
				}
			}
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Setenv("JOBSLOTS_LOG_LEVEL", "")

	logPath := filepath.Join(t.TempDir(), "logs", "panel.log")
	entry := New("panel", Config{
		Level:  "debug",
		File:   FileSinkConfig{Enabled: true, Path: logPath},
		Format: FormatConfig{Preset: "json", StructuredToStderr: "never"},
	})

	if entry.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", entry.Logger.GetLevel())
	}

	entry.WithField("job", "Warden").Debug("Adjustment requested")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"job":"Warden"`) {
		t.Errorf("expected JSON log line, got %s", data)
	}
}

func TestEnvLevelOverride(t *testing.T) {
	t.Setenv("JOBSLOTS_LOG_LEVEL", "error")

	entry := New("panel", Config{Level: "debug", Format: FormatConfig{StructuredToStderr: "never"}})
	if entry.Logger.GetLevel() != logrus.ErrorLevel {
		t.Errorf("expected env to override level, got %v", entry.Logger.GetLevel())
	}
}

func TestGlobalOutput(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalOutput(&buf)
	defer SetGlobalOutput(os.Stderr)

	entry := New("panel", Config{Level: "info", Format: FormatConfig{Preset: "simple", StructuredToStderr: "always"}})
	entry.Info("hello")

	if !strings.Contains(buf.String(), "[INFO] hello") {
		t.Errorf("expected output through the global writer, got %q", buf.String())
	}
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)
	p.Success("Adjusted Warden")
	p.Field("slots", 3)

	out := buf.String()
	if !strings.Contains(out, "Adjusted Warden") || !strings.Contains(out, "slots") {
		t.Errorf("unexpected pretty output %q", out)
	}
}

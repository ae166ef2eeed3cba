package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/hello-service/internal/platform/timeutil"
)

// captureLogOutput captures everything logFn writes through the shared logger.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) string {
	t.Helper()

	resetLoggerForTest()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close writer: %v", closeErr)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read log output: %v", err)
	}
	return strings.TrimSpace(string(data))
}

// captureLogEntry captures a single JSON log entry.
func captureLogEntry(t *testing.T, logFn func(*zap.Logger)) map[string]any {
	t.Helper()

	line := captureLogOutput(t, logFn)
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON: %v", err)
	}
	return payload
}

// resetLoggerForTest clears the singleton state so tests can capture fresh log output.
func resetLoggerForTest() {
	loggerOnce = sync.Once{}
	baseLogger = nil
	sugarLogger = nil
	loggerErr = nil
	level.SetLevel(zapcore.InfoLevel)
}

func TestLoggerStructuredOutput(t *testing.T) {
	payload := captureLogEntry(t, func(l *zap.Logger) {
		l.Info("GET /health")
	})

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if _, exists := payload["level"]; exists {
		t.Fatalf("did not expect level field")
	}
	if msg := payload["message"]; msg != "GET /health" {
		t.Fatalf("expected message 'GET /health', got %v", msg)
	}
	if _, ok := payload["caller"].(string); !ok {
		t.Fatalf("expected caller field, got %v", payload["caller"])
	}
	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected timestamp string, got %T", payload["timestamp"])
	}
	if _, err := time.Parse(timeutil.RFC3339Micros, ts); err != nil {
		t.Fatalf("timestamp is not RFC3339Micros: %v", err)
	}
}

func TestSugarLoggerStructuredOutput(t *testing.T) {
	payload := captureLogEntry(t, func(*zap.Logger) {
		Sugar().Warnw("slow response", "latency_ms", 120)
	})

	if got := payload["severity"]; got != "WARNING" {
		t.Fatalf("expected severity WARNING, got %v", got)
	}
	if latency, ok := payload["latency_ms"].(float64); !ok || latency != 120 {
		t.Fatalf("expected latency_ms 120, got %v", payload["latency_ms"])
	}
}

func TestDebugLevelNotLoggedByDefault(t *testing.T) {
	out := captureLogOutput(t, func(l *zap.Logger) {
		l.Debug("hidden")
	})
	if out != "" {
		t.Fatalf("expected no output for debug entry, got %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { level.SetLevel(zapcore.InfoLevel) })

	tests := []struct {
		name    string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{" error ", zapcore.ErrorLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level.SetLevel(zapcore.InfoLevel)
			err := SetLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if Level() != tt.want {
				t.Fatalf("expected level %s, got %s", tt.want, Level())
			}
		})
	}
}

func TestSetLevelAppliesToBuiltLogger(t *testing.T) {
	out := captureLogOutput(t, func(l *zap.Logger) {
		if err := SetLevel("debug"); err != nil {
			t.Fatalf("SetLevel: %v", err)
		}
		l.Debug("now visible")
	})
	t.Cleanup(func() { level.SetLevel(zapcore.InfoLevel) })

	if !strings.Contains(out, `"severity":"DEBUG"`) || !strings.Contains(out, "now visible") {
		t.Fatalf("expected debug entry after SetLevel, got %q", out)
	}
}

func TestEncodeSeverityMapping(t *testing.T) {
	tests := []struct {
		level    zapcore.Level
		expected string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(99), "DEFAULT"},
	}

	for _, tt := range tests {
		enc := &captureArrayEncoder{}
		encodeSeverity(tt.level, enc)
		if len(enc.values) != 1 || enc.values[0] != tt.expected {
			t.Fatalf("encodeSeverity(%v) = %v, want %s", tt.level, enc.values, tt.expected)
		}
	}
}

func TestEncodeTimeMicrosFormatsCorrectly(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"UTC with microseconds", time.Date(2024, 6, 15, 10, 30, 45, 123456000, time.UTC), "2024-06-15T10:30:45.123456Z"},
		{"zero microseconds", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01-01T00:00:00.000000Z"},
		{"non-UTC converts", time.Date(2024, 6, 15, 12, 0, 0, 500000000, time.FixedZone("EST", -5*60*60)), "2024-06-15T17:00:00.500000Z"},
		{"sub-microsecond truncates", time.Date(2024, 3, 20, 8, 15, 30, 999999999, time.UTC), "2024-03-20T08:15:30.999999Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := &captureArrayEncoder{}
			encodeTimeMicros(tt.input, enc)
			if len(enc.values) != 1 || enc.values[0] != tt.expected {
				t.Fatalf("expected %q, got %v", tt.expected, enc.values)
			}
		})
	}
}

func TestLoggerSingleton(t *testing.T) {
	resetLoggerForTest()

	if Logger() != Logger() {
		t.Fatal("expected Logger() to return the same instance")
	}
	if Sugar() != Sugar() {
		t.Fatal("expected Sugar() to return the same instance")
	}
	if Logger().Core() != Sugar().Desugar().Core() {
		t.Fatal("expected Logger and Sugar to share the same core")
	}
	if err := Err(); err != nil {
		t.Fatalf("expected nil init error, got %v", err)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	resetLoggerForTest()

	var wg sync.WaitGroup
	results := make(chan *zap.Logger, 50)
	for range 50 {
		wg.Go(func() {
			results <- Logger()
		})
	}
	wg.Wait()
	close(results)

	first := <-results
	for l := range results {
		if l != first {
			t.Fatal("expected all goroutines to observe the same logger")
		}
	}
}

// captureArrayEncoder collects strings appended via the PrimitiveArrayEncoder interface.
type captureArrayEncoder struct {
	values []string
}

func (c *captureArrayEncoder) AppendBool(bool)             {}
func (c *captureArrayEncoder) AppendByteString([]byte)     {}
func (c *captureArrayEncoder) AppendComplex128(complex128) {}
func (c *captureArrayEncoder) AppendComplex64(complex64)   {}
func (c *captureArrayEncoder) AppendFloat64(float64)       {}
func (c *captureArrayEncoder) AppendFloat32(float32)       {}
func (c *captureArrayEncoder) AppendInt(int)               {}
func (c *captureArrayEncoder) AppendInt64(int64)           {}
func (c *captureArrayEncoder) AppendInt32(int32)           {}
func (c *captureArrayEncoder) AppendInt16(int16)           {}
func (c *captureArrayEncoder) AppendInt8(int8)             {}
func (c *captureArrayEncoder) AppendString(s string)       { c.values = append(c.values, s) }
func (c *captureArrayEncoder) AppendUint(uint)             {}
func (c *captureArrayEncoder) AppendUint64(uint64)         {}
func (c *captureArrayEncoder) AppendUint32(uint32)         {}
func (c *captureArrayEncoder) AppendUint16(uint16)         {}
func (c *captureArrayEncoder) AppendUint8(uint8)           {}
func (c *captureArrayEncoder) AppendUintptr(uintptr)       {}

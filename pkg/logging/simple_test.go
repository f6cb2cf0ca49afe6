package logging

import (
	"bytes"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/go-logr/logr"
)

// Test that if writer is nil, the sink defaults to os.Stderr.
func TestDefaultWriter(t *testing.T) {
	s := NewSimpleLogSink(nil, 1, true)
	if s.writer != os.Stderr {
		t.Errorf("expected default writer to be os.Stderr, got %v", s.writer)
	}
}

func TestEnabled(t *testing.T) {
	s := NewSimpleLogSink(&bytes.Buffer{}, LEVEL_DEBUG, true)
	if !s.Enabled(LEVEL_INFO) {
		t.Error("expected info to be enabled")
	}
	if !s.Enabled(LEVEL_DEBUG) {
		t.Error("expected debug to be enabled")
	}
	if s.Enabled(LEVEL_TRACE) {
		t.Error("expected trace to be disabled")
	}
}

func TestInfoLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 1, false)
	s.Info(0, "Scanning image", "path", "disc.iso")
	output := buf.String()

	if !strings.HasPrefix(output, "[INFO] Scanning image\n") {
		t.Errorf("unexpected first line, got %q", output)
	}
	if !strings.Contains(output, "  path: disc.iso\n") {
		t.Errorf("expected output to contain key-value pair, got %q", output)
	}
}

func TestInfoNotLoggedWhenDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 0, true)
	s.Info(1, "This should not be logged", "foo", "bar")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestErrorLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 0, true)
	s.Error(errors.New("sample error"), "Read failed", "sector", 3)
	output := buf.String()

	for _, want := range []string{"[ERROR]", "Read failed", "sector: 3", "error: sample error"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestChainedWithName(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 1, false)
	chain := s.WithName("probe").WithName("sector").(*SimpleLogSink)
	chain.Info(0, "Chained name")

	if !strings.Contains(buf.String(), "[probe.sector] Chained name") {
		t.Errorf("expected output to contain [probe.sector], got %q", buf.String())
	}
}

func TestWithValuesKeepsSettings(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, LEVEL_DEBUG, false)
	derived := s.WithValues("image", "a.iso").(*SimpleLogSink)
	derived.Info(LEVEL_DEBUG, "Derived")
	output := buf.String()

	if !strings.Contains(output, "[DEBUG] Derived") {
		t.Errorf("expected debug label without color codes, got %q", output)
	}
	if !strings.Contains(output, "image: a.iso") {
		t.Errorf("expected inherited key-value, got %q", output)
	}
	if len(s.keyValues) != 0 {
		t.Errorf("parent sink must not be modified, has %v", s.keyValues)
	}
}

func TestNonStringKey(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSimpleLogSink(buf, 1, true)
	s.Info(0, "Non-string key", 123, "value")

	if !strings.Contains(buf.String(), "key0: value") {
		t.Errorf("expected output to contain 'key0: value', got %q", buf.String())
	}
}

// Test that Init properly sets the callDepth field (using reflection because the field is unexported).
func TestInitSetsCallDepth(t *testing.T) {
	s := NewSimpleLogSink(&bytes.Buffer{}, 1, true)
	s.Init(logr.RuntimeInfo{CallDepth: 5})

	cd := reflect.ValueOf(s).Elem().FieldByName("callDepth").Int()
	if cd != 5 {
		t.Errorf("expected callDepth 5, got %d", cd)
	}
}

func TestNewSimpleLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSimpleLogger(buf, LEVEL_TRACE, false)
	logger.V(LEVEL_TRACE).Info("Read sector", "index", 2)

	if !strings.Contains(buf.String(), "[TRACE] Read sector") {
		t.Errorf("expected trace message, got %q", buf.String())
	}
}

func TestNewLoggerNilWriter(t *testing.T) {
	logger := NewLogger(nil, LEVEL_TRACE, false)
	if logger.Enabled() {
		t.Error("expected discarding logger for nil writer")
	}
}

func TestVerbosityFromFlags(t *testing.T) {
	cases := []struct {
		debug, trace bool
		want         int
	}{
		{false, false, LEVEL_INFO},
		{true, false, LEVEL_DEBUG},
		{false, true, LEVEL_TRACE},
		{true, true, LEVEL_TRACE},
	}
	for _, c := range cases {
		if got := VerbosityFromFlags(c.debug, c.trace); got != c.want {
			t.Errorf("VerbosityFromFlags(%v, %v) = %d, want %d", c.debug, c.trace, got, c.want)
		}
	}
}

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

var (
	infoColor  = color.New(color.FgGreen)
	debugColor = color.New(color.FgCyan)
	traceColor = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// SimpleLogSink implements logr.LogSink with human-readable, optionally colored, output. Key/value pairs are
// printed one per line, indented under the message.
type SimpleLogSink struct {
	writer       io.Writer
	minVerbosity int
	name         string
	keyValues    []interface{}
	mutex        *sync.Mutex
	callDepth    int
	useColor     bool
}

// NewSimpleLogSink creates a new SimpleLogSink. If writer is nil, it defaults to os.Stderr.
func NewSimpleLogSink(writer io.Writer, minVerbosity int, useColor bool) *SimpleLogSink {
	if writer == nil {
		writer = os.Stderr
	}
	return &SimpleLogSink{
		writer:       writer,
		minVerbosity: minVerbosity,
		keyValues:    []interface{}{},
		mutex:        &sync.Mutex{},
		useColor:     useColor,
	}
}

// NewSimpleLogger creates a new logr.Logger backed by a SimpleLogSink.
func NewSimpleLogger(writer io.Writer, minVerbosity int, useColor bool) logr.Logger {
	return logr.New(NewSimpleLogSink(writer, minVerbosity, useColor))
}

func (s *SimpleLogSink) Init(info logr.RuntimeInfo) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.callDepth = info.CallDepth
}

func (s *SimpleLogSink) Enabled(level int) bool {
	return level <= s.minVerbosity
}

func (s *SimpleLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(level) {
		return
	}
	s.write(s.label(false, level), msg, keysAndValues)
}

// Error is always written regardless of verbosity.
func (s *SimpleLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	kv := append(append([]interface{}{}, keysAndValues...), "error", err)
	s.write(s.label(true, 0), msg, kv)
}

func (s *SimpleLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	c := s.clone()
	c.keyValues = append(c.keyValues, keysAndValues...)
	return c
}

func (s *SimpleLogSink) WithName(name string) logr.LogSink {
	c := s.clone()
	if c.name != "" {
		c.name = c.name + "." + name
	} else {
		c.name = name
	}
	return c
}

// clone shares the writer lock so derived sinks never interleave lines.
func (s *SimpleLogSink) clone() *SimpleLogSink {
	return &SimpleLogSink{
		writer:       s.writer,
		minVerbosity: s.minVerbosity,
		name:         s.name,
		keyValues:    append([]interface{}{}, s.keyValues...),
		mutex:        s.mutex,
		callDepth:    s.callDepth,
		useColor:     s.useColor,
	}
}

func (s *SimpleLogSink) label(isError bool, level int) string {
	var text string
	var c *color.Color
	switch {
	case isError:
		text, c = "[ERROR]", errorColor
	case level == LEVEL_INFO:
		text, c = "[INFO]", infoColor
	case level == LEVEL_DEBUG:
		text, c = "[DEBUG]", debugColor
	case level == LEVEL_TRACE:
		text, c = "[TRACE]", traceColor
	default:
		return fmt.Sprintf("[LEVEL %d]", level)
	}
	if !s.useColor {
		return text
	}
	return c.Sprint(text)
}

func (s *SimpleLogSink) write(label, msg string, keysAndValues []interface{}) {
	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString(" ")
	if s.name != "" {
		fmt.Fprintf(&sb, "[%s] ", s.name)
	}
	sb.WriteString(msg)
	sb.WriteString("\n")

	all := append(append([]interface{}{}, s.keyValues...), keysAndValues...)
	for i := 0; i < len(all)-1; i += 2 {
		key, ok := all[i].(string)
		if !ok {
			key = fmt.Sprintf("key%d", i/2)
		}
		fmt.Fprintf(&sb, "  %s: %v\n", key, all[i+1])
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	_, _ = io.WriteString(s.writer, sb.String())
}

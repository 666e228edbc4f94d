// Package logger provides the console output used by the pattern demos.
//
// A ConsoleLogger plays two roles. It is an io.Writer for demo narration,
// indenting every line by the current group depth (see Group/GroupEnd).
// It also emits levelled diagnostic messages prefixed with [HH:MM:SS]
// timestamps, filtered by the configured log level. Colour is enabled
// automatically for terminal writers.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// groupIndent is the indentation added per open group.
const groupIndent = "  "

// ConsoleLogger writes narration and levelled log lines to a writer.
// It is safe for concurrent use.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	scheme      *colorScheme
	depth       int
	lineStart   bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
// Color output is enabled when writer is a terminal and NO_COLOR is unset.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	cl := &ConsoleLogger{
		writer:    writer,
		logLevel:  normalizeLogLevel(logLevel),
		scheme:    newColorScheme(),
		lineStart: true,
	}
	cl.SetColor(isTerminal(writer))
	return cl
}

// isTerminal reports whether w is a TTY-backed *os.File.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColor forces colour output on or off.
func (cl *ConsoleLogger) SetColor(enabled bool) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.colorOutput = enabled
	cl.scheme.enable(enabled)
}

// ColorEnabled reports whether colour output is on.
func (cl *ConsoleLogger) ColorEnabled() bool {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.colorOutput
}

// Level returns the normalized log level.
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return "info"
}

// IsValidLevel reports whether level is one of trace, debug, info, warn, error.
func IsValidLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	if cl.colorOutput {
		level = cl.scheme.level(level)
	}
	cl.writeLocked([]byte(fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Write implements io.Writer for narration. Each line is prefixed with the
// indentation of the currently open groups; empty lines are left bare.
func (cl *ConsoleLogger) Write(p []byte) (int, error) {
	if cl.writer == nil {
		return len(p), nil
	}
	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	if err := cl.writeLocked(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// writeLocked indents p line by line and writes it. cl.mutex must be held.
func (cl *ConsoleLogger) writeLocked(p []byte) error {
	if cl.depth == 0 {
		if len(p) > 0 {
			cl.lineStart = p[len(p)-1] == '\n'
		}
		_, err := cl.writer.Write(p)
		return err
	}

	indent := strings.Repeat(groupIndent, cl.depth)
	var buf bytes.Buffer
	for len(p) > 0 {
		line := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			line = p[:i+1]
		}
		if cl.lineStart && line[0] != '\n' {
			buf.WriteString(indent)
		}
		buf.Write(line)
		cl.lineStart = line[len(line)-1] == '\n'
		p = p[len(line):]
	}
	_, err := cl.writer.Write(buf.Bytes())
	return err
}

// Println writes message followed by a newline.
func (cl *ConsoleLogger) Println(message string) {
	fmt.Fprintln(cl, message)
}

// Printf writes a formatted narration line. A trailing newline is added.
func (cl *ConsoleLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(cl, format+"\n", args...)
}

// Success writes message in the success colour.
func (cl *ConsoleLogger) Success(message string) {
	cl.Println(cl.paint(cl.scheme.success, message))
}

// Failure writes message in the failure colour.
func (cl *ConsoleLogger) Failure(message string) {
	cl.Println(cl.paint(cl.scheme.fail, message))
}

// Group writes title in bold and indents subsequent narration by one level.
func (cl *ConsoleLogger) Group(title string) {
	cl.Println(cl.paint(cl.scheme.header, title))
	cl.mutex.Lock()
	cl.depth++
	cl.mutex.Unlock()
}

// GroupEnd closes the innermost group. Extra calls are ignored.
func (cl *ConsoleLogger) GroupEnd() {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	if cl.depth > 0 {
		cl.depth--
	}
}

// Depth returns the number of open groups.
func (cl *ConsoleLogger) Depth() int {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	return cl.depth
}

func (cl *ConsoleLogger) paint(c painter, s string) string {
	if !cl.ColorEnabled() {
		return s
	}
	return c.Sprint(s)
}

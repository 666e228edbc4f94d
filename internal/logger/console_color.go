package logger

import (
	"strings"

	"github.com/fatih/color"
)

// painter is the subset of *color.Color used for rendering.
type painter interface {
	Sprint(a ...interface{}) string
}

// colorScheme defines consistent colors for narration and log levels.
// Bold: group headers
// Green: success lines
// Red: failures and ERROR
// Yellow: WARN
// Cyan: DEBUG
type colorScheme struct {
	header  *color.Color
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	muted   *color.Color
	info    *color.Color
}

// newColorScheme creates the standard color scheme.
func newColorScheme() *colorScheme {
	return &colorScheme{
		header:  color.New(color.Bold),
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		muted:   color.New(color.FgHiBlack),
		info:    color.New(color.FgBlue),
	}
}

// enable overrides fatih/color's global TTY detection for this scheme, so a
// forced setting also applies when stdout itself is not a terminal.
func (s *colorScheme) enable(on bool) {
	for _, c := range s.all() {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (s *colorScheme) all() []*color.Color {
	return []*color.Color{s.header, s.success, s.fail, s.warn, s.label, s.muted, s.info}
}

// level colours a level tag such as "WARN".
func (s *colorScheme) level(level string) string {
	switch strings.ToUpper(level) {
	case "TRACE":
		return s.muted.Sprint(level)
	case "DEBUG":
		return s.label.Sprint(level)
	case "INFO":
		return s.info.Sprint(level)
	case "WARN":
		return s.warn.Sprint(level)
	case "ERROR":
		return s.fail.Sprint(level)
	default:
		return level
	}
}

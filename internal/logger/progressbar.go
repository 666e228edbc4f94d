package logger

import (
	"fmt"
	"strings"
)

// ProgressBar renders "[====      ] 2/6 (33%)" style progress for a
// multi-demo run.
type ProgressBar struct {
	current int
	total   int
	width   int
	prefix  string
}

// NewProgressBar creates a progress bar. A width below 1 defaults to 10.
func NewProgressBar(total, width int) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{total: total, width: width}
}

// Update sets the current progress value.
func (pb *ProgressBar) Update(current int) {
	pb.current = current
}

// Increment advances the bar by one.
func (pb *ProgressBar) Increment() {
	pb.current++
}

// SetPrefix sets a label rendered before the bar.
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.prefix = prefix
}

// Percentage returns the progress percentage clamped to 0-100.
func (pb *ProgressBar) Percentage() int {
	if pb.total <= 0 {
		return 0
	}
	perc := (pb.current * 100) / pb.total
	if perc > 100 {
		perc = 100
	}
	if perc < 0 {
		perc = 0
	}
	return perc
}

// Render returns the bar as plain text.
func (pb *ProgressBar) Render() string {
	perc := pb.Percentage()
	filled := (perc * pb.width) / 100
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", pb.width-filled)
	return fmt.Sprintf("%s[%s] %d/%d (%d%%)", pb.prefix, bar, pb.current, pb.total, perc)
}

// LogProgress logs the bar at DEBUG level.
func (cl *ConsoleLogger) LogProgress(pb *ProgressBar) {
	cl.LogDebug(pb.Render())
}

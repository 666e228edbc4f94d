// Package singleton demonstrates the Singleton pattern: one lazily created,
// process-wide instance shared by every caller.
package singleton

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Singleton is the shared instance. It cannot be constructed outside this
// package; use Instance.
type Singleton struct {
	now func() time.Time
}

type holder struct {
	once     sync.Once
	instance *Singleton
}

var global = &holder{}

// Instance returns the process-wide Singleton, creating it on first use.
// The creation notice is written to out only by the call that creates it.
func Instance(out io.Writer) *Singleton {
	return global.get(out)
}

func (h *holder) get(out io.Writer) *Singleton {
	h.once.Do(func() {
		h.instance = &Singleton{now: time.Now}
		fmt.Fprintln(out, "✅ Singleton instance created.")
	})
	return h.instance
}

// SayHello prints a greeting.
func (s *Singleton) SayHello(out io.Writer) {
	fmt.Fprintln(out, "Hello! I am the Singleton instance 👋")
}

// Log prints message prefixed with the current UTC time.
func (s *Singleton) Log(out io.Writer, message string) {
	ts := s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	fmt.Fprintf(out, "[%s] %s\n", ts, message)
}

// Run fetches the instance twice, shows both handles are the same
// instance, then uses it.
func Run(out io.Writer) error {
	first := Instance(out)
	second := Instance(out)
	fmt.Fprintf(out, "🔗 Both calls returned the same instance: %t\n", first == second)
	first.SayHello(out)
	first.Log(out, "Singleton demo log message")
	return nil
}

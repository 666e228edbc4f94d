// Package demo ties the pattern packages together: a Registry of runnable
// demos in catalog order and a Runner that frames each run on the console.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/patterns/internal/adapter"
	"github.com/harrison/patterns/internal/config"
	"github.com/harrison/patterns/internal/decorator"
	"github.com/harrison/patterns/internal/factory"
	"github.com/harrison/patterns/internal/logger"
	"github.com/harrison/patterns/internal/observer"
	"github.com/harrison/patterns/internal/singleton"
	"github.com/harrison/patterns/internal/visitor"
)

// Env is what a demo sees while running.
type Env struct {
	Out    io.Writer
	Log    *logger.ConsoleLogger
	Config *config.Config
}

// Demo is a single runnable pattern demonstration.
type Demo struct {
	Name  string // lookup key, lower case
	Title string // display name used in the run header
	Run   func(env *Env) error
}

// Registry holds demos in insertion order.
type Registry struct {
	demos []Demo
	index map[string]int
}

// NewRegistry builds a registry. Names are matched case-insensitively
// and must be unique.
func NewRegistry(demos ...Demo) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(demos))}
	for _, d := range demos {
		key := strings.ToLower(strings.TrimSpace(d.Name))
		if key == "" {
			return nil, fmt.Errorf("demo name cannot be empty")
		}
		if d.Run == nil {
			return nil, fmt.Errorf("demo %s has no run function", key)
		}
		if _, ok := r.index[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDemo, key)
		}
		d.Name = key
		r.index[key] = len(r.demos)
		r.demos = append(r.demos, d)
	}
	return r, nil
}

// Default returns the registry of every pattern demo in catalog order.
func Default() *Registry {
	r, err := NewRegistry(
		Demo{Name: "adapter", Title: "Adapter", Run: runAdapter},
		Demo{Name: "decorator", Title: "Decorator", Run: runDecorator},
		Demo{Name: "factory", Title: "Factory Method", Run: runFactory},
		Demo{Name: "observer", Title: "Observer", Run: runObserver},
		Demo{Name: "singleton", Title: "Singleton", Run: runSingleton},
		Demo{Name: "visitor", Title: "Visitor", Run: runVisitor},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the demo registered under name.
func (r *Registry) Lookup(name string) (Demo, error) {
	i, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Demo{}, fmt.Errorf("%w %q (valid: %s)", ErrUnknownDemo, name, strings.Join(r.Names(), ", "))
	}
	return r.demos[i], nil
}

// Resolve maps names to demos. No names selects every demo.
// Repeated names run once, at their first position.
func (r *Registry) Resolve(names []string) ([]Demo, error) {
	if len(names) == 0 {
		return r.All(), nil
	}

	seen := make(map[string]bool, len(names))
	out := make([]Demo, 0, len(names))
	for _, name := range names {
		d, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		out = append(out, d)
	}
	return out, nil
}

// Names returns demo names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.demos))
	for i, d := range r.demos {
		names[i] = d.Name
	}
	return names
}

// All returns a copy of the registered demos.
func (r *Registry) All() []Demo {
	return append([]Demo(nil), r.demos...)
}

func runAdapter(env *Env) error {
	return adapter.Run(env.Out, env.Config.Adapter.Amount)
}

func runDecorator(env *Env) error {
	return decorator.Run(env.Out, env.Config.Decorator.Message, env.Config.Decorator.Channels)
}

func runFactory(env *Env) error {
	return factory.Run(env.Out, env.Config.Factory.OSTypes)
}

func runObserver(env *Env) error {
	return observer.Run(env.Out, env.Config.Observer.Prices, env.Config.Observer.AlertThreshold)
}

func runSingleton(env *Env) error {
	return singleton.Run(env.Out)
}

func runVisitor(env *Env) error {
	enc, err := visitor.NewEncoder(env.Config.Visitor.RecordFormat)
	if err != nil {
		return err
	}
	return visitor.Run(env.Out, visitor.Options{
		IndentStep: env.Config.Visitor.IndentStep,
		Encoder:    enc,
	})
}

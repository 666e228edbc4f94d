package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/patterns/internal/config"
	"github.com/harrison/patterns/internal/factory"
	"github.com/harrison/patterns/internal/logger"
)

func newTestRunner(level string, cfg *config.Config) (*Runner, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	r := NewRunner(logger.NewConsoleLogger(buf, level), cfg)
	r.newID = func() string { return "test-session" }
	return r, buf
}

func TestRunnerFramesDemo(t *testing.T) {
	r, buf := newTestRunner("info", nil)
	d, err := Default().Lookup("adapter")
	require.NoError(t, err)

	require.NoError(t, r.Run(context.Background(), []Demo{d}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "====== [Adapter Design Pattern] ======", lines[0])
	assert.Equal(t, "  ✅ Adapter pattern simulation started", lines[1])
	assert.Equal(t, "  ✅ Adapter pattern simulation finished", lines[len(lines)-1])
	assert.Contains(t, buf.String(), "  💳 Processed 1000 won through the new payment gateway")
}

func TestRunnerUsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Adapter.Amount = 250
	cfg.Visitor.RecordFormat = "yaml"
	r, buf := newTestRunner("info", cfg)

	demos, err := Default().Resolve([]string{"adapter", "visitor"})
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background(), demos))

	out := buf.String()
	assert.Contains(t, out, "Processed 250 won")
	assert.Contains(t, out, "====== [Visitor Design Pattern] ======")
	assert.Contains(t, out, "📦 Total file size: 45 KB")
	assert.Contains(t, out, "kind: folder")
	assert.Contains(t, out, "\n\n====== [Visitor Design Pattern]")
}

func TestRunnerStopsAtFirstFailure(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Factory.OSTypes = []string{"Linux", "Mac"}
	r, buf := newTestRunner("info", cfg)

	demos, err := Default().Resolve([]string{"factory", "singleton"})
	require.NoError(t, err)

	err = r.Run(context.Background(), demos)
	require.Error(t, err)
	assert.True(t, IsRunError(err))
	assert.ErrorIs(t, err, factory.ErrUnsupportedOS)

	var re *RunError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "factory", re.Demo)

	out := buf.String()
	assert.Contains(t, out, "❌ Unsupported OS type: Linux")
	assert.Contains(t, out, "❌ Factory Method pattern simulation failed")
	assert.Contains(t, out, "[ERROR] session test-session")
	assert.NotContains(t, out, "Singleton Design Pattern")
	assert.NotContains(t, out, "OS detected: Mac")
}

func TestRunnerDebugSessionAndProgress(t *testing.T) {
	r, buf := newTestRunner("debug", nil)
	noop := Demo{Name: "noop", Title: "Noop", Run: func(*Env) error { return nil }}

	require.NoError(t, r.Run(context.Background(), []Demo{noop, noop}))

	out := buf.String()
	assert.Contains(t, out, "session test-session: running 2 demo(s)")
	assert.Contains(t, out, "demos [==========          ] 1/2 (50%)")
	assert.Contains(t, out, "demos [====================] 2/2 (100%)")
	assert.Contains(t, out, "session test-session: done")
}

func TestRunnerGroupClosedAfterFailure(t *testing.T) {
	log := logger.NewConsoleLogger(&bytes.Buffer{}, "info")
	r := NewRunner(log, nil)
	failing := Demo{Name: "bad", Title: "Bad", Run: func(*Env) error { return errors.New("nope") }}

	require.Error(t, r.Run(context.Background(), []Demo{failing}))
	assert.Equal(t, 0, log.Depth())
}

func TestRunnerCancelled(t *testing.T) {
	r, buf := newTestRunner("info", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	d := Demo{Name: "x", Title: "X", Run: func(*Env) error { called = true; return nil }}

	err := r.Run(ctx, []Demo{d})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Empty(t, buf.String())
}

func TestRunnerEnv(t *testing.T) {
	r, buf := newTestRunner("info", nil)
	var got *Env
	d := Demo{Name: "env", Title: "Env", Run: func(env *Env) error {
		got = env
		_, err := env.Out.Write([]byte("inside\n"))
		return err
	}}

	require.NoError(t, r.Run(context.Background(), []Demo{d}))
	require.NotNil(t, got)
	assert.Same(t, got.Log, r.log)
	assert.Equal(t, config.DefaultConfig(), got.Config)
	assert.Contains(t, buf.String(), "\n  inside\n")
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "====== [Factory Method Design Pattern] ======", Header(Demo{Title: "Factory Method"}))
}

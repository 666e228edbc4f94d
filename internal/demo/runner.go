package demo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harrison/patterns/internal/config"
	"github.com/harrison/patterns/internal/logger"
)

// progressWidth is the width of the debug progress bar.
const progressWidth = 20

// Runner executes demos one after another on a console logger.
type Runner struct {
	log   *logger.ConsoleLogger
	cfg   *config.Config
	newID func() string
}

// NewRunner creates a Runner. A nil cfg means config.DefaultConfig().
func NewRunner(log *logger.ConsoleLogger, cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Runner{
		log:   log,
		cfg:   cfg,
		newID: func() string { return uuid.New().String() },
	}
}

// Header returns the banner printed above a demo.
func Header(d Demo) string {
	return fmt.Sprintf("====== [%s Design Pattern] ======", d.Title)
}

// Run executes demos in order and stops at the first failure, which is
// returned as a *RunError. Cancelling ctx stops before the next demo.
func (r *Runner) Run(ctx context.Context, demos []Demo) error {
	session := r.newID()
	r.log.LogDebug(fmt.Sprintf("session %s: running %d demo(s)", session, len(demos)))

	pb := logger.NewProgressBar(len(demos), progressWidth)
	pb.SetPrefix("demos ")

	env := &Env{Out: r.log, Log: r.log, Config: r.cfg}
	for i, d := range demos {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session %s cancelled before %s: %w", session, d.Name, err)
		}
		if i > 0 {
			r.log.Println("")
		}
		if err := r.runOne(env, d); err != nil {
			r.log.LogError(fmt.Sprintf("session %s: %v", session, err))
			return err
		}
		pb.Increment()
		r.log.LogProgress(pb)
	}

	r.log.LogDebug(fmt.Sprintf("session %s: done", session))
	return nil
}

func (r *Runner) runOne(env *Env, d Demo) error {
	r.log.Group(Header(d))
	defer r.log.GroupEnd()

	r.log.Success(fmt.Sprintf("✅ %s pattern simulation started", d.Title))
	if err := d.Run(env); err != nil {
		r.log.Failure(fmt.Sprintf("❌ %s pattern simulation failed", d.Title))
		return &RunError{Demo: d.Name, Err: err}
	}
	r.log.Success(fmt.Sprintf("✅ %s pattern simulation finished", d.Title))
	return nil
}

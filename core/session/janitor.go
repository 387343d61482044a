package session

import (
	"context"
	"time"

	"github.com/adhocore/gronx"
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
)

const retryDelay = 30 * time.Second

// Janitor periodically closes idle sessions on a cron schedule.
type Janitor struct {
	registry *Registry
	cron     string
	ttl      time.Duration
	logger   core.Logger
	now      func() time.Time

	// OnSweep, if set, is called with the number of sessions closed by each sweep.
	OnSweep func(closed int)
}

func NewJanitor(registry *Registry, cron string, ttl time.Duration, logger core.Logger) (*Janitor, error) {
	if !gronx.IsValid(cron) {
		return nil, errors.Errorf("invalid janitor cron expression: %q", cron)
	}
	if logger == nil {
		logger = core.NewNopLogger()
	}
	return &Janitor{registry: registry, cron: cron, ttl: ttl, logger: logger, now: time.Now}, nil
}

// Run sweeps at every tick of the schedule until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) error {
	for {
		next, err := gronx.NextTickAfter(j.cron, j.now().UTC(), false)
		if err != nil {
			j.logger.Error("session janitor next tick", err, map[string]interface{}{"cron": j.cron})
			if !sleep(ctx, retryDelay) {
				return ctx.Err()
			}
			continue
		}

		if !sleep(ctx, time.Until(next)) {
			return ctx.Err()
		}
		j.sweep()
	}
}

func (j *Janitor) sweep() {
	closed := j.registry.Sweep(j.ttl)
	if closed > 0 {
		j.logger.Info("session janitor closed idle sessions", map[string]interface{}{"closed": closed})
	}
	if j.OnSweep != nil {
		j.OnSweep(closed)
	}
}

// sleep waits for d; it returns false if ctx is done first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		d = time.Second
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

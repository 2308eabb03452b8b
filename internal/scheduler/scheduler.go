package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Task func(ctx context.Context) error

// Every runs task once right away, then every interval until ctx is done.
// A non-positive interval runs the task only once. Runs never overlap.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	run := func() {
		if err := task(ctx); err != nil {
			log.Warn().Err(err).Str("task", name).Msg("scheduled task failed")
		}
	}

	run()
	if interval <= 0 {
		return
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}

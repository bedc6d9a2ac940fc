package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// runTA helps students one at a time until the quota is met, the TA idles
// past cfg.IdleTimeout or ctx is done. The quota is only checked while idle,
// so everyone already seated is helped before the room closes. Cancellation
// turns away the seated students instead, but a student already in the chair
// is still helped.
func runTA(ctx context.Context, r *waitingRoom, cfg config) eventKind {
	r.lock()
	defer r.unlock()

	for {
		if ctx.Err() != nil && !r.busy {
			r.close(shutdownCancelled)
			return shutdownCancelled
		}

		for r.idle() {
			if r.quotaReached(cfg.Students) {
				r.close(shutdownQuota)
				return shutdownQuota
			}
			switch r.serverWaitForWork(ctx, cfg.idleTimeout()) {
			case timedOut:
				return shutdownTimeout
			case cancelled:
				return shutdownCancelled
			}
		}

		if !r.dispatchNext() {
			r.startDirect()
		}

		r.unlock()
		help(ctx, cfg.serviceTime())
		r.lock()

		r.finishService()
	}
}

// help spends d with the student, or less if ctx ends first. The student is
// released either way.
func help(ctx context.Context, d time.Duration) {
	start := time.Now()
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
		log.Debug().Err(ctx.Err()).Msg("service cut short")
	}
	log.Debug().TimeDiff("service_time", time.Now(), start).Msg("TA done helping")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

var errStalled = errors.New("simulation stalled")

type result struct {
	Reason   eventKind
	Served   int
	Outcomes []outcome // indexed by student id - 1
	Elapsed  time.Duration
}

func (res result) count(o outcome) int {
	n := 0
	for _, got := range res.Outcomes {
		if got == o {
			n++
		}
	}
	return n
}

// arrivals draws every student's delay up front so a seed fully determines
// the arrival pattern regardless of goroutine scheduling.
func arrivals(cfg config) []time.Duration {
	rng := rand.New(rand.NewSource(cfg.Seed))
	delays := make([]time.Duration, cfg.Students)
	for i := range delays {
		delays[i] = time.Duration(rng.Intn(cfg.MaxArrival+1)) * cfg.Unit
	}
	return delays
}

// run plays out one afternoon of office hours. Students are joined before
// the TA. If ctx hits its deadline the run is reported as stalled.
func run(ctx context.Context, cfg config, notify observer) (result, error) {
	if err := cfg.validate(); err != nil {
		return result{}, err
	}

	start := time.Now()
	r := newWaitingRoom(cfg.Chairs, notify)
	delays := arrivals(cfg)

	taDone := make(chan eventKind, 1)
	go func() {
		taDone <- runTA(ctx, r, cfg)
	}()

	outcomes, err := seatStudents(ctx, r, delays)
	reason := <-taDone
	if err != nil {
		return result{}, fmt.Errorf("waiting for students: %w", err)
	}
	r.complete()

	res := result{
		Reason:   reason,
		Served:   r.snapshot().Served,
		Outcomes: outcomes,
		Elapsed:  time.Since(start),
	}
	if reason == shutdownCancelled && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return res, fmt.Errorf("%w after %v", errStalled, res.Elapsed)
	}
	return res, nil
}

// seatStudents runs every student and waits for all of them. Only a
// cancelled run may close the room on a seated student, anything else is
// reported as an error.
func seatStudents(ctx context.Context, r *waitingRoom, delays []time.Duration) ([]outcome, error) {
	outcomes := make([]outcome, len(delays))
	var g errgroup.Group
	for i, d := range delays {
		i, d := i, d
		g.Go(func() error {
			outcomes[i] = runStudent(ctx, r, i+1, d)
			if outcomes[i] == outcomeTurnedAway && ctx.Err() == nil {
				return fmt.Errorf("student %d: %w", i+1, errRoomClosed)
			}
			return nil
		})
	}
	return outcomes, g.Wait()
}

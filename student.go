package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type outcome int

const (
	outcomeAbsent outcome = iota
	outcomeDirect
	outcomeQueued
	outcomeRejected
	outcomeTurnedAway
)

func (o outcome) String() string {
	switch o {
	case outcomeDirect:
		return "direct"
	case outcomeQueued:
		return "queued"
	case outcomeRejected:
		return "rejected"
	case outcomeTurnedAway:
		return "turned_away"
	default:
		return "absent"
	}
}

// runStudent arrives after the given delay and tries, in order, to walk
// straight in, to take a chair, and to be helped. A student whose ctx ends
// before arrival never shows up.
func runStudent(ctx context.Context, r *waitingRoom, id int, arrival time.Duration) outcome {
	t := time.NewTimer(arrival)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
		return outcomeAbsent
	}

	v := &visit{id: id}
	if !r.tryDirectHandoff(v) && r.enqueueOrReject(v) == rejected {
		return outcomeRejected
	}

	if err := r.waitToBeServed(v); err != nil {
		log.Debug().Int("student", id).Err(err).Msg("left without help")
		return outcomeTurnedAway
	}
	if v.queued {
		return outcomeQueued
	}
	return outcomeDirect
}

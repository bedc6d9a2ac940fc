package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var errRoomClosed = errors.New("waiting room closed")

type admission int

const (
	admitted admission = iota
	rejected
)

type wakeReason int

const (
	woken wakeReason = iota
	timedOut
	cancelled
)

// visit is owned by a single student goroutine. Whether the student took a
// chair is tracked here and never inferred from the shared counters.
type visit struct {
	id     int
	queued bool
}

type roomState struct {
	Waiting  int
	Served   int
	Sleeping bool
	Busy     bool
	Closed   bool
}

// waitingRoom is the monitor shared by the TA and every student. All fields
// below mu are guarded by it.
//
// studentCond carries two predicates: queued students wait for called > 0
// and the student in the chair waits for finished. dispatchNext only signals
// while the chair is empty, so a single Signal always reaches a queued
// student. finishService has to Broadcast. Which queued student a Signal
// wakes is up to the runtime, no ordering is promised.
type waitingRoom struct {
	capacity int
	notify   observer

	mu          sync.Mutex
	taCond      *sync.Cond
	studentCond *sync.Cond

	waiting  int
	sleeping bool
	busy     bool
	served   int
	called   int
	chair    int
	finished bool
	closed   bool
}

func newWaitingRoom(capacity int, notify observer) *waitingRoom {
	if notify == nil {
		notify = discard
	}
	r := &waitingRoom{
		capacity: capacity,
		notify:   notify,
		mu:       sync.Mutex{},
		sleeping: true,
	}
	r.taCond = sync.NewCond(&r.mu)
	r.studentCond = sync.NewCond(&r.mu)
	return r
}

func (r *waitingRoom) lock() {
	r.mu.Lock()
}

func (r *waitingRoom) unlock() {
	r.mu.Unlock()
}

// Caller holds lock.
func (r *waitingRoom) emit(kind eventKind, student int) {
	r.notify(event{
		Kind:    kind,
		Student: student,
		Waiting: r.waiting,
		Served:  r.served,
		At:      time.Now(),
	})
}

// Caller holds lock. A broken invariant means a synchronization bug, so it
// is fatal.
func (r *waitingRoom) check() {
	if r.waiting < 0 || r.waiting > r.capacity ||
		r.called < 0 || r.called > r.waiting ||
		r.served < 0 || (r.sleeping && r.busy) {
		log.Panic().
			Int("waiting", r.waiting).
			Int("capacity", r.capacity).
			Int("called", r.called).
			Int("served", r.served).
			Bool("sleeping", r.sleeping).
			Bool("busy", r.busy).
			Msg("waiting room invariant violated")
	}
}

// tryDirectHandoff lets the student skip the chairs when the TA is asleep
// and nobody is waiting.
func (r *waitingRoom) tryDirectHandoff(v *visit) bool {
	r.lock()
	defer r.unlock()

	if !r.sleeping || r.waiting != 0 || r.busy || r.closed {
		return false
	}
	r.busy = true
	r.sleeping = false
	r.chair = v.id
	r.emit(arrivalDirect, v.id)
	r.check()
	r.taCond.Signal()
	return true
}

func (r *waitingRoom) enqueueOrReject(v *visit) admission {
	r.lock()
	defer r.unlock()

	if r.closed || r.waiting >= r.capacity {
		r.emit(arrivalRejected, v.id)
		return rejected
	}
	r.waiting++
	v.queued = true
	r.emit(arrivalQueued, v.id)
	if r.sleeping {
		r.sleeping = false
		r.taCond.Signal()
	}
	r.check()
	return admitted
}

// waitToBeServed blocks until the TA has finished helping the student. A
// queued student first waits for a call, then holds the chair like a direct
// one. It returns errRoomClosed if the room shuts while the student is still
// waiting for a call.
func (r *waitingRoom) waitToBeServed(v *visit) error {
	r.lock()
	defer r.unlock()

	if v.queued {
		for r.called == 0 && !r.closed {
			r.studentCond.Wait()
		}
		if r.called == 0 {
			r.waiting--
			r.emit(studentTurnedAway, v.id)
			r.check()
			return errRoomClosed
		}
		r.called--
		r.waiting--
		r.chair = v.id
		r.emit(serviceStart, v.id)
		r.check()
	}

	for r.chair != v.id || !r.finished {
		r.studentCond.Wait()
	}
	r.emit(serviceEnd, v.id)
	r.served++
	r.busy = false
	r.chair = 0
	r.finished = false
	r.emit(studentDeparted, v.id)
	r.check()
	r.taCond.Signal()
	return nil
}

// Caller holds lock.
func (r *waitingRoom) idle() bool {
	return r.waiting == 0 && !r.busy
}

// serverWaitForWork puts the TA to sleep until a student arrives, the idle
// deadline passes or ctx is done. Caller holds lock. On timedOut and
// cancelled the room is already closed when it returns.
func (r *waitingRoom) serverWaitForWork(ctx context.Context, idleTimeout time.Duration) wakeReason {
	if !r.idle() {
		log.Panic().Int("waiting", r.waiting).Bool("busy", r.busy).Msg("TA went to sleep with work pending")
	}
	r.sleeping = true
	r.emit(serverSleep, 0)

	deadline := time.Now().Add(idleTimeout)
	timer := time.AfterFunc(idleTimeout, r.wakeTA)
	defer timer.Stop()
	stop := context.AfterFunc(ctx, r.wakeTA)
	defer stop()

	for r.sleeping {
		if ctx.Err() != nil {
			r.close(shutdownCancelled)
			return cancelled
		}
		if !time.Now().Before(deadline) {
			r.close(shutdownTimeout)
			return timedOut
		}
		r.taCond.Wait()
	}
	return woken
}

func (r *waitingRoom) wakeTA() {
	r.lock()
	r.taCond.Broadcast()
	r.unlock()
}

// dispatchNext calls one queued student to the chair. Caller holds lock.
func (r *waitingRoom) dispatchNext() bool {
	if r.waiting == 0 || r.busy {
		return false
	}
	r.busy = true
	r.called++
	r.emit(studentCalled, 0)
	r.check()
	r.studentCond.Signal()
	return true
}

// startDirect picks up a student who walked straight in while the TA slept.
// Caller holds lock.
func (r *waitingRoom) startDirect() {
	if !r.busy || r.chair == 0 {
		log.Panic().Bool("busy", r.busy).Int("chair", r.chair).Msg("no direct student to help")
	}
	r.emit(serviceStart, r.chair)
}

// finishService releases the student in the chair and waits until they have
// left. Caller holds lock.
func (r *waitingRoom) finishService() {
	r.finished = true
	r.studentCond.Broadcast()
	for r.busy {
		r.taCond.Wait()
	}
}

// Caller holds lock.
func (r *waitingRoom) quotaReached(total int) bool {
	return r.served >= total
}

// close refuses further admission and releases every student still waiting
// for a call. Caller holds lock.
func (r *waitingRoom) close(reason eventKind) {
	r.closed = true
	r.sleeping = false
	r.emit(reason, 0)
	r.studentCond.Broadcast()
	r.taCond.Broadcast()
}

func (r *waitingRoom) complete() {
	r.lock()
	defer r.unlock()
	r.emit(programComplete, 0)
}

func (r *waitingRoom) snapshot() roomState {
	r.lock()
	defer r.unlock()
	return roomState{
		Waiting:  r.waiting,
		Served:   r.served,
		Sleeping: r.sleeping,
		Busy:     r.busy,
		Closed:   r.closed,
	}
}

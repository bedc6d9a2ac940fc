package main

import "time"

type eventKind int

const (
	arrivalDirect eventKind = iota
	arrivalQueued
	arrivalRejected
	studentCalled
	serviceStart
	serviceEnd
	studentDeparted
	studentTurnedAway
	serverSleep
	shutdownQuota
	shutdownTimeout
	shutdownCancelled
	programComplete
)

var eventNames = [...]string{
	arrivalDirect:     "arrival_direct",
	arrivalQueued:     "arrival_queued",
	arrivalRejected:   "arrival_rejected",
	studentCalled:     "student_called",
	serviceStart:      "service_start",
	serviceEnd:        "service_end",
	studentDeparted:   "student_departed",
	studentTurnedAway: "student_turned_away",
	serverSleep:       "server_sleep",
	shutdownQuota:     "shutdown_quota",
	shutdownTimeout:   "shutdown_timeout",
	shutdownCancelled: "shutdown_cancelled",
	programComplete:   "program_complete",
}

func (k eventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

type event struct {
	Kind    eventKind
	Student int // 0 for TA events
	Waiting int
	Served  int
	At      time.Time
}

// observer receives events while the room lock is held. It must not block
// or call back into the room.
type observer func(event)

func discard(event) {}

package main

import (
	"io"

	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, runID string, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	}
	return zerolog.New(w).With().Timestamp().Str("run_id", runID).Logger()
}

var eventMessages = map[eventKind]string{
	arrivalDirect:     "student goes directly to the TA without waiting",
	arrivalQueued:     "student enters the room",
	arrivalRejected:   "student finds no available chairs and leaves",
	studentCalled:     "TA calls the next student",
	serviceStart:      "TA is helping a student",
	serviceEnd:        "TA is done helping a student",
	studentDeparted:   "student leaves the room",
	studentTurnedAway: "student leaves the room without help",
	serverSleep:       "TA is sleeping",
	shutdownQuota:     "TA is done helping all students and is exiting",
	shutdownTimeout:   "TA waited with no arriving students, terminating",
	shutdownCancelled: "TA was interrupted and is exiting",
	programComplete:   "program has terminated",
}

// logObserver writes one line per event. It runs under the room lock, so it
// only formats and writes.
func logObserver(logger zerolog.Logger) observer {
	return func(e event) {
		l := logger.Info()
		if e.Kind == arrivalRejected || e.Kind == studentTurnedAway {
			l = logger.Warn()
		}
		if e.Student != 0 {
			l = l.Int("student", e.Student)
		}
		l.Str("event", e.Kind.String()).
			Int("waiting", e.Waiting).
			Int("served", e.Served).
			Time("at", e.At).
			Msg(eventMessages[e.Kind])
	}
}

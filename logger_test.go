package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	notify := logObserver(newLogger(&buf, "run-1", false))
	notify(event{Kind: arrivalRejected, Student: 4, Waiting: 5, Served: 1, At: time.Now()})

	line := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "run-1", line["run_id"])
	assert.Equal(t, "arrival_rejected", line["event"])
	assert.Equal(t, float64(4), line["student"])
	assert.Equal(t, float64(5), line["waiting"])
	assert.Equal(t, eventMessages[arrivalRejected], line["message"])
}

func TestLogObserverOmitsStudentForTAEvents(t *testing.T) {
	var buf bytes.Buffer
	notify := logObserver(newLogger(&buf, "run-2", false))
	notify(event{Kind: serverSleep, At: time.Now()})

	line := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.NotContains(t, line, "student")
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "shutdown_quota", shutdownQuota.String())
	assert.Equal(t, "unknown", eventKind(99).String())
	for k := arrivalDirect; k <= programComplete; k++ {
		assert.NotEmpty(t, eventMessages[k], k.String())
	}
}

package main

import "time"

const (
	defaultChairs      = 5
	defaultStudents    = 10
	defaultIdleTimeout = 3 // units
	defaultServiceTime = 2 // units
	defaultMaxArrival  = 2 // units
	defaultUnit        = time.Second
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitStalled = 2
)

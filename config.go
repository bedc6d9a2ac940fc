package main

import (
	"errors"
	"fmt"
	"time"
)

var errInvalidConfig = errors.New("invalid config")

// Durations other than Unit are counted in units so the whole simulation can
// be sped up without changing its shape.
type config struct {
	Chairs      int
	Students    int
	IdleTimeout int
	ServiceTime int
	MaxArrival  int
	Unit        time.Duration
	Seed        int64
}

func defaultConfig() config {
	return config{
		Chairs:      defaultChairs,
		Students:    defaultStudents,
		IdleTimeout: defaultIdleTimeout,
		ServiceTime: defaultServiceTime,
		MaxArrival:  defaultMaxArrival,
		Unit:        defaultUnit,
		Seed:        time.Now().UnixNano(),
	}
}

func (c config) validate() error {
	switch {
	case c.Chairs < 1:
		return fmt.Errorf("%w: chairs must be positive, got %d", errInvalidConfig, c.Chairs)
	case c.Students < 1:
		return fmt.Errorf("%w: students must be positive, got %d", errInvalidConfig, c.Students)
	case c.IdleTimeout < 0, c.ServiceTime < 0, c.MaxArrival < 0:
		return fmt.Errorf("%w: durations must not be negative", errInvalidConfig)
	case c.Unit <= 0:
		return fmt.Errorf("%w: unit must be positive, got %v", errInvalidConfig, c.Unit)
	}
	return nil
}

func (c config) idleTimeout() time.Duration { return time.Duration(c.IdleTimeout) * c.Unit }
func (c config) serviceTime() time.Duration { return time.Duration(c.ServiceTime) * c.Unit }

// watchdog bounds a healthy run: every student arrives, is served back to
// back, and the TA then idles out once.
func (c config) watchdog() time.Duration {
	units := c.MaxArrival + c.Students*c.ServiceTime + c.IdleTimeout + 1
	return 2 * time.Duration(units) * c.Unit
}

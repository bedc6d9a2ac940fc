package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.NoError(t, cfg.validate())
	assert.Equal(t, 5, cfg.Chairs)
	assert.Equal(t, 10, cfg.Students)
	assert.Equal(t, 3*time.Second, cfg.idleTimeout())
	assert.Equal(t, 2*time.Second, cfg.serviceTime())
	assert.Greater(t, cfg.watchdog(), cfg.idleTimeout())
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]func(*config){
		"no chairs":        func(c *config) { c.Chairs = 0 },
		"no students":      func(c *config) { c.Students = -1 },
		"negative idle":    func(c *config) { c.IdleTimeout = -1 },
		"negative service": func(c *config) { c.ServiceTime = -2 },
		"negative arrival": func(c *config) { c.MaxArrival = -1 },
		"zero unit":        func(c *config) { c.Unit = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.validate(), errInvalidConfig)
		})
	}
}

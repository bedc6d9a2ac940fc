package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := defaultConfig()
	flag.IntVar(&cfg.Chairs, "chairs", cfg.Chairs, "number of chairs in the waiting room")
	flag.IntVar(&cfg.Students, "students", cfg.Students, "students to spawn, also the TA's quota")
	flag.IntVar(&cfg.IdleTimeout, "idle", cfg.IdleTimeout, "units the TA sleeps before giving up")
	flag.IntVar(&cfg.ServiceTime, "service", cfg.ServiceTime, "units spent helping each student")
	flag.IntVar(&cfg.MaxArrival, "arrival", cfg.MaxArrival, "max units before a student arrives")
	flag.DurationVar(&cfg.Unit, "unit", cfg.Unit, "length of one time unit")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for arrival delays")
	pretty := flag.Bool("pretty", false, "human readable output")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	os.Exit(realMain(cfg, *pretty, *debug))
}

func realMain(cfg config, pretty, debug bool) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = newLogger(os.Stderr, uuid.NewString(), pretty)

	if err := cfg.validate(); err != nil {
		log.Error().Err(err).Msg("bad flags")
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.watchdog())
	defer cancel()

	log.Info().
		Int("chairs", cfg.Chairs).
		Int("students", cfg.Students).
		Int64("seed", cfg.Seed).
		Dur("unit", cfg.Unit).
		Msg("office hours open")

	res, err := run(ctx, cfg, logObserver(log.Logger))
	if errors.Is(err, errStalled) {
		log.Error().Err(err).Int("served", res.Served).Msg("TA never finished")
		return exitStalled
	}
	if err != nil {
		log.Error().Err(err).Msg("simulation failed")
		return exitUsage
	}

	log.Info().
		Str("reason", res.Reason.String()).
		Int("served", res.Served).
		Int("direct", res.count(outcomeDirect)).
		Int("queued", res.count(outcomeQueued)).
		Int("rejected", res.count(outcomeRejected)).
		Int("turned_away", res.count(outcomeTurnedAway)).
		Int("absent", res.count(outcomeAbsent)).
		Dur("elapsed", res.Elapsed).
		Msg("office hours closed")
	return exitOK
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

type config struct {
	plies    int
	workers  int
	opening  string
	logLevel string
}

func lookupInt(name string, fallback int) (int, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func lookupString(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

// loadConfig reads defaults from the environment; flags override them.
func loadConfig(fs *flag.FlagSet, args []string) (config, error) {
	plies, err := lookupInt("ONEPLY_PLIES", 40)
	if err != nil {
		return config{}, err
	}
	workers, err := lookupInt("ONEPLY_WORKERS", 1)
	if err != nil {
		return config{}, err
	}
	var cfg config
	fs.IntVar(&cfg.plies, "plies", plies, "maximum number of plies to play")
	fs.IntVar(&cfg.workers, "workers", workers, "boards ranked in parallel per ply")
	fs.StringVar(&cfg.opening, "opening", lookupString("ONEPLY_OPENING", ""), "moves played before the agent, e.g. \"pe2-e4 pe7-e5\"")
	fs.StringVar(&cfg.logLevel, "log-level", lookupString("ONEPLY_LOG_LEVEL", "info"), "debug, info, warn, error or fatal")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.plies < 0 {
		return config{}, fmt.Errorf("plies must not be negative: %d", cfg.plies)
	}
	return cfg, nil
}

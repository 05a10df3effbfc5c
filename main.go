package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"reflect"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

var sigint chan os.Signal

func waitShutdown(cancel context.CancelFunc, stopped <-chan interface{}) {
	defer cancel()

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	select {
	case <-sigint:
		log.Info("received shutdown signal")
	case <-stopped:
	}
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Fatal(message)
}

func setupLogging(level string) error {
	log.SetHandler(cli.New(os.Stderr))
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// Play play.
func Play(ctx context.Context, cfg config) (*game, error) {
	g := newGame(cfg)
	if err := g.playOpening(cfg.opening); err != nil {
		return g, err
	}
	return g, g.run(ctx)
}

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	idleError("config:", err)
	idleError("logging:", setupLogging(cfg.logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan interface{})
	go waitShutdown(cancel, stopped)

	board := newStandardBoard()
	fmt.Print(board)
	for _, m := range board.movesFor(board.at(coord{1, 0})) {
		log.WithField("move", m.String()).Info("knight b1")
	}

	g, err := Play(ctx, cfg)
	close(stopped)
	fmt.Print(g.board)
	fmt.Println(g.transcript())
	idleError("game:", err)
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/missiles/internal/audio"
	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/logging"
	"github.com/tomz197/missiles/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// run plays one local game. Cleanup is deferred here so that it happens
// before main exits with an error.
func run() error {
	// The terminal belongs to the game, so logs go to LOG_FILE or nowhere.
	out, closeLog, err := logging.Output(io.Discard)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	logger := logging.New("missiles", out)

	hitTest, err := game.ParseHitTest(config.GetEnv("MISSILES_HIT_TEST", ""))
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	var sink game.Audio = audio.Silent{}
	if config.GetEnvBool("MISSILES_SOUND", true) {
		spk := audio.NewSpeaker(logger)
		defer spk.Cleanup()
		sink = spk
	}

	seed := int64(config.GetEnvInt("MISSILES_SEED", 0))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Error("failed to enable raw mode", "err", err)
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.SessionOptions{
		Audio:   sink,
		HitTest: hitTest,
		Rand:    rand.New(rand.NewSource(seed)),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("game error", "err", err)
		return err
	}
	return nil
}

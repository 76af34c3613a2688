package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/tomz197/missiles/internal/audio"
	"github.com/tomz197/missiles/internal/config"
	"github.com/tomz197/missiles/internal/game"
	"github.com/tomz197/missiles/internal/logging"
	"github.com/tomz197/missiles/internal/window"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New("window", os.Stderr)

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

	err = window.Run(window.Options{
		Audio:   sink,
		HitTest: hitTest,
		Rand:    rand.New(rand.NewSource(seed)),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("window error", "err", err)
		return err
	}
	return nil
}

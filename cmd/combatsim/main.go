// Package main runs a single console fight between the player and the dragon.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/combatsim/internal/config"
	"github.com/cory-johannsen/combatsim/internal/frontend/console"
	"github.com/cory-johannsen/combatsim/internal/game/combat"
	"github.com/cory-johannsen/combatsim/internal/game/dice"
	"github.com/cory-johannsen/combatsim/internal/observability"
)

func main() {
	start := time.Now()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("match_id", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), logger)
	human := combat.NewActor(combat.KindHuman, cfg.Game.Human.Name, cfg.Game.Human.HP)
	computer := combat.NewActor(combat.KindComputer, cfg.Game.Computer.Name, cfg.Game.Computer.HP)
	term := console.New(os.Stdin, os.Stdout, cfg.Console, logger)

	logger.Info("starting combat",
		zap.String("human", human.Name),
		zap.Int("human_hp", human.HP),
		zap.String("computer", computer.Name),
		zap.Int("computer_hp", computer.HP),
	)

	loop := combat.NewLoop(human, computer, roller, term, term, logger)
	state, err := loop.Run(ctx)
	if err != nil {
		logger.Warn("combat ended early", zap.Error(err))
		return
	}

	console.Pause(ctx, cfg.Game.EndDelay)

	logger.Info("exiting",
		zap.Stringer("state", state),
		zap.Duration("elapsed", time.Since(start)),
	)
}

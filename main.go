package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/LIAMBB/chess-movegen/components"
	"github.com/LIAMBB/chess-movegen/config"
	"github.com/LIAMBB/chess-movegen/explore"
	"github.com/LIAMBB/chess-movegen/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}
	logrus.SetLevel(cfg.LogLevel)

	startingBoard, err := components.ParseBoard(cfg.StartPlacement)
	if err != nil {
		logrus.Fatal("Invalid starting position: ", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatal("Failed to open database: ", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	explorer := explore.New(st, explore.Options{
		MaxDepth:     cfg.MaxDepth,
		Workers:      cfg.Workers,
		MaxSizeBytes: cfg.MaxDBSizeBytes,
	})

	logrus.WithFields(logrus.Fields{
		"db":      cfg.DBPath,
		"depth":   cfg.MaxDepth,
		"workers": cfg.Workers,
	}).Info("Simulation starting")

	stats, err := explorer.Run(ctx, startingBoard)
	if err != nil {
		logrus.Error("Simulation stopped: ", err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"processed":       stats.Processed,
		"states_at_depth": stats.StatesAtDepth,
		"stopped_early":   stats.StoppedEarly,
	}).Info("Simulation complete")

	if cfg.Interactive {
		if err := traverseTree(ctx, st, stats.RootID, os.Stdin, os.Stdout); err != nil {
			logrus.Error("Tree browser: ", err)
		}
	}
}

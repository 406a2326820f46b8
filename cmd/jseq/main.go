package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jseq/internal/config"
	"jseq/internal/ui"
	"jseq/internal/util/logx"
	"jseq/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("jseq", version.String())
		return
	}

	// Cancellation on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting jseq %s: %s", version.String(), cfg.String())
	if err := ui.Run(ctx, cfg); err != nil {
		logx.Errorf("jseq exited with error: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"os"
	"syscall"

	"github.com/platansad/storefront/internal/app"
	"github.com/platansad/storefront/internal/config"
	"github.com/platansad/storefront/internal/logger"
)

func main() {
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "startup mode: all (default), api, worker")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("service run failed: %v", err)
	}
}

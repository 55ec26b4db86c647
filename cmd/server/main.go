package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/fuelcost/internal/logging"
	"github.com/dmitrijs2005/fuelcost/internal/server"
	"github.com/dmitrijs2005/fuelcost/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err.Error())
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server failed", "error", err.Error())
		os.Exit(1)
	}
}

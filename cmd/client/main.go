package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/client"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewConsoleLogger("task-client")
	logger.SetLevel(os.Getenv("TASK_KEEPER_LOG_LEVEL"))

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return 2
	}

	api, err := adapter.NewHTTPTaskAPI(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("error creating api client")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, cfg.TokenFile, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			return 2
		}
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		return 1
	}

	return 0
}

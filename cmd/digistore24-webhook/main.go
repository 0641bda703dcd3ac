package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/api-integrations/digistore24-webhook/internal/app"
	"github.com/api-integrations/digistore24-webhook/internal/config"
	"github.com/api-integrations/digistore24-webhook/internal/monitoring"
	"github.com/api-integrations/digistore24-webhook/internal/runner"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("could not parse log level: %s", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().
		Timestamp().
		Str("app", settings.ServiceName).
		Logger()
	zlog.Logger = logger

	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-mainCtx.Done()
		logger.Info().Msg("Received signal, shutting down...")
		cancel()
	}()

	runnerGroup, runnerCtx := errgroup.WithContext(mainCtx)

	monApp := monitoring.NewMonitoringServer(settings.EnablePprof)
	logger.Info().Str("port", strconv.Itoa(settings.MonPort)).Msg("Starting monitoring server")
	runner.RunHandler(runnerCtx, runnerGroup, monApp, ":"+strconv.Itoa(settings.MonPort))

	webApp := app.CreateFiberApp(logger)
	logger.Info().Str("port", strconv.Itoa(settings.Port)).Msg("Starting web server")
	runner.RunFiber(runnerCtx, runnerGroup, webApp, ":"+strconv.Itoa(settings.Port))

	if err := runnerGroup.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed.")
	}
	logger.Info().Msg("Server stopped.")
}

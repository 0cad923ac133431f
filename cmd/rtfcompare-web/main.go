package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/aleister1102/rtfcompare/internal/logger"
	"github.com/aleister1102/rtfcompare/internal/server"
	"github.com/rs/zerolog"
)

func main() {
	configFile := flag.String("globalconfig", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("gc", "", "Alias for --globalconfig")
	listenAddr := flag.String("listen", "", "Listen address (overrides config file if set)")
	flag.Parse()

	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}

	gCfg, err := config.LoadGlobalConfig(*configFile, zerolog.Nop())
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", *configFile, err)
	}
	if *listenAddr != "" {
		gCfg.ServerConfig.ListenAddr = *listenAddr
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Main: Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	srv, err := server.NewServerBuilder(zLogger).
		WithConfig(gCfg).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to build server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		zLogger.Fatal().Err(err).Msg("Server terminated with error")
	}
	zLogger.Info().Msg("Server stopped")
}

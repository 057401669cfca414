package main

import (
	"flag"
	"math/rand/v2"
	"net/http"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	stockviewer "github.com/shamsherkhan80/Real-time-stock-price-viewer"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/config"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/marketdata"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("validate config", zap.Error(err))
	}

	if cfg.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// one arbitrary but fixed background color per process lifetime
	bgColor := cfg.BackgroundColors[rand.IntN(len(cfg.BackgroundColors))]

	provider := marketdata.NewYahooProvider(cfg.ProviderBaseURL, cfg.RequestTimeout)
	viewer, err := stockviewer.New(provider, &stockviewer.Options{
		Horizon:         cfg.Horizon,
		BackgroundColor: bgColor,
	})
	if err != nil {
		logger.Fatal("create viewer", zap.Error(err))
	}

	srv := server.New(logger, viewer, cfg.Symbols)

	logger.Info("listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("background", bgColor),
	)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Handler()); err != nil {
		logger.Fatal("http server", zap.Error(err))
	}
}

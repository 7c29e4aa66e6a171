// cmd/food-vision/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mcp-food-vision/internal/analysis"
	"mcp-food-vision/internal/config"
	"mcp-food-vision/internal/enrich"
	"mcp-food-vision/internal/fooddb"
	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/recognize"
	"mcp-food-vision/internal/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ShowVersion {
		fmt.Printf("mcp-food-vision version %s\n", config.Version)
		os.Exit(0)
	}

	lg, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer lg.Sync()

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := fooddb.Default()
	chain, closers := buildRecognizers(ctx, cfg, db, lg)
	defer func() {
		for _, c := range closers {
			_ = c()
		}
	}()
	lg.Info("recognizers configured", "chain", chain.Names())

	enricher := enrich.New(enrich.Options{
		Database: db,
		Source: enrich.NewFoodFacts(enrich.FoodFactsOptions{
			BaseURL: cfg.FoodFacts.BaseURL,
			Logger:  lg,
		}),
		Timeout:     cfg.FoodFacts.Timeout,
		Concurrency: cfg.FoodFacts.Concurrency,
		Logger:      lg,
	})

	pipeline := analysis.NewPipeline(analysis.Options{
		Recognizer: chain,
		Enricher:   enricher,
		Database:   db,
		Logger:     lg,
	})

	srv, err := server.NewFoodVisionServer(&server.Config{
		Transport: cfg.Transport,
		Host:      cfg.Host,
		Port:      cfg.Port,
		DBPath:    cfg.DBPath,
	}, pipeline, lg)
	if err != nil {
		lg.Fatal("failed to create server", "error", err)
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-sigCh:
		lg.Info("received shutdown signal")
	case err := <-errCh:
		lg.Error("server error", "error", err)
	}

	lg.Info("shutting down")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		lg.Error("error during shutdown", "error", err)
	}
}

// buildRecognizers assembles the recognition chain in priority order. Cloud
// clients that fail to initialize are left out.
func buildRecognizers(ctx context.Context, cfg *config.Config, db *fooddb.Database, lg *logger.Logger) (*recognize.Chain, []func() error) {
	recognizers := []recognize.Recognizer{
		recognize.NewGemini(recognize.GeminiOptions{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
			Hints:   db.Names(50),
			Logger:  lg,
		}),
		recognize.NewHuggingFace(recognize.HuggingFaceOptions{
			Token:   cfg.HuggingFace.Token,
			Model:   cfg.HuggingFace.Model,
			BaseURL: cfg.HuggingFace.BaseURL,
			Logger:  lg,
		}),
	}
	var closers []func() error

	if rk, err := recognize.NewRekognition(ctx, cfg.Rekognition.Region, lg); err == nil {
		recognizers = append(recognizers, rk)
	} else if !errors.Is(err, recognize.ErrDisabled) {
		lg.Warn("rekognition unavailable", "error", err)
	}

	if cfg.CloudVision.Enabled {
		if cv, err := recognize.NewCloudVision(ctx, cfg.CloudVision.CredentialsFile, lg); err == nil {
			recognizers = append(recognizers, cv)
			closers = append(closers, cv.Close)
		} else {
			lg.Warn("cloud vision unavailable", "error", err)
		}
	}

	return recognize.NewChain(lg, recognizers...), closers
}

package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Haleralex/pricecalc/internal/config"
	"github.com/Haleralex/pricecalc/internal/container"
)

func main() {
	configPath := flag.String("config", "", "directory containing config.yaml")
	envFile := flag.String("env-file", ".env", "dotenv file loaded before the environment")
	flag.Parse()

	if err := run(*configPath, *envFile); err != nil {
		slog.Error("Application error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(configPath, envFile string) error {
	// 1. .env (optional)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	// 2. Configuration
	cfg, err := config.Load(configPath, "config")
	if err != nil {
		return err
	}

	// 3. Dependencies
	ctx := context.Background()
	app := container.New(cfg)
	if err := app.Initialize(ctx); err != nil {
		return err
	}

	// 4. Serve until SIGINT/SIGTERM
	runErr := app.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		app.Logger().Error("Shutdown error", slog.Any("error", err))
	}

	if runErr != nil {
		return runErr
	}
	app.Logger().Info("Server stopped gracefully")
	return nil
}

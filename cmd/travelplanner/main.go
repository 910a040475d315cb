package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/teilomillet/travelplanner/config"
	apierrors "github.com/teilomillet/travelplanner/errors"
	"github.com/teilomillet/travelplanner/server"
	"github.com/teilomillet/travelplanner/server/handlers"
	"github.com/teilomillet/travelplanner/server/logging"
	"github.com/teilomillet/travelplanner/server/metrics"
	"github.com/teilomillet/travelplanner/server/pages"
	"github.com/teilomillet/travelplanner/server/planner"
	"github.com/teilomillet/travelplanner/server/provider"
	"github.com/teilomillet/travelplanner/server/routing"
	"github.com/teilomillet/travelplanner/server/validation"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "travelplanner.yaml", "Path to configuration file")
	envFile    = flag.String("env", ".env", "Path to an optional .env file with provider credentials")
	validate   = flag.Bool("validate", false, "Validate configuration and exit")
	version    = flag.Bool("version", false, "Print version and exit")
)

const Version = "v0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("travelplanner %s\n", Version)
		os.Exit(0)
	}

	// Credentials may live in .env; a missing file is fine.
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", *envFile, err)
		os.Exit(1)
	}

	cfg, fromFile, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Just validate and exit if requested
	if *validate {
		fmt.Println("Configuration is valid")
		os.Exit(0)
	}

	logger, level, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Critical error: Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	apierrors.SetLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if fromFile {
		watcher, err := config.NewConfigWatcher(*configFile, logger)
		if err != nil {
			logger.Fatal("Failed to watch config", zap.Error(err), zap.String("config_path", *configFile))
		}
		defer watcher.Close()
		go logging.FollowLevel(ctx, watcher, level, logger)
	} else {
		logger.Info("No config file found, using defaults", zap.String("config_path", *configFile))
	}

	handler, err := buildHandler(cfg, logger)
	if err != nil {
		logger.Fatal("Server initialization failed", zap.Error(err))
	}

	srv := server.NewServer(cfg.Server, handler, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Shutdown signal received",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	logger.Info("Starting travelplanner",
		zap.String("version", Version),
		zap.Int("port", cfg.Server.Port),
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
	)
	if err := srv.Start(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// loadConfig reads path, or returns the defaults when the file doesn't exist.
func loadConfig(path string) (*config.Config, bool, error) {
	cfg, err := config.LoadFile(path)
	if err == nil {
		return cfg, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfig(), false, nil
	}
	return nil, false, err
}

// buildHandler wires the completion client, planner, pages and router.
func buildHandler(cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	llm, err := provider.NewLLM(cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("create completion client: %w", err)
	}

	m := metrics.NewMetrics()
	opts := []planner.Option{
		planner.WithMetrics(m),
		planner.WithLogger(logger.Named("planner")),
	}

	// Token counting only feeds metrics, so failing to load an encoding
	// disables it instead of stopping startup.
	if counter, err := validation.NewTokenCounter(cfg.LLM.Model); err != nil {
		logger.Warn("Prompt token counting disabled", zap.Error(err))
	} else {
		opts = append(opts, planner.WithTokenCounter(counter))
	}

	p, err := planner.NewPlanner(cfg, llm, opts...)
	if err != nil {
		return nil, fmt.Errorf("create planner: %w", err)
	}

	renderer, err := pages.New(logger.Named("pages"))
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	routeHandlers := map[string]http.Handler{
		"ask": handlers.NewAskHandler(p, logger),
	}
	for _, page := range pages.All {
		routeHandlers[page.Name] = renderer.Handler(page.Name)
	}

	return routing.NewRouter(routing.DefaultRoutes, routeHandlers, m, logger), nil
}

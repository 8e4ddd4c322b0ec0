package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"flowpad/domain/core/entities"
	"flowpad/domain/core/valueobjects"
	"flowpad/infrastructure/config"
	"flowpad/infrastructure/di"
	"flowpad/infrastructure/memory"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to the YAML configuration file")
	flag.Parse()
	if configPath == "" {
		configPath = os.Getenv("FLOWPAD_CONFIG")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("unable to load configuration: %v", err)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("unable to build container: %v", err)
	}
	logger := container.Logger
	defer logger.Sync()

	if cfg.Metrics.Enabled {
		go serveMetrics(container, logger)
	}

	var watcher *config.Watcher
	if configPath != "" {
		watcher, err = config.NewWatcher(configPath, logger)
		if err != nil {
			logger.Fatal("unable to watch configuration", zap.Error(err))
		}
		watcher.OnChange(func(c *config.Config) {
			if level, err := zapcore.ParseLevel(c.Logging.Level); err == nil {
				container.LogLevel.SetLevel(level)
			} else {
				logger.Warn("keeping current log level", zap.String("level", c.Logging.Level), zap.Error(err))
			}
			container.Scene.SetLimits(memory.Limits{
				MaxNodes:        c.Limits.MaxNodesPerScene,
				MaxLinksPerPort: c.Limits.MaxLinksPerPort,
			})
			logger.Info("configuration changes applied", zap.String("log_level", c.Logging.Level))
		})
		watcher.Start()
		defer watcher.Stop()
	}

	if err := runSession(container); err != nil {
		logger.Fatal("editing session failed", zap.Error(err))
	}

	if cfg.Metrics.Enabled {
		logger.Info("serving metrics until interrupted", zap.String("addr", cfg.Metrics.ListenAddress))
		waitForInterrupt()
	}
}

// runSession drives a small scripted editing session: build a graph, cut a
// subselection, paste it back twice at different pointer positions.
func runSession(container *di.Container) error {
	ctx := context.Background()
	scene := container.Scene
	logger := container.Logger

	producer, err := addNode(container, "producer", 0, 0)
	if err != nil {
		return err
	}
	transform, err := addNode(container, "transform", 200, 80)
	if err != nil {
		return err
	}
	consumer, err := addNode(container, "consumer", 400, 0)
	if err != nil {
		return err
	}

	first, err := entities.NewLink(producer.Outputs()[0].ID(), transform.Inputs()[0].ID())
	if err != nil {
		return err
	}
	if err := scene.AddLink(first); err != nil {
		return err
	}
	second, err := entities.NewLink(transform.Outputs()[0].ID(), consumer.Inputs()[0].ID())
	if err != nil {
		return err
	}
	if err := scene.AddLink(second); err != nil {
		return err
	}

	// Cut the producer/transform pair; the link into consumer is dropped by
	// the snapshot filter since consumer stays behind.
	scene.SelectItems([]*entities.Node{producer, transform}, []*entities.Link{first, second})
	if err := container.Clipboard.Cut(ctx); err != nil {
		return err
	}

	if err := pasteAt(container, 600, 300); err != nil {
		return err
	}
	if err := pasteAt(container, 900, -120); err != nil {
		return err
	}

	logger.Info("session finished",
		zap.Int("nodes", scene.NodeCount()),
		zap.Int("links", scene.LinkCount()),
		zap.Int("checkpoints", container.History.Len()),
	)
	return nil
}

func addNode(container *di.Container, title string, x, y float64) (*entities.Node, error) {
	position, err := valueobjects.NewPosition(x, y)
	if err != nil {
		return nil, err
	}
	size, err := valueobjects.NewSize(120, 60)
	if err != nil {
		return nil, err
	}
	node, err := entities.NewNode(title, position, size, 1, 1)
	if err != nil {
		return nil, err
	}
	if err := container.Scene.AddNode(node); err != nil {
		return nil, err
	}
	return node, nil
}

func pasteAt(container *di.Container, x, y float64) error {
	pointer, err := valueobjects.NewPosition(x, y)
	if err != nil {
		return err
	}
	container.ViewPort.SetPointerPosition(pointer)
	return container.Clipboard.Paste(context.Background())
}

func serveMetrics(container *di.Container, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", container.Metrics.Handler())

	server := &http.Server{
		Addr:              container.Config.Metrics.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}

func waitForInterrupt() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
}

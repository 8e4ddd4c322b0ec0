// Package di assembles the editor's dependency graph.
package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"flowpad/application/services"
	"flowpad/infrastructure/config"
	"flowpad/infrastructure/memory"
	"flowpad/infrastructure/observability"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	LogLevel  zap.AtomicLevel
	Metrics   *observability.Collector
	History   *memory.HistoryLog
	Scene     *memory.Scene
	ViewPort  *memory.ViewPort
	Store     *memory.ClipboardStore
	Clipboard *services.ClipboardService
}

// NewContainer wires the full dependency graph by hand. The Wire injector in
// wire.go declares the same graph for generated initialization.
func NewContainer(cfg *config.Config) (*Container, error) {
	level, err := ProvideLogLevel(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := ProvideLogger(cfg, level)
	if err != nil {
		return nil, err
	}

	metrics := ProvideCollector()
	history := ProvideHistoryLog()
	scene := ProvideScene(cfg, history, logger)
	viewport := ProvideViewPort()
	store := ProvideClipboardStore()
	clipboard := services.NewClipboardService(scene, viewport, store, metrics, logger)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		LogLevel:  level,
		Metrics:   metrics,
		History:   history,
		Scene:     scene,
		ViewPort:  viewport,
		Store:     store,
		Clipboard: clipboard,
	}, nil
}

// ProvideLogLevel builds the logger's level handle. The handle is kept on
// the container so a configuration reload can adjust verbosity at runtime.
func ProvideLogLevel(cfg *config.Config) (zap.AtomicLevel, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return zap.AtomicLevel{}, err
	}
	return zap.NewAtomicLevelAt(level), nil
}

// ProvideLogger builds the zap logger from configuration
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

// ProvideCollector provides the Prometheus metrics collector
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("flowpad")
}

// ProvideHistoryLog provides the scene's history collaborator
func ProvideHistoryLog() *memory.HistoryLog {
	return memory.NewHistoryLog()
}

// ProvideScene provides the in-process scene with configured limits
func ProvideScene(cfg *config.Config, history *memory.HistoryLog, logger *zap.Logger) *memory.Scene {
	limits := memory.Limits{
		MaxNodes:        cfg.Limits.MaxNodesPerScene,
		MaxLinksPerPort: cfg.Limits.MaxLinksPerPort,
	}
	return memory.NewScene(limits, history, logger)
}

// ProvideViewPort provides the pointer-tracking viewport
func ProvideViewPort() *memory.ViewPort {
	return memory.NewViewPort()
}

// ProvideClipboardStore provides the single-slot clipboard store
func ProvideClipboardStore() *memory.ClipboardStore {
	return memory.NewClipboardStore()
}

//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"flowpad/application/ports"
	"flowpad/application/services"
	"flowpad/infrastructure/config"
	"flowpad/infrastructure/memory"
	"flowpad/infrastructure/observability"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideCollector,
	ProvideHistoryLog,
	ProvideScene,
	ProvideViewPort,
	ProvideClipboardStore,
	services.NewClipboardService,
	wire.Bind(new(ports.Scene), new(*memory.Scene)),
	wire.Bind(new(ports.ViewPort), new(*memory.ViewPort)),
	wire.Bind(new(ports.ClipboardStore), new(*memory.ClipboardStore)),
	wire.Bind(new(ports.MetricsRecorder), new(*observability.Collector)),
	wire.Struct(new(Container), "*"),
)

// InitializeContainer builds the container with Wire
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}

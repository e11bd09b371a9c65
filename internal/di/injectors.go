//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"msd/internal"
	"msd/internal/controllers"
	"msd/internal/providers"
	"msd/internal/services"
	"msd/internal/storage"
	"msd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,

		storage.NewZstdCompressor,
		storage.NewStore,
		storage.NewSnapshotManager,
		storage.NewScheduler,

		services.NewMeetingService,
		services.NewPricingService,
		provideStatsSource,

		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

package di

import (
	"msd/internal/providers"
	"msd/internal/services"
)

// provideStatsSource narrows the meeting service to the read-only view
// the metrics gauges sample.
func provideStatsSource(service services.MeetingServiceInterface) providers.StatsSource {
	return service
}

package storage

import (
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/roylee0704/gron"

	"msd/internal/providers"
	"msd/internal/storage/interfaces"
	"msd/internal/structures"
)

const persistMaxRetries = 3

type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	store     KeyValueStore
	snapshots *SnapshotManager
	metrics   providers.MetricsProviderInterface
	cron      *gron.Cron
	opsMu     sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		if err := s.Persist(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting snapshot: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted snapshot to file %s", s.config.Persistence.FilePath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore loads the snapshot only into an empty store, so a populated
// file-driver data directory is never clobbered by a stale backup.
func (s *Scheduler) Restore() error {
	keys, err := s.store.Keys("")
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		s.logger.Debugf(providers.TypeApp, "Store already holds %d keys, skipping snapshot restore", len(keys))
		return nil
	}
	return s.snapshots.LoadFromFile(s.config.Persistence.FilePath)
}

// Persist writes the snapshot, retrying transient failures with
// exponential backoff before giving up.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	op := func() error {
		return s.snapshots.SaveToFile(s.config.Persistence.FilePath)
	}
	err := backoff.Retry(op, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), persistMaxRetries))
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store KeyValueStore, snapshots *SnapshotManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:    config,
		logger:    logger,
		store:     store,
		snapshots: snapshots,
		metrics:   metrics,
	}
}

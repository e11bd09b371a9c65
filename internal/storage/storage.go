package storage

import (
	"fmt"

	"msd/internal/providers"
	"msd/internal/storage/interfaces"
	"msd/internal/structures"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
)

// KeyValueStore is the flat namespace all meeting collections live in.
// Keys are `meeting_<id>_<collection>`, values are JSON arrays produced
// by the models codec. Get reports absence via the bool, not an error;
// driver failures surface as *models.StorageError.
type KeyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

func NewStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (KeyValueStore, error) {
	switch conf.Storage.Driver {
	case "", DriverMemory:
		logger.Infof(providers.TypeApp, "Using in-memory storage driver")
		return NewMemoryStore(), nil
	case DriverFile:
		if !conf.Storage.Compression {
			compressor = nil
		}
		logger.Infof(providers.TypeApp, "Using file storage driver in %s (compression=%t)",
			conf.Storage.Dir, conf.Storage.Compression)
		return NewFileStore(conf.Storage.Dir, compressor)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}

package storage

import (
	"os"

	json "github.com/goccy/go-json"

	"msd/internal/providers"
	"msd/internal/storage/interfaces"
)

const snapshotVersion = 1

// Snapshot is the on-disk backup envelope: every key in the store with
// its raw JSON value, wrapped with an explicit version field so future
// formats can migrate old files.
type Snapshot struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

type SnapshotManager struct {
	store      KeyValueStore
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewSnapshotManager(store KeyValueStore, compressor interfaces.CompressorInterface, logger providers.Logger) *SnapshotManager {
	return &SnapshotManager{
		store:      store,
		compressor: compressor,
		logger:     logger,
	}
}

func (sm *SnapshotManager) SaveToFile(fileName string) error {
	keys, err := sm.store.Keys("")
	if err != nil {
		return err
	}

	snapshot := Snapshot{
		Version: snapshotVersion,
		Entries: make(map[string]json.RawMessage, len(keys)),
	}
	for _, key := range keys {
		val, ok, err := sm.store.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		snapshot.Entries[key] = json.RawMessage(val)
	}

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := sm.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (sm *SnapshotManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressed, err := sm.compressor.Decompress(data)
	if err != nil {
		return err
	}

	// Try the versioned envelope
	var snapshot Snapshot
	if err := json.Unmarshal(decompressed, &snapshot); err == nil && snapshot.Entries != nil {
		return sm.restoreEntries(snapshot.Entries)
	}

	// Legacy format: bare key-to-value map without the envelope
	sm.logger.Warnf(providers.TypeApp, "Inconsistent snapshot found, try to migrate from old data format")
	var legacy map[string]json.RawMessage
	if err := json.Unmarshal(decompressed, &legacy); err != nil {
		sm.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}
	sm.logger.Warnf(providers.TypeApp, "Migration from legacy snapshot format successful")
	return sm.restoreEntries(legacy)
}

func (sm *SnapshotManager) restoreEntries(entries map[string]json.RawMessage) error {
	for key, val := range entries {
		if err := sm.store.Set(key, []byte(val)); err != nil {
			return err
		}
	}
	return nil
}

func (sm *SnapshotManager) Close() {
	sm.compressor.Close()
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msd/internal/testutil"
)

func snapshotPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "msd.snapshot")
}

func TestSnapshotManager_SaveAndLoadRoundTrip(t *testing.T) {
	src := NewMemoryStore()
	require.NoError(t, src.Set("meeting_m1_chat", []byte(`[{"id":"1"}]`)))
	require.NoError(t, src.Set("meeting_m1_tasks", []byte(`[]`)))

	path := snapshotPath(t)
	sm := NewSnapshotManager(src, &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, sm.SaveToFile(path))

	dst := NewMemoryStore()
	restore := NewSnapshotManager(dst, &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, restore.LoadFromFile(path))

	val, ok, err := dst.Get("meeting_m1_chat")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), val)

	keys, err := dst.Keys("")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestSnapshotManager_SaveWritesVersionedEnvelope(t *testing.T) {
	src := NewMemoryStore()
	require.NoError(t, src.Set("key", []byte(`["x"]`)))

	path := snapshotPath(t)
	sm := NewSnapshotManager(src, &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, sm.SaveToFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	assert.Equal(t, snapshotVersion, snapshot.Version)
	assert.Contains(t, snapshot.Entries, "key")
}

func TestSnapshotManager_LoadMissingFileIsNoop(t *testing.T) {
	dst := NewMemoryStore()
	sm := NewSnapshotManager(dst, &testutil.MockCompressor{}, &testutil.MockLogger{})

	require.NoError(t, sm.LoadFromFile(filepath.Join(t.TempDir(), "absent")))

	keys, err := dst.Keys("")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSnapshotManager_MigratesLegacyFormat(t *testing.T) {
	// legacy snapshots were a bare key-to-value map without envelope
	legacy := []byte(`{"meeting_m1_chat":[{"id":"old"}]}`)
	path := snapshotPath(t)
	require.NoError(t, os.WriteFile(path, legacy, 0644))

	dst := NewMemoryStore()
	logger := &testutil.MockLogger{}
	sm := NewSnapshotManager(dst, &testutil.MockCompressor{}, logger)
	require.NoError(t, sm.LoadFromFile(path))

	val, ok, err := dst.Get("meeting_m1_chat")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"old"}]`), val)
	assert.True(t, logger.HasLevel("warn"))
}

func TestSnapshotManager_UnreadableSnapshotFails(t *testing.T) {
	path := snapshotPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	dst := NewMemoryStore()
	sm := NewSnapshotManager(dst, &testutil.MockCompressor{}, &testutil.MockLogger{})
	assert.Error(t, sm.LoadFromFile(path))
}

func TestSnapshotManager_ZstdRoundTrip(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	defer compressor.Close()

	src := NewMemoryStore()
	require.NoError(t, src.Set("key", []byte(`["payload"]`)))

	path := snapshotPath(t)
	sm := NewSnapshotManager(src, compressor, &testutil.MockLogger{})
	require.NoError(t, sm.SaveToFile(path))

	dst := NewMemoryStore()
	restore := NewSnapshotManager(dst, compressor, &testutil.MockLogger{})
	require.NoError(t, restore.LoadFromFile(path))

	val, ok, err := dst.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`["payload"]`), val)
}

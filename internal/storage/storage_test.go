package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msd/internal/structures"
	"msd/internal/testutil"
)

func TestNewStore_DefaultsToMemory(t *testing.T) {
	conf := &structures.Config{}
	store, err := NewStore(conf, &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
}

func TestNewStore_MemoryDriver(t *testing.T) {
	conf := &structures.Config{Storage: structures.StorageConfig{Driver: DriverMemory}}
	store, err := NewStore(conf, &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
}

func TestNewStore_FileDriver(t *testing.T) {
	conf := &structures.Config{Storage: structures.StorageConfig{
		Driver:      DriverFile,
		Dir:         t.TempDir(),
		Compression: true,
	}}
	store, err := NewStore(conf, &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, err)

	fs, ok := store.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, compressedExt, fs.ext)
}

func TestNewStore_FileDriverWithoutCompression(t *testing.T) {
	conf := &structures.Config{Storage: structures.StorageConfig{
		Driver: DriverFile,
		Dir:    t.TempDir(),
	}}
	store, err := NewStore(conf, &testutil.MockCompressor{}, &testutil.MockLogger{})
	require.NoError(t, err)

	fs, ok := store.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, plainExt, fs.ext)
}

func TestNewStore_UnknownDriver(t *testing.T) {
	conf := &structures.Config{Storage: structures.StorageConfig{Driver: "redis"}}
	_, err := NewStore(conf, &testutil.MockCompressor{}, &testutil.MockLogger{})
	assert.Error(t, err)
}

func TestZstdCompressor_RoundTrip(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	defer compressor.Close()

	payload := []byte(`{"messages":["hello","world","hello","world"]}`)
	compressed, err := compressor.Compress(payload)
	require.NoError(t, err)

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, decompressed)
}

func TestZstdCompressor_GarbageInput(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	defer compressor.Close()

	_, err = compressor.Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}

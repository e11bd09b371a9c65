package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"msd/internal/models"
	"msd/internal/storage/interfaces"
)

const (
	plainExt      = ".json"
	compressedExt = ".json.zst"
)

// FileStore keeps one file per key. Keys are query-escaped into file
// names so arbitrary meeting ids stay inside the data directory.
// Writes are atomic (tmp file, fsync, rename) so a crash never leaves
// a half-written collection behind.
type FileStore struct {
	dir        string
	compressor interfaces.CompressorInterface
	ext        string
}

func NewFileStore(dir string, compressor interfaces.CompressorInterface) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &models.StorageError{Op: "init", Key: dir, Err: err}
	}
	ext := plainExt
	if compressor != nil {
		ext = compressedExt
	}
	return &FileStore{
		dir:        dir,
		compressor: compressor,
		ext:        ext,
	}, nil
}

func (fs *FileStore) filePath(key string) string {
	return filepath.Join(fs.dir, url.QueryEscape(key)+fs.ext)
}

func (fs *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(fs.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, &models.StorageError{Op: "get", Key: key, Err: err}
	}

	if fs.compressor != nil {
		data, err = fs.compressor.Decompress(data)
		if err != nil {
			return nil, false, &models.CorruptRecordError{Key: key, Err: err}
		}
	}
	return data, true, nil
}

func (fs *FileStore) Set(key string, value []byte) error {
	data := value
	if fs.compressor != nil {
		var err error
		data, err = fs.compressor.Compress(value)
		if err != nil {
			return &models.StorageError{Op: "set", Key: key, Err: err}
		}
	}

	path := fs.filePath(key)
	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return &models.StorageError{Op: "set", Key: key, Err: err}
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return &models.StorageError{Op: "set", Key: key, Err: err}
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return &models.StorageError{Op: "set", Key: key, Err: err}
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return &models.StorageError{Op: "set", Key: key, Err: err}
	}

	if err = os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return &models.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (fs *FileStore) Delete(key string) error {
	if err := os.Remove(fs.filePath(key)); err != nil && !os.IsNotExist(err) {
		return &models.StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (fs *FileStore) Keys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, &models.StorageError{Op: "keys", Key: fs.dir, Err: err}
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fs.ext) {
			continue
		}
		key, err := url.QueryUnescape(strings.TrimSuffix(name, fs.ext))
		if err != nil {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

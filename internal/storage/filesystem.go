package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docsign/internal/config"
)

// ErrInvalidKey indicates a key that is empty, absolute, or attempts to
// escape the managed root.
var ErrInvalidKey = errors.New("storage: invalid key")

// fsStore implements Store on the local filesystem. Artifacts live as files
// under a root directory injected at construction. The root is created
// lazily on first write, never at process start.
type fsStore struct {
	root string
}

// NewFilesystem creates a filesystem-backed artifact store rooted at the
// configured directory. The path is resolved to an absolute path up front;
// no directories are created until the first Put.
func NewFilesystem(cfg config.StorageConfig) (Store, error) {
	if cfg.RootDir == "" {
		return nil, fmt.Errorf("storage root directory is required")
	}
	abs, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	return &fsStore{root: abs}, nil
}

func (s *fsStore) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	path, err := s.fullPath(key)
	if err != nil {
		return ObjectInfo{}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("create artifact directory: %w", err)
	}

	// Write through a temp file and rename so a failed write never leaves a
	// partial artifact under the final key.
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create temp artifact: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return ObjectInfo{}, fmt.Errorf("write artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return ObjectInfo{}, fmt.Errorf("finalize artifact: %w", err)
	}

	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: time.Now().UTC(),
		Metadata:     opt.Metadata,
	}, nil
}

func (s *fsStore) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	path, err := s.fullPath(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("open artifact: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("stat artifact: %w", err)
	}
	return f, ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		LastModified: st.ModTime(),
	}, nil
}

// Delete removes the artifact if present; a missing file is not an error.
func (s *fsStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.fullPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove artifact: %w", err)
	}
	return nil
}

func (s *fsStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	path, err := s.fullPath(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat artifact: %w", err)
	}
	return true, nil
}

// fullPath resolves a key to an absolute path inside the managed root,
// rejecting traversal attempts.
func (s *fsStore) fullPath(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", ErrInvalidKey
	}
	full := filepath.Join(s.root, cleaned)
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return full, nil
}

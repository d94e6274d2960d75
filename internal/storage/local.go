package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// localStore implements ImageStore on the local file system. Files are
// written under dir and served back via the /static/images/ route.
type localStore struct {
	dir    string
	logger zerolog.Logger
}

// NewLocalStore creates a file-system image store, creating the
// directory if it does not exist.
func NewLocalStore(dir string, logger zerolog.Logger) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}

	return &localStore{
		dir:    dir,
		logger: logger.With().Str("component", "local-image-store").Logger(),
	}, nil
}

// Save writes the image under a uuid-prefixed name so concurrent
// uploads of identically named files never collide.
func (s *localStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New(), filepath.Base(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to create image file")
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to write image file")
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	s.logger.Debug().Str("file", name).Msg("image stored")

	return "/static/images/" + name, nil
}

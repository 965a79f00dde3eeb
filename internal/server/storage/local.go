package storage

import (
	"context"
	"path"
	"path/filepath"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/filex"
)

// DefaultURLPrefix is where the local upload directory is served.
const DefaultURLPrefix = "/uploads"

// LocalStore writes uploads into a directory served statically by the API.
// It refuses to work in production.
type LocalStore struct {
	dir        string
	urlPrefix  string
	production bool
}

func NewLocalStore(dir, urlPrefix string, production bool) *LocalStore {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	return &LocalStore{dir: dir, urlPrefix: urlPrefix, production: production}
}

func (s *LocalStore) Ready() error {
	if s.production {
		return common.ErrForbidden
	}
	return nil
}

func (s *LocalStore) Dir() string { return s.dir }

// Put creates the directory when missing and writes the file atomically.
func (s *LocalStore) Put(_ context.Context, name string, data []byte, _ string) (string, error) {
	if err := s.Ready(); err != nil {
		return "", err
	}

	name = filepath.Base(name)
	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}
	if err := filex.WriteFileAtomic(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}

	return path.Join(s.urlPrefix, name), nil
}

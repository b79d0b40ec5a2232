// Package filestore reads and writes whole files under a single directory.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/indigo-web/minihttp/http/status"
)

// ErrNotFound is returned on every failure of both reading and writing: missing file,
// missing directory component, permission problems, short writes and so on. The
// underlying error is wrapped, so it stays accessible via errors.Is/errors.As.
var ErrNotFound = status.NewError(status.NotFound, "file not found")

var errIsDir = errors.New("is a directory")

type Store struct {
	dir string
}

// New returns a store rooted at dir. Empty dir results in a disabled store.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Enabled indicates whether a directory was configured at all.
func (s *Store) Enabled() bool {
	return len(s.dir) > 0
}

// Read returns the whole file contents. The file is opened once and the descriptor is
// stat'ed, so the checked file is the one being read.
func (s *Store) Read(name string) ([]byte, error) {
	if !s.Enabled() {
		return nil, ErrNotFound
	}

	path := s.path(name)

	fd, err := os.Open(path)
	if err != nil {
		return nil, notFound(path, err)
	}

	defer func() {
		_ = fd.Close()
	}()

	stat, err := fd.Stat()
	if err != nil {
		return nil, notFound(path, err)
	}

	if stat.IsDir() {
		return nil, notFound(path, errIsDir)
	}

	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, notFound(path, err)
	}

	return data, nil
}

// Write creates the file or truncates the existing one and writes the data verbatim.
func (s *Store) Write(name string, data []byte) (err error) {
	if !s.Enabled() {
		return ErrNotFound
	}

	path := s.path(name)

	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return notFound(path, err)
	}

	defer func() {
		if cerr := fd.Close(); cerr != nil && err == nil {
			err = notFound(path, cerr)
		}
	}()

	if _, err = fd.Write(data); err != nil {
		return notFound(path, err)
	}

	return nil
}

// path joins the directory and the name literally, without any cleaning.
func (s *Store) path(name string) string {
	return s.dir + "/" + name
}

func notFound(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrNotFound, path, cause)
}

// Package checkpoint persists the height of the last committed block on the local filesystem.
package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/utxo/chain"
)

// DefaultPath is where the reporter keeps its progress unless configured otherwise.
const DefaultPath = "/tmp/bitcoin.reporter.progress"

// File stores the checkpoint as a base-10 integer in a plain-text file.
type File struct {
	path string
}

// NewFile creates a file checkpoint store at path.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{path: path}
}

// Path returns the location of the checkpoint file.
func (f *File) Path() string {
	return f.path
}

// Load returns the stored height. An absent file is created empty and reported as no checkpoint.
func (f *File) Load(_ context.Context) (uint64, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := f.create(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: read %s: %w", chain.ErrStorageUnavailable, f.path, err)
	}

	content := strings.TrimRight(string(data), "\r\n")
	if content == "" {
		return 0, false, nil
	}
	height, err := strconv.ParseUint(content, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: malformed checkpoint in %s: %w", chain.ErrStorageUnavailable, f.path, err)
	}
	return height, true, nil
}

// Save replaces the stored height. The value is written to a temporary file next to the
// target and renamed over it, so readers never observe a partial write.
func (f *File) Save(_ context.Context, height uint64) error {
	dir, base := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %w", chain.ErrStorageUnavailable, f.path, err)
	}
	tmpName := tmp.Name()

	_, err = tmp.WriteString(strconv.FormatUint(height, 10))
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, f.path)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", chain.ErrStorageUnavailable, f.path, err)
	}
	return nil
}

func (f *File) create() error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", chain.ErrStorageUnavailable, f.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: create %s: %w", chain.ErrStorageUnavailable, f.path, err)
	}
	return nil
}

// Package storage saves pulled transfer payloads on local disk.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FilePrefix is the base name of saved payloads
const FilePrefix = "data"

// DiskSaver writes payloads into a download directory
type DiskSaver struct {
	dir    string
	logger *zap.Logger
}

// NewDiskSaver creates the download directory if needed
func NewDiskSaver(dir string, logger *zap.Logger) (*DiskSaver, error) {
	if dir == "" {
		return nil, fmt.Errorf("download directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}
	return &DiskSaver{dir: dir, logger: logger.Named("storage")}, nil
}

// Save streams payload into a transient file and publishes it as
// data-<transferID> once fully written. The transient file never survives
// a failed save.
func (s *DiskSaver) Save(transferID string, payload io.Reader) (path string, err error) {
	name := FileName(transferID)

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.part")
	if err != nil {
		return "", fmt.Errorf("failed to create transient file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	written, err := io.Copy(tmp, payload)
	if err != nil {
		return "", fmt.Errorf("failed to write payload: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close transient file: %w", err)
	}

	path = filepath.Join(s.dir, name)
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to publish payload: %w", err)
	}

	s.logger.Info("Payload saved",
		zap.String("transfer_id", transferID),
		zap.String("path", path),
		zap.Int64("bytes", written))

	return path, nil
}

// FileName returns the saved file name for a transfer. Path separators in the
// id are replaced so the file always lands inside the download directory.
func FileName(transferID string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, transferID)
	if safe == "" || safe == "." || safe == ".." {
		return FilePrefix
	}
	return FilePrefix + "-" + safe
}

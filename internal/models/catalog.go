// Package models discovers local model files that a future generation backend could load.
package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/temirov/ia-coding/internal/fsops"
)

// DefaultExtension is the file extension of GGUF model files.
const DefaultExtension = ".gguf"

const (
	statDirectoryErrorFormat  = "stat models directory %s: %w"
	notADirectoryErrorFormat  = "models path %s is not a directory"
	walkDirectoryErrorFormat  = "walk models directory %s: %w"
	readHeaderErrorFormat     = "read header of %s: %w"
	missingDirectoryErrFormat = "%w: %s"
)

var (
	// ErrDirectoryMissing indicates the configured models directory does not exist.
	ErrDirectoryMissing = errors.New("models directory does not exist")

	ggufMagic = []byte("GGUF")
)

// ModelFile describes one candidate model file.
type ModelFile struct {
	Path      string
	Name      string
	SizeBytes int64
	// Valid reports whether the file starts with the GGUF magic bytes.
	Valid bool
}

// Catalog lists model files below a directory.
type Catalog struct {
	fs        fsops.FS
	extension string
}

// NewCatalog builds a catalog over the given filesystem. An empty extension selects DefaultExtension.
func NewCatalog(filesystem fsops.FS, extension string) Catalog {
	normalizedExtension := strings.ToLower(strings.TrimSpace(extension))
	if normalizedExtension == "" {
		normalizedExtension = DefaultExtension
	}
	if !strings.HasPrefix(normalizedExtension, ".") {
		normalizedExtension = "." + normalizedExtension
	}
	return Catalog{fs: filesystem, extension: normalizedExtension}
}

// Scan walks directory and returns model files sorted by path.
// Dot-directories are skipped.
func (catalog Catalog) Scan(directory string) ([]ModelFile, error) {
	cleanDirectory := filepath.Clean(directory)
	directoryInfo, statErr := catalog.fs.Stat(cleanDirectory)
	if statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return nil, fmt.Errorf(missingDirectoryErrFormat, ErrDirectoryMissing, cleanDirectory)
		}
		return nil, fmt.Errorf(statDirectoryErrorFormat, cleanDirectory, statErr)
	}
	if !directoryInfo.IsDir() {
		return nil, fmt.Errorf(notADirectoryErrorFormat, cleanDirectory)
	}

	var modelFiles []ModelFile
	walkErr := catalog.fs.WalkDir(cleanDirectory, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != cleanDirectory && strings.HasPrefix(entry.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != catalog.extension {
			return nil
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			return infoErr
		}
		valid, headerErr := catalog.hasMagic(path)
		if headerErr != nil {
			return headerErr
		}
		modelFiles = append(modelFiles, ModelFile{
			Path:      path,
			Name:      filepath.Base(path),
			SizeBytes: info.Size(),
			Valid:     valid,
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf(walkDirectoryErrorFormat, cleanDirectory, walkErr)
	}

	sort.Slice(modelFiles, func(left, right int) bool {
		return modelFiles[left].Path < modelFiles[right].Path
	})
	return modelFiles, nil
}

func (catalog Catalog) hasMagic(path string) (bool, error) {
	file, openErr := catalog.fs.Open(path)
	if openErr != nil {
		return false, fmt.Errorf(readHeaderErrorFormat, path, openErr)
	}
	defer func(closer io.Closer) { _ = closer.Close() }(file)

	header := make([]byte, len(ggufMagic))
	_, readErr := io.ReadFull(file, header)
	if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
		return false, nil
	}
	if readErr != nil {
		return false, fmt.Errorf(readHeaderErrorFormat, path, readErr)
	}
	return bytes.Equal(header, ggufMagic), nil
}

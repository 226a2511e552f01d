package fsops

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the read-only filesystem surface used across the app.
// Tests seed content through Mem.Fs or the OS directly.
type FS interface {
	Open(name string) (io.ReadCloser, error)
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// ---------- OS-backed implementation ----------

type OS struct{}

func NewOS() OS { return OS{} }

func (OS) Open(name string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, err
	}
	return file, nil
}
func (OS) ReadFile(name string) ([]byte, error)  { return os.ReadFile(filepath.Clean(name)) }
func (OS) Stat(name string) (fs.FileInfo, error) { return os.Stat(filepath.Clean(name)) }

// WalkDir follows a symlinked root, like Stat does. Paths handed to fn stay under root as given.
func (OS) WalkDir(root string, fn fs.WalkDirFunc) error {
	cleanRoot := filepath.Clean(root)
	resolvedRoot, resolveErr := filepath.EvalSymlinks(cleanRoot)
	if resolveErr != nil {
		return fn(cleanRoot, nil, resolveErr)
	}
	return filepath.WalkDir(resolvedRoot, func(path string, entry fs.DirEntry, err error) error {
		if relativePath, relErr := filepath.Rel(resolvedRoot, path); relErr == nil {
			path = filepath.Join(cleanRoot, relativePath)
		}
		return fn(path, entry, err)
	})
}

// ---------- In-memory implementation (for tests) ----------

type Mem struct{ Fs afero.Fs }

func NewMem() Mem { return Mem{Fs: afero.NewMemMapFs()} }

func (m Mem) Open(name string) (io.ReadCloser, error) {
	file, err := m.Fs.Open(filepath.Clean(name))
	if err != nil {
		return nil, err
	}
	return file, nil
}
func (m Mem) ReadFile(name string) ([]byte, error)  { return afero.ReadFile(m.Fs, filepath.Clean(name)) }
func (m Mem) Stat(name string) (fs.FileInfo, error) { return m.Fs.Stat(filepath.Clean(name)) }
func (m Mem) WalkDir(root string, fn fs.WalkDirFunc) error {
	root = filepath.Clean(root)
	return afero.Walk(m.Fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(p, nil, err)
		}
		return fn(p, memDirEntry{info}, nil)
	})
}

type memDirEntry struct{ os.FileInfo }

func (d memDirEntry) Type() fs.FileMode          { return d.Mode().Type() }
func (d memDirEntry) Info() (fs.FileInfo, error) { return d.FileInfo, nil }

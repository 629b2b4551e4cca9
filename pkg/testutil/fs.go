package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ImageTree creates a MemMapFs holding one small file per path. Relative
// paths are placed below root.
func ImageTree(t *testing.T, root string, paths ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, afero.WriteFile(fs, p, []byte("img"), 0644))
	}
	return fs
}

// Exists reports whether path exists on fs, failing the test on other errors
func Exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return ok
}

// FaultyFs wraps an afero.Fs and fails Remove and Stat for registered paths
type FaultyFs struct {
	afero.Fs

	mu           sync.RWMutex
	removeErrors map[string]error
	statErrors   map[string]error
	removed      []string
}

// NewFaultyFs wraps base
func NewFaultyFs(base afero.Fs) *FaultyFs {
	return &FaultyFs{
		Fs:           base,
		removeErrors: make(map[string]error),
		statErrors:   make(map[string]error),
	}
}

// FailRemove makes Remove(path) return err
func (f *FaultyFs) FailRemove(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeErrors[filepath.Clean(path)] = err
}

// FailStat makes Stat(path) return err
func (f *FaultyFs) FailStat(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statErrors[filepath.Clean(path)] = err
}

// Removed returns the paths successfully removed, in call order
func (f *FaultyFs) Removed() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.removed...)
}

// Remove implements afero.Fs
func (f *FaultyFs) Remove(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.removeErrors[filepath.Clean(name)]; ok {
		return &os.PathError{Op: "remove", Path: name, Err: err}
	}
	if err := f.Fs.Remove(name); err != nil {
		return err
	}
	f.removed = append(f.removed, name)
	return nil
}

// Stat implements afero.Fs
func (f *FaultyFs) Stat(name string) (os.FileInfo, error) {
	f.mu.RLock()
	err, ok := f.statErrors[filepath.Clean(name)]
	f.mu.RUnlock()
	if ok {
		return nil, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return f.Fs.Stat(name)
}

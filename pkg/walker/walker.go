// Package walker enumerates candidate images below a root directory and
// expresses each one as a texture path relative to the asset root anchor.
package walker

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/arthur-debert/ddsbatch/pkg/logging"
	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultExtensions is the image allow-list, compared case-insensitively
var DefaultExtensions = []string{"png", "jpg", "tga", "mbm"}

// Candidate is an image found by the walker
type Candidate struct {
	// Abs is the filesystem path handed to the encoder. It is absolute when
	// the walker root is.
	Abs string
	// Path is the anchor-relative path used for classification
	Path rules.TexturePath
}

// Walker walks a directory tree on an afero filesystem
type Walker struct {
	fs         afero.Fs
	root       string
	anchor     string
	extensions map[string]bool
	logger     zerolog.Logger
}

// New creates a walker. An empty extension list means DefaultExtensions.
func New(fs afero.Fs, root, anchor string, extensions []string) *Walker {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}
	return &Walker{
		fs:         fs,
		root:       root,
		anchor:     anchor,
		extensions: exts,
		logger:     logging.GetLogger("walker"),
	}
}

// Root returns the directory being walked
func (w *Walker) Root() string {
	return w.root
}

// Walk calls fn for every image below the root. It stops at the first error
// returned by fn and when ctx is cancelled. Unreadable subdirectories are
// logged and skipped; an unreadable root is fatal. Symlinks to image files
// are yielded under the link's own path.
func (w *Walker) Walk(ctx context.Context, fn func(Candidate) error) error {
	info, err := w.fs.Stat(w.root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWalk, "cannot read root directory %s", w.root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrWalk, "root %s is not a directory", w.root)
	}

	err = afero.Walk(w.fs, w.root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == w.root {
				return errors.Wrapf(err, errors.ErrWalk, "cannot read root directory %s", w.root)
			}
			w.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.IsImage(path) {
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			// Links to files are images; links to directories are not followed
			target, err := w.fs.Stat(path)
			if err != nil {
				w.logger.Warn().Err(err).Str("path", path).Msg("Skipping broken link")
				return nil
			}
			info = target
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		candidate := Candidate{
			Abs:  path,
			Path: TexturePathOf(path, w.root, w.anchor),
		}
		w.logger.Trace().Str("path", string(candidate.Path)).Msg("Found image")
		return fn(candidate)
	})
	return err
}

// IsImage reports whether the file extension is in the allow-list
func (w *Walker) IsImage(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ext != "" && w.extensions[strings.ToLower(ext)]
}

// TexturePathOf strips everything up to and including the last path
// segment equal to anchor and normalises separators to '/'. Paths without
// an anchor segment are made relative to root instead.
func TexturePathOf(path, root, anchor string) rules.TexturePath {
	slashed := strings.ReplaceAll(path, `\`, "/")
	segments := strings.Split(slashed, "/")
	for i := len(segments) - 2; i >= 0; i-- {
		if segments[i] == anchor {
			return rules.TexturePath(strings.Join(segments[i+1:], "/"))
		}
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
	return rules.TexturePath(strings.TrimPrefix(rel, "./"))
}

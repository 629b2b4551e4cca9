// Test Type: Unit Test
// Description: Tests for image discovery and texture path computation

package walker_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	ddserrors "github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/arthur-debert/ddsbatch/pkg/testutil"
	"github.com/arthur-debert/ddsbatch/pkg/walker"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	return testutil.ImageTree(t, "/", files...)
}

func collect(t *testing.T, w *walker.Walker) map[rules.TexturePath]string {
	t.Helper()
	found := make(map[rules.TexturePath]string)
	err := w.Walk(context.Background(), func(c walker.Candidate) error {
		found[c.Path] = c.Abs
		return nil
	})
	require.NoError(t, err)
	return found
}

func TestWalk(t *testing.T) {
	t.Run("filters_by_extension_case_insensitive", func(t *testing.T) {
		fs := newTree(t,
			"/ksp/GameData/Squad/Parts/engine.png",
			"/ksp/GameData/Squad/Parts/engine_NRM.PNG",
			"/ksp/GameData/Squad/Flags/flag.Jpg",
			"/ksp/GameData/Mod/Textures/sky.tga",
			"/ksp/GameData/Mod/Textures/old.mbm",
			"/ksp/GameData/Mod/Textures/done.dds",
			"/ksp/GameData/Mod/Mod.cfg",
			"/ksp/GameData/Mod/README",
		)

		found := collect(t, walker.New(fs, "/ksp/GameData", "GameData", nil))

		assert.Len(t, found, 5)
		assert.Equal(t, "/ksp/GameData/Squad/Parts/engine.png", found["Squad/Parts/engine.png"])
		assert.Contains(t, found, rules.TexturePath("Squad/Parts/engine_NRM.PNG"))
		assert.Contains(t, found, rules.TexturePath("Squad/Flags/flag.Jpg"))
		assert.Contains(t, found, rules.TexturePath("Mod/Textures/sky.tga"))
		assert.Contains(t, found, rules.TexturePath("Mod/Textures/old.mbm"))
	})

	t.Run("custom_extensions", func(t *testing.T) {
		fs := newTree(t, "/GameData/a.png", "/GameData/b.tga")
		found := collect(t, walker.New(fs, "/GameData", "GameData", []string{".TGA"}))
		assert.Equal(t, []rules.TexturePath{"b.tga"}, keys(found))
	})

	t.Run("root_below_anchor_keeps_full_texture_path", func(t *testing.T) {
		fs := newTree(t, "/ksp/GameData/Squad/Parts/engine.png")
		found := collect(t, walker.New(fs, "/ksp/GameData/Squad", "GameData", nil))
		assert.Contains(t, found, rules.TexturePath("Squad/Parts/engine.png"))
	})

	t.Run("missing_root_is_fatal", func(t *testing.T) {
		w := walker.New(afero.NewMemMapFs(), "/nowhere", "GameData", nil)
		err := w.Walk(context.Background(), func(walker.Candidate) error { return nil })
		require.Error(t, err)
		assert.True(t, ddserrors.IsErrorCode(err, ddserrors.ErrWalk))
	})

	t.Run("root_must_be_directory", func(t *testing.T) {
		fs := newTree(t, "/GameData.png")
		err := walker.New(fs, "/GameData.png", "GameData", nil).
			Walk(context.Background(), func(walker.Candidate) error { return nil })
		assert.True(t, ddserrors.IsErrorCode(err, ddserrors.ErrWalk))
	})

	t.Run("callback_error_stops_walk", func(t *testing.T) {
		fs := newTree(t, "/GameData/a.png", "/GameData/b.png")
		stop := errors.New("stop")
		calls := 0
		err := walker.New(fs, "/GameData", "GameData", nil).
			Walk(context.Background(), func(walker.Candidate) error {
				calls++
				return stop
			})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 1, calls)
	})

	t.Run("unreadable_entry_is_skipped", func(t *testing.T) {
		fs := testutil.NewFaultyFs(newTree(t, "/GameData/Locked/a.png", "/GameData/Open/b.png"))
		fs.FailStat("/GameData/Locked", os.ErrPermission)

		found := collect(t, walker.New(fs, "/GameData", "GameData", nil))
		assert.Equal(t, []rules.TexturePath{"Open/b.png"}, keys(found))
	})

	t.Run("follows_links_to_files", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need privileges on windows")
		}
		dir := t.TempDir()
		root := filepath.Join(dir, "GameData")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "Mod", "Shared"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "Mod", "real.png"), []byte("img"), 0644))
		require.NoError(t, os.Symlink(filepath.Join(root, "Mod", "real.png"), filepath.Join(root, "Mod", "link.png")))
		require.NoError(t, os.Symlink(filepath.Join(root, "Mod", "missing.png"), filepath.Join(root, "Mod", "broken.png")))
		require.NoError(t, os.Symlink(filepath.Join(root, "Mod", "Shared"), filepath.Join(root, "Mod", "dir.png")))

		found := collect(t, walker.New(afero.NewOsFs(), root, "GameData", nil))
		assert.Equal(t, []rules.TexturePath{"Mod/link.png", "Mod/real.png"}, keys(found))
		assert.Equal(t, filepath.Join(root, "Mod", "link.png"), found["Mod/link.png"])
	})

	t.Run("cancelled_context_stops_walk", func(t *testing.T) {
		fs := newTree(t, "/GameData/a.png")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := walker.New(fs, "/GameData", "GameData", nil).
			Walk(ctx, func(walker.Candidate) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestTexturePathOf(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		root   string
		anchor string
		want   rules.TexturePath
	}{
		{"anchor_in_path", "/games/KSP/GameData/Squad/Parts/a.png", "/games/KSP/GameData", "GameData", "Squad/Parts/a.png"},
		{"relative_root", "GameData/Mod/a.png", "./GameData", "GameData", "Mod/a.png"},
		{"windows_separators", `C:\KSP\GameData\Mod\Parts\a.png`, `C:\KSP\GameData`, "GameData", "Mod/Parts/a.png"},
		{"last_anchor_wins", "/x/GameData/Backup/GameData/Mod/a.png", "/x/GameData", "GameData", "Mod/a.png"},
		{"anchor_must_be_whole_segment", "/x/MyGameData/Mod/a.png", "/x/MyGameData", "GameData", "Mod/a.png"},
		{"file_named_like_anchor", "/x/Mod/GameData", "/x", "GameData", "Mod/GameData"},
		{"no_anchor_falls_back_to_root", "/data/textures/Mod/a.png", "/data/textures", "GameData", "Mod/a.png"},
		{"space_in_path", "/x/GameData/Space Factory Ind/a.png", "/x/GameData", "GameData", "Space Factory Ind/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, walker.TexturePathOf(tt.path, tt.root, tt.anchor))
		})
	}
}

func keys(m map[rules.TexturePath]string) []rules.TexturePath {
	var out []rules.TexturePath
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRoots creates {tmp}/cstrike and {tmp}/valve with the given files.
func setupRoots(t *testing.T, primary, fallback []string) string {
	t.Helper()
	root := t.TempDir()
	for dir, files := range map[string][]string{"cstrike": primary, "valve": fallback} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
		for _, f := range files {
			p := filepath.Join(root, dir, filepath.FromSlash(f))
			require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
			require.NoError(t, os.WriteFile(p, []byte("data"), 0o644))
		}
	}
	return root
}

func TestResolver_Locate(t *testing.T) {
	root := setupRoots(t,
		[]string{"models/vip.mdl", "sound/shared.wav"},
		[]string{"sound/shared.wav", "sprites/laser.spr"},
	)
	r := NewResolver(Config{GameDir: filepath.Join(root, "cstrike"), FallbackDir: "valve"})

	t.Run("Primary", func(t *testing.T) {
		loc, err := r.Locate("models/vip.mdl")
		require.NoError(t, err)
		assert.Equal(t, RootPrimary, loc.Root)
		assert.Equal(t, filepath.Join(root, "cstrike", "models", "vip.mdl"), loc.Path)
	})

	t.Run("PrimaryWins", func(t *testing.T) {
		loc, err := r.Locate("sound/shared.wav")
		require.NoError(t, err)
		assert.Equal(t, RootPrimary, loc.Root)
	})

	t.Run("Fallback", func(t *testing.T) {
		loc, err := r.Locate("sprites/laser.spr")
		require.NoError(t, err)
		assert.Equal(t, RootFallback, loc.Root)
		assert.Equal(t, filepath.Join(root, "valve", "sprites", "laser.spr"), loc.Path)
	})

	t.Run("Missing", func(t *testing.T) {
		loc, err := r.Locate("models/nope.mdl")
		require.NoError(t, err)
		assert.False(t, loc.Found())
		assert.Empty(t, loc.Path)
	})
}

func TestResolver_Exists(t *testing.T) {
	root := setupRoots(t, []string{"maps/de_dust.bsp"}, nil)
	r := NewResolver(Config{GameDir: filepath.Join(root, "cstrike") + "/", FallbackDir: "valve"})

	ok, err := r.Exists("maps/de_dust.bsp")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Exists("maps/de_aztec.bsp")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestResolver_Candidates(t *testing.T) {
	tests := []struct {
		name         string
		gameDir      string
		wantPrimary  string
		wantFallback string
	}{
		{"Absolute", "/hlds/cstrike", "/hlds/cstrike/a.mdl", "/hlds/valve/a.mdl"},
		{"TrailingSeparator", "/hlds/cstrike/", "/hlds/cstrike/a.mdl", "/hlds/valve/a.mdl"},
		{"NoSeparator", "cstrike", "cstrike/a.mdl", "valve/a.mdl"},
		{"Backslash", `C:\hlds\cstrike`, `C:\hlds\cstrike/a.mdl`, `C:\hlds\valve/a.mdl`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(Config{GameDir: tt.gameDir, FallbackDir: "valve"})
			primary, fallback, err := r.candidates("a.mdl")
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.wantPrimary), primary)
			assert.Equal(t, filepath.FromSlash(tt.wantFallback), fallback)
		})
	}
}

func TestResolver_PathTooLong(t *testing.T) {
	r := NewResolver(Config{GameDir: "/hlds/cstrike", FallbackDir: "valve"})
	r.readable = func(string) bool { return true }

	_, err := r.Exists(strings.Repeat("a", MaxPathLength) + ".mdl")
	assert.ErrorIs(t, err, ErrPathTooLong)

	// Just under the limit still resolves.
	rel := strings.Repeat("a", MaxPathLength-len("/hlds/cstrike/")-1)
	ok, err := r.Exists(rel)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestResolver_ManifestPath(t *testing.T) {
	r := NewResolver(Config{GameDir: "/hlds/cstrike", FallbackDir: "valve", Manifest: "addons/precache/precache.cfg"})

	path, err := r.ManifestPath()
	assert.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/hlds/cstrike/addons/precache/precache.cfg"), path)
	assert.Equal(t, filepath.FromSlash("/hlds/cstrike"), r.GameDir())
}

func TestRoot_String(t *testing.T) {
	assert.Equal(t, "primary", RootPrimary.String())
	assert.Equal(t, "fallback", RootFallback.String())
	assert.Equal(t, "none", RootNone.String())
}

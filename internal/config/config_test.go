package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("default path lives under the home shorthand", func(t *testing.T) {
		require.Equal(t, "~/.local/share/stashit/", Default().Path)
	})

	t.Run("load returns default when config does not exist", func(t *testing.T) {
		config, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		require.NoError(t, err)
		require.Equal(t, Default(), config)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads path from toml file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "stashit.toml")
		err := os.WriteFile(configPath, []byte("path = \"/srv/stashes\"\n"), 0600)
		require.NoError(t, err)

		config, err := Load(configPath)
		require.NoError(t, err)
		require.Equal(t, "/srv/stashes", config.Path)
	})

	t.Run("empty path falls back to default", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "stashit.toml")
		err := os.WriteFile(configPath, []byte("path = \"\"\n"), 0600)
		require.NoError(t, err)

		config, err := Load(configPath)
		require.NoError(t, err)
		require.Equal(t, DefaultPath, config.Path)
	})

	t.Run("unreadable config falls back to default with an error", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "stashit.toml")
		err := os.WriteFile(configPath, []byte("path = [not toml"), 0600)
		require.NoError(t, err)

		config, err := LoadOrDefault(configPath)
		require.Error(t, err)
		require.Equal(t, Default(), config)
	})
}

func TestSave(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "stashit.toml")

	err := Save(configPath, Config{Path: "~/stashes"})
	require.NoError(t, err)
	require.FileExists(t, configPath)

	config, err := Load(configPath)
	require.NoError(t, err)
	require.Equal(t, "~/stashes", config.Path)
}

func TestGetSet(t *testing.T) {
	config := Default()

	value, err := Get(config, KeyPath)
	require.NoError(t, err)
	require.Equal(t, DefaultPath, value)

	require.NoError(t, Set(&config, KeyPath, "/data/stash"))
	require.Equal(t, "/data/stash", config.Path)

	require.NoError(t, Set(&config, KeyPath, "~/stashes"))
	require.Equal(t, "~/stashes", config.Path)

	t.Chdir(t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, Set(&config, KeyPath, "relative/stash"))
	require.Equal(t, filepath.Join(wd, "relative", "stash"), config.Path)

	require.NoError(t, Set(&config, KeyPath, "/data/stash"))
	require.Error(t, Set(&config, KeyPath, "  "))
	require.Equal(t, "/data/stash", config.Path)

	_, err = Get(config, "colour")
	require.ErrorContains(t, err, "unknown configuration key")
	require.Error(t, Set(&config, "colour", "red"))
}

func TestFilePath(t *testing.T) {
	t.Run("honours STASHIT_CONFIG", func(t *testing.T) {
		t.Setenv("STASHIT_CONFIG", "/etc/stashit.toml")
		require.Equal(t, "/etc/stashit.toml", FilePath())
	})

	t.Run("defaults to a stashit.toml file", func(t *testing.T) {
		t.Setenv("STASHIT_CONFIG", "")
		require.Equal(t, "stashit.toml", filepath.Base(FilePath()))
		require.Equal(t, "stashit", filepath.Base(filepath.Dir(FilePath())))
	})
}

func TestArchiveRoot(t *testing.T) {
	t.Run("expands the home shorthand", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		root := ArchiveRoot(Default())
		require.Equal(t, filepath.Join(home, ".local", "share", "stashit"), root)
	})

	t.Run("falls back to the temp dir without a home", func(t *testing.T) {
		t.Setenv("HOME", "")

		root := ArchiveRoot(Config{Path: "~/stashes"})
		require.Equal(t, filepath.Join(os.TempDir(), "stashes"), root)
	})

	t.Run("keeps absolute paths", func(t *testing.T) {
		require.Equal(t, "/var/lib/stashit", ArchiveRoot(Config{Path: "/var/lib/stashit/"}))
	})

	t.Run("resolves relative paths", func(t *testing.T) {
		root := ArchiveRoot(Config{Path: "stashes"})
		require.True(t, filepath.IsAbs(root))
		require.Equal(t, "stashes", filepath.Base(root))
	})
}

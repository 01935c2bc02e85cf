package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"stashit.dev/stashit/internal/config"
)

// Scene represents a test scene: an archive root and a working directory
// holding the files that get stashed. Both live under t.TempDir().
type Scene struct {
	Root       string // Archive root; not created until the first stash
	Dir        string // Working directory for files to stash
	ConfigPath string // Config file pointing at Root
	LogFile    string // Log file used by commands run through the scene
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene.
// Cleanup is handled by t.TempDir().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	base := t.TempDir()
	scene := &Scene{
		Root:       filepath.Join(base, "archive", "stashit"),
		Dir:        filepath.Join(base, "work"),
		ConfigPath: filepath.Join(base, "config", "stashit.toml"),
		LogFile:    filepath.Join(base, "state", "stashit.log"),
	}

	if err := os.MkdirAll(scene.Dir, 0750); err != nil {
		t.Fatalf("Failed to create work dir: %v", err)
	}
	if err := config.Save(scene.ConfigPath, config.Config{Path: scene.Root}); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// WriteFile writes content to a file below the scene's working directory and
// returns its absolute path
func (s *Scene) WriteFile(t *testing.T, rel string, content string) string {
	t.Helper()

	path := filepath.Join(s.Dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// StashedPath returns where a file stashed at timestamp is stored in the archive
func (s *Scene) StashedPath(timestamp string, original string) string {
	return filepath.Join(s.Root, timestamp, original)
}

// BasicSceneSetup writes a single notes.txt file into the working directory.
func BasicSceneSetup(scene *Scene) error {
	return os.WriteFile(filepath.Join(scene.Dir, "notes.txt"), []byte("notes"), 0600)
}

// Command prepares a run of the stashit binary inside the scene's working
// directory, isolated from the user's config and log files
func (s *Scene) Command(binaryPath string, args ...string) *exec.Cmd {
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = s.Dir
	cmd.Env = append(os.Environ(),
		"STASHIT_CONFIG="+s.ConfigPath,
		"STASHIT_LOG_FILE="+s.LogFile,
		"STASHIT_TEST_NO_INTERACTIVE=1",
		"DEBUG=",
	)
	return cmd
}

package testutils

import (
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// SetupHomeDir sets up the $HOME directory for a test
// and returns the directory name along with a reset function
func SetupHomeDir(newHome string) (string, func()) {
	origHome := os.Getenv("HOME")
	if newHome == "" {
		newHome = "."
	}

	homedir.DisableCache = true
	_ = os.Setenv("HOME", newHome)

	return newHome, func() {
		homedir.DisableCache = false
		_ = os.Setenv("HOME", origHome)
	}
}

// TempHomeDir points $HOME at a temporary directory until the test ends
func TempHomeDir(t testing.TB) string {
	t.Helper()

	home, reset := SetupHomeDir(t.TempDir())
	t.Cleanup(reset)
	return home
}

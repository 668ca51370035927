package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// StorageDir returns the directory where an application with the given
// id should keep its persisted state:
//
//   - Linux:   $XDG_DATA_HOME/app_id or ~/.local/share/app_id
//   - macOS:   ~/Library/Application Support/App-Id
//   - Windows: %APPDATA%\AppId\data
//
// The app id is normalized per platform convention: lowercased with
// whitespace removed on Linux, whitespace replaced with dashes on macOS.
func StorageDir(appID string) (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		id := strings.ReplaceAll(appID, " ", "-")
		return filepath.Join(home, "Library", "Application Support", id), nil

	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, appID, "data"), nil

	default:
		id := strings.ToLower(strings.Join(strings.Fields(appID), ""))
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" && filepath.IsAbs(xdg) {
			return filepath.Join(xdg, id), nil
		}
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", id), nil
	}
}

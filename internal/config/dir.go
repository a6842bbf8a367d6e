// Package config loads the immutable startup configuration for
// tagtrail: the TimeTagger API base URL and auth token.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the tagtrail configuration directory.
//
// Resolution:
//   - $TAGTRAIL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/tagtrail if set (respects XDG on any platform)
//   - %AppData%/tagtrail on Windows
//   - ~/.config/tagtrail on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("TAGTRAIL_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tagtrail")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "tagtrail")
		}
	}

	// macOS and Linux: ~/.config/tagtrail
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tagtrail")
}

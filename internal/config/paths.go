package config

import (
	"path/filepath"
)

const appName = "gridview"

// Config file names, in lookup order within a directory
var (
	projectFileNames = []string{".gridview.yaml", ".gridview.yml", ".gridview.toml"}
	userFileNames    = []string{"config.yaml", "config.yml", "config.toml"}
)

// UserConfigDir returns the per-user gridview config directory
func UserConfigDir() string {
	return UserConfigDirWithPlatform(DefaultPlatform)
}

// UserConfigDirWithPlatform resolves the config directory for a platform:
//
//	windows: %APPDATA%\gridview
//	darwin:  ~/Library/Application Support/gridview
//	other:   $XDG_CONFIG_HOME/gridview, or ~/.config/gridview
//
// An empty string means no directory could be determined.
func UserConfigDirWithPlatform(platform PlatformProvider) string {
	switch platform.GetOS() {
	case "windows":
		appData := platform.GetEnv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default:
		if xdg := platform.GetEnv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// candidatePaths lists config files in priority order: project files first,
// then the user config directory
func candidatePaths(projectDir string, platform PlatformProvider) []string {
	var paths []string
	if projectDir != "" {
		for _, name := range projectFileNames {
			paths = append(paths, filepath.Join(projectDir, name))
		}
	}
	if dir := UserConfigDirWithPlatform(platform); dir != "" {
		for _, name := range userFileNames {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user and system configuration directories
const AppName = "swctl"

// DefaultFile is the value of --config when the user did not override it
const DefaultFile = "config.yaml"

// SearchPaths lists the locations probed for the default configuration file
func SearchPaths() []string {
	paths := []string{
		filepath.Join(".", "config.yaml"),
		filepath.Join(".", "config.json"),
	}

	switch runtime.GOOS {
	case "windows":
		if appDataDir := os.Getenv("APPDATA"); appDataDir != "" {
			paths = append(paths, filepath.Join(appDataDir, AppName, "config.yaml"))
		}
		if programDataDir := os.Getenv("ProgramData"); programDataDir != "" {
			paths = append(paths, filepath.Join(programDataDir, AppName, "config.yaml"))
		}
	default:
		if userConfigDir, err := os.UserConfigDir(); err == nil {
			paths = append(paths, filepath.Join(userConfigDir, AppName, "config.yaml"))
		}
		paths = append(paths, filepath.Join("/etc", AppName, "config.yaml"))
	}
	return paths
}

// Resolve returns the configuration file to load. An explicit path is used
// as given; the default name triggers a search of SearchPaths.
func Resolve(configFile string, verbosityLevel int) (string, error) {
	if configFile != DefaultFile {
		return configFile, nil
	}
	return find(SearchPaths(), verbosityLevel)
}

func find(candidates []string, verbosityLevel int) (string, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if verbosityLevel == 1 || verbosityLevel == 3 {
				fmt.Printf("DEBUG: Configuration file found at %s\n", path)
			}
			return path, nil
		}
	}
	return "", fmt.Errorf("no configuration file found in %v", candidates)
}

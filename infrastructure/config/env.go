package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables overriding the credentials of the configuration file
const (
	EnvHost           = "SWCTL_HOST"
	EnvUsername       = "SWCTL_USERNAME"
	EnvPassword       = "SWCTL_PASSWORD"
	EnvEnablePassword = "SWCTL_ENABLE_PASSWORD"
)

// applyEnv overlays non-empty environment values on the loaded file
func applyEnv(cfg *Config, lookup func(string) (string, bool), debug bool) {
	overrides := []struct {
		name  string
		field *string
	}{
		{EnvHost, &cfg.Target},
		{EnvUsername, &cfg.Username},
		{EnvPassword, &cfg.Password},
		{EnvEnablePassword, &cfg.EnablePassword},
	}
	for _, o := range overrides {
		value, ok := lookup(o.name)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		*o.field = value
		if debug {
			fmt.Printf("DEBUG: %s taken from the environment\n", o.name)
		}
	}
}

func osLookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

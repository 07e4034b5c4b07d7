package entities

import (
	"net"
	"strconv"
	"strings"
)

// SwitchConfig defines the connection settings for the managed switch
type SwitchConfig struct {
	Target         string `yaml:"host"`
	Port           int    `yaml:"port"`
	Transport      string `yaml:"transport"`
	Platform       string `yaml:"platform"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	EnablePassword string `yaml:"enable_password"`
	KnownHosts     string `yaml:"known_hosts"`
	ACLNumber      string `yaml:"acl_number"`
	Sandbox        bool   `yaml:"-"`
	SaveConfig     bool   `yaml:"-"`
	VerbosityLevel int    `yaml:"-"`
}

// IsDebugEnabled returns true if debug logs are enabled
func (sc SwitchConfig) IsDebugEnabled() bool {
	return sc.VerbosityLevel == 1 || sc.VerbosityLevel == 3
}

// IsRawOutputEnabled returns true if raw switch output is enabled
func (sc SwitchConfig) IsRawOutputEnabled() bool {
	return sc.VerbosityLevel == 2 || sc.VerbosityLevel == 3
}

// PlatformID returns the normalized platform name, defaulting to ios
func (sc SwitchConfig) PlatformID() string {
	platform := strings.ToLower(strings.TrimSpace(sc.Platform))
	if platform == "" {
		return "ios"
	}
	return platform
}

// Address returns host:port for the configured transport
func (sc SwitchConfig) Address() string {
	port := sc.Port
	if port == 0 {
		if sc.Transport == "telnet" {
			port = 23
		} else {
			port = 22
		}
	}
	return net.JoinHostPort(sc.Target, strconv.Itoa(port))
}

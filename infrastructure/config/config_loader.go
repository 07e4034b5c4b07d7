package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carlosrabelo/swctl/domain/entities"
	"gopkg.in/yaml.v3"
)

// DefaultACLNumber is the extended access list receiving MAC-based rules
const DefaultACLNumber = entities.DefaultACLNumber

// ErrMissingPassword is returned when neither the file nor the environment supply a password
var ErrMissingPassword = errors.New("password is required in the configuration")

// Config defines the file-level configuration for the managed switch.
// JSON documents are accepted as well, since they parse as YAML.
type Config struct {
	entities.SwitchConfig `yaml:",inline"`
}

func validatePlatform(platform string) error {
	switch platform {
	case "ios", "auto":
		return nil
	default:
		return fmt.Errorf("platform %s is invalid, must be 'ios' or 'auto'", platform)
	}
}

func validateTransport(transport string) error {
	switch transport {
	case "ssh", "telnet":
		return nil
	default:
		return fmt.Errorf("transport %s is invalid, must be 'ssh' or 'telnet'", transport)
	}
}

// validateACLNumber accepts extended ACL numbers (100-199, 2000-2699) or a name
func validateACLNumber(acl string) error {
	if acl == "" || strings.ContainsAny(acl, " \t") {
		return fmt.Errorf("acl_number %q is invalid", acl)
	}
	num, err := strconv.Atoi(acl)
	if err != nil {
		return nil
	}
	if (num >= 100 && num <= 199) || (num >= 2000 && num <= 2699) {
		return nil
	}
	return fmt.Errorf("acl_number %s is not an extended access list (100-199, 2000-2699)", acl)
}

// Load loads and validates configuration from a YAML or JSON file
func Load(configFile string, sandbox, saveConfig bool, verbosityLevel int) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %v", configFile, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %v", configFile, err)
	}

	debug := verbosityLevel == 1 || verbosityLevel == 3
	applyEnv(&cfg, osLookup, debug)

	cfg.Target = strings.TrimSpace(cfg.Target)
	if cfg.Target == "" {
		return nil, fmt.Errorf("host is required in the configuration")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("username is required in the configuration")
	}
	if cfg.Password == "" {
		return nil, ErrMissingPassword
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	if cfg.Transport == "" {
		cfg.Transport = "ssh"
		if debug {
			fmt.Printf("DEBUG: No transport defined, using ssh\n")
		}
	}
	if err := validateTransport(cfg.Transport); err != nil {
		return nil, err
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port %d is invalid, must be between 1 and 65535", cfg.Port)
	}

	cfg.Platform = cfg.PlatformID()
	if err := validatePlatform(cfg.Platform); err != nil {
		return nil, err
	}

	if cfg.EnablePassword == "" && debug {
		fmt.Printf("DEBUG: No enable_password defined, the login password will be used\n")
	}

	cfg.ACLNumber = strings.TrimSpace(cfg.ACLNumber)
	if cfg.ACLNumber == "" {
		cfg.ACLNumber = DefaultACLNumber
	}
	if err := validateACLNumber(cfg.ACLNumber); err != nil {
		return nil, err
	}

	cfg.Sandbox = sandbox
	cfg.SaveConfig = saveConfig
	cfg.VerbosityLevel = verbosityLevel

	if debug {
		fmt.Printf("DEBUG: Final configuration: Host=%s, Address=%s, Transport=%s, Platform=%s, ACL=%s, Sandbox=%v, Save=%v\n",
			cfg.Target, cfg.Address(), cfg.Transport, cfg.Platform, cfg.ACLNumber, cfg.Sandbox, cfg.SaveConfig)
	}

	return &cfg, nil
}

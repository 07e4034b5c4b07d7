package platform

import (
	"fmt"
	"strings"

	"github.com/carlosrabelo/swctl/domain/entities"
	"github.com/carlosrabelo/swctl/domain/ports"
	"github.com/carlosrabelo/swctl/platform/ios"
)

// SwitchDriver defines the behaviour required to support a switching platform.
type SwitchDriver interface {
	Name() string
	Detect(repo ports.SwitchRepository) (bool, error)

	GetArpTable(repo ports.SwitchRepository, cfg entities.SwitchConfig) ([]entities.ArpEntry, error)
	GetMacTable(repo ports.SwitchRepository, cfg entities.SwitchConfig) ([]entities.MacTableEntry, error)
	GetInterfaceBrief(repo ports.SwitchRepository, cfg entities.SwitchConfig) ([]string, error)
	GetInterfaceVlanMap(repo ports.SwitchRepository, cfg entities.SwitchConfig) ([]entities.InterfaceVlanMapping, error)

	PortStateCommands(iface string, action entities.PortAction) []string
	ACLCommands(aclNumber string, mode entities.ACLMode, ip string) []string
	SaveCommands() []string
	CommandRejected(output string) bool
	AuthSequence(username, password, enablePassword string) []entities.AuthPrompt
}

var registry = []SwitchDriver{
	ios.New(),
}

// Get returns a driver by normalized platform name.
func Get(name string) (SwitchDriver, error) {
	normalized := normalizeName(name)
	for _, driver := range registry {
		if driver.Name() == normalized {
			return driver, nil
		}
	}
	return nil, fmt.Errorf("unknown switch platform: %s", name)
}

// Available returns all registered drivers.
func Available() []SwitchDriver {
	out := make([]SwitchDriver, len(registry))
	copy(out, registry)
	return out
}

// Detect tries all registered drivers until one matches.
func Detect(repo ports.SwitchRepository) (SwitchDriver, error) {
	var lastErr error
	for _, driver := range registry {
		matched, err := driver.Detect(repo)
		if err != nil {
			lastErr = err
			continue
		}
		if matched {
			return driver, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("unable to detect switch platform")
}

// Resolve returns the driver for a configured platform, probing the device
// when the platform is "auto".
func Resolve(name string, repo ports.SwitchRepository) (SwitchDriver, error) {
	if normalizeName(name) == "auto" {
		return Detect(repo)
	}
	return Get(name)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

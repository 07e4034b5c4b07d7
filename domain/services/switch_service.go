package services

import (
	"fmt"
	"strings"

	"github.com/carlosrabelo/swctl/domain/entities"
	"github.com/carlosrabelo/swctl/domain/ports"
	"github.com/carlosrabelo/swctl/platform"
)

// SwitchServiceImpl implements the switch operations over a repository
type SwitchServiceImpl struct {
	switchRepo ports.SwitchRepository
	config     entities.SwitchConfig
	driver     platform.SwitchDriver
}

// NewSwitchService creates a new instance of the switch service
func NewSwitchService(switchRepo ports.SwitchRepository, config entities.SwitchConfig, driver platform.SwitchDriver) *SwitchServiceImpl {
	return &SwitchServiceImpl{
		switchRepo: switchRepo,
		config:     config,
		driver:     driver,
	}
}

// Open connects to the switch
func (s *SwitchServiceImpl) Open() error {
	if s.switchRepo.IsConnected() {
		return nil
	}
	if s.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Opening %s session to %s\n", s.config.Transport, s.config.Address())
	}
	return s.switchRepo.Connect()
}

// Close releases the session; calling it more than once is harmless
func (s *SwitchServiceImpl) Close() {
	if s.switchRepo.IsConnected() {
		s.switchRepo.Disconnect()
	}
}

// Baseline fetches the ARP table, the MAC table and the interface listing
func (s *SwitchServiceImpl) Baseline() (entities.Inventory, error) {
	arp, err := s.driver.GetArpTable(s.switchRepo, s.config)
	if err != nil {
		return entities.Inventory{}, err
	}
	macTable, err := s.driver.GetMacTable(s.switchRepo, s.config)
	if err != nil {
		return entities.Inventory{}, err
	}
	portLines, err := s.driver.GetInterfaceBrief(s.switchRepo, s.config)
	if err != nil {
		return entities.Inventory{}, err
	}
	return entities.Inventory{Arp: arp, MacTable: macTable, Ports: portLines}, nil
}

// InterfaceVlanMap fetches the access VLAN of every switchport
func (s *SwitchServiceImpl) InterfaceVlanMap() ([]entities.InterfaceVlanMapping, error) {
	return s.driver.GetInterfaceVlanMap(s.switchRepo, s.config)
}

// SetPortState shuts or unshuts a port and returns the session transcript
func (s *SwitchServiceImpl) SetPortState(port string, action entities.PortAction) (string, error) {
	commands := s.driver.PortStateCommands(port, action)
	return s.apply(commands, fmt.Sprintf("%s of port %s", action, port))
}

// ApplyACL adds mirrored host rules for ip to the configured access list
func (s *SwitchServiceImpl) ApplyACL(ip string, mode entities.ACLMode) (string, error) {
	commands := s.driver.ACLCommands(s.ACLNumber(), mode, ip)
	return s.apply(commands, fmt.Sprintf("%s rule for %s on ACL %s", mode, ip, s.ACLNumber()))
}

// SaveConfiguration persists the running configuration
func (s *SwitchServiceImpl) SaveConfiguration() (string, error) {
	if s.config.Sandbox {
		return "SANDBOX: Simulating save of running configuration", nil
	}
	var output strings.Builder
	for _, cmd := range s.driver.SaveCommands() {
		if s.config.IsDebugEnabled() {
			fmt.Printf("DEBUG: Saving configuration using '%s'\n", cmd)
		}
		result, err := s.switchRepo.ExecuteCommand(cmd)
		if err != nil {
			return output.String(), fmt.Errorf("failed to save configuration with '%s': %w", cmd, err)
		}
		output.WriteString(result)
	}
	return output.String(), nil
}

// ACLNumber returns the access list receiving MAC-based rules
func (s *SwitchServiceImpl) ACLNumber() string {
	if s.config.ACLNumber == "" {
		return entities.DefaultACLNumber
	}
	return s.config.ACLNumber
}

// IsSandbox reports whether configuration changes are only simulated
func (s *SwitchServiceImpl) IsSandbox() bool {
	return s.config.Sandbox
}

func (s *SwitchServiceImpl) apply(commands []string, what string) (string, error) {
	if s.config.Sandbox {
		var simulated strings.Builder
		fmt.Fprintf(&simulated, "SANDBOX: Simulating %s", what)
		for _, cmd := range commands {
			fmt.Fprintf(&simulated, "\n  %s", cmd)
		}
		return simulated.String(), nil
	}
	if s.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Applying %s: %v\n", what, commands)
	}
	transcript, err := s.switchRepo.ExecuteConfig(commands)
	if err == nil && s.driver.CommandRejected(transcript) {
		fmt.Printf("WARNING: %s rejected part of the %s, see the transcript\n", s.config.Target, what)
	}
	return transcript, err
}

package ios

import (
	"fmt"
	"strings"

	"github.com/carlosrabelo/swctl/domain/entities"
	"github.com/carlosrabelo/swctl/domain/ports"
)

const driverName = "ios"

const (
	showArpCmd            = "show arp"
	showMacTableCmd       = "show mac-address-table"
	showInterfaceBriefCmd = "show ip interface brief"
	showSwitchportCmd     = "show interfaces switchport"
)

// Driver implements the SwitchDriver behaviour for Cisco IOS switches.
type Driver struct{}

// New creates a new IOS driver instance.
func New() *Driver {
	return &Driver{}
}

// Name returns the canonical platform identifier.
func (d *Driver) Name() string {
	return driverName
}

// Detect inspects the device to determine whether it is running IOS.
func (d *Driver) Detect(repo ports.SwitchRepository) (bool, error) {
	if !repo.IsConnected() {
		if err := repo.Connect(); err != nil {
			return false, err
		}
	}
	output, err := repo.ExecuteCommand("show version")
	if err != nil {
		return false, err
	}
	if IsCommandError(output) {
		return false, nil
	}
	return strings.Contains(strings.ToLower(output), "cisco ios"), nil
}

// CommandRejected reports whether a command transcript carries an IOS error marker.
func (d *Driver) CommandRejected(output string) bool {
	return IsCommandError(output)
}

// GetArpTable retrieves the ARP table.
func (d *Driver) GetArpTable(repo ports.SwitchRepository, cfg entities.SwitchConfig) ([]entities.ArpEntry, error) {
	output, err := d.run(repo, cfg, showArpCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ARP table: %w", err)
	}
	entries := ParseArp(output)
	if cfg.IsDebugEnabled() {
		fmt.Printf("DEBUG: Found %d ARP entries\n", len(entries))
	}
	return entries, nil
}

// GetMacTable retrieves the MAC address table entries.
func (d *Driver) GetMacTable(repo ports.SwitchRepository, cfg entities.SwitchConfig) ([]entities.MacTableEntry, error) {
	output, err := d.run(repo, cfg, showMacTableCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve MAC table: %w", err)
	}
	entries := ParseMacTable(output)
	if cfg.IsDebugEnabled() {
		fmt.Printf("DEBUG: Found %d devices in MAC table\n", len(entries))
	}
	return entries, nil
}

// GetInterfaceBrief retrieves the physical interface lines of the brief listing.
func (d *Driver) GetInterfaceBrief(repo ports.SwitchRepository, cfg entities.SwitchConfig) ([]string, error) {
	output, err := d.run(repo, cfg, showInterfaceBriefCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve interface list: %w", err)
	}
	lines := ParseInterfaceBrief(output)
	if cfg.IsDebugEnabled() {
		fmt.Printf("DEBUG: Found %d physical interfaces\n", len(lines))
	}
	return lines, nil
}

// GetInterfaceVlanMap retrieves the access VLAN of every switchport.
func (d *Driver) GetInterfaceVlanMap(repo ports.SwitchRepository, cfg entities.SwitchConfig) ([]entities.InterfaceVlanMapping, error) {
	output, err := d.run(repo, cfg, showSwitchportCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve switchport details: %w", err)
	}
	return ParseSwitchportVlanMap(output), nil
}

// PortStateCommands returns the lines that shut or unshut an interface.
func (d *Driver) PortStateCommands(iface string, action entities.PortAction) []string {
	state := "no shutdown"
	if action == entities.ActionDisable {
		state = "shutdown"
	}
	return []string{
		fmt.Sprintf("interface %s", iface),
		state,
	}
}

// ACLCommands returns the lines adding mirrored host rules to an extended ACL.
func (d *Driver) ACLCommands(aclNumber string, mode entities.ACLMode, ip string) []string {
	return []string{
		fmt.Sprintf("ip access-list extended %s", aclNumber),
		fmt.Sprintf("%s ip host %s any", mode, ip),
		fmt.Sprintf("%s ip any host %s", mode, ip),
	}
}

// AuthSequence returns the login prompts of an IOS line, ending in
// privileged mode with paging disabled.
func (d *Driver) AuthSequence(username, password, enablePassword string) []entities.AuthPrompt {
	return []entities.AuthPrompt{
		{WaitFor: "Username:", SendCmd: username + "\n"},
		{WaitFor: "Password:", SendCmd: password + "\n"},
		{WaitFor: ">", SendCmd: "enable\n"},
		{WaitFor: "Password:", SendCmd: enablePassword + "\n"},
		{WaitFor: "#", SendCmd: "terminal length 0\n"},
		{WaitFor: "#", SendCmd: ""},
	}
}

// SaveCommands returns commands that persist the running configuration.
func (d *Driver) SaveCommands() []string {
	return []string{"write memory"}
}

func (d *Driver) run(repo ports.SwitchRepository, cfg entities.SwitchConfig, cmd string) (string, error) {
	output, err := repo.ExecuteCommand(cmd)
	if err != nil {
		return "", err
	}
	if cfg.IsRawOutputEnabled() {
		fmt.Printf("Raw output of '%s':\n%s\n", cmd, output)
	}
	return output, nil
}

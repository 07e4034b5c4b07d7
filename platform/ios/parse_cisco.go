package ios

import (
	"regexp"
	"strings"

	"github.com/carlosrabelo/swctl/domain/entities"
)

var (
	arpLineRegex     = regexp.MustCompile(`(?i)Internet\s+(\d+\.\d+\.\d+\.\d+)\s+\d+\s+([0-9a-f]{4}\.[0-9a-f]{4}\.[0-9a-f]{4})\s+ARPA\s+(\S+)`)
	macTableRegex    = regexp.MustCompile(`(?i)([0-9a-f]{4}\.[0-9a-f]{4}\.[0-9a-f]{4})\s+\S+\s+(\d+)\s+(\S+)`)
	accessVlanRegex  = regexp.MustCompile(`Access Mode VLAN:\s+(\d+)`)
	physicalPrefixes = []string{"GigabitEthernet", "FastEthernet"}
	commandErrHints  = []string{
		"invalid input",
		"unknown command",
		"incomplete command",
		"ambiguous command",
		"unrecognized command",
	}
)

// ParseArp extracts ARP entries from "show arp" output.
// Lines that do not carry every field are skipped.
func ParseArp(output string) []entities.ArpEntry {
	entries := make([]entities.ArpEntry, 0)
	for _, line := range splitLines(output) {
		match := arpLineRegex.FindStringSubmatch(line)
		if len(match) < 4 {
			continue
		}
		entries = append(entries, entities.ArpEntry{
			IP:        match[1],
			MAC:       strings.ToLower(match[2]),
			Interface: match[3],
		})
	}
	return entries
}

// ParseMacTable extracts learned addresses from "show mac-address-table" output.
func ParseMacTable(output string) []entities.MacTableEntry {
	entries := make([]entities.MacTableEntry, 0)
	for _, line := range splitLines(output) {
		match := macTableRegex.FindStringSubmatch(line)
		if len(match) < 4 {
			continue
		}
		entries = append(entries, entities.MacTableEntry{
			Vlan: match[2],
			MAC:  strings.ToLower(match[1]),
			Port: match[3],
		})
	}
	return entries
}

// ParseInterfaceBrief keeps the raw lines describing physical Ethernet ports.
func ParseInterfaceBrief(output string) []string {
	lines := make([]string, 0)
	for _, line := range splitLines(output) {
		for _, prefix := range physicalPrefixes {
			if strings.HasPrefix(line, prefix) {
				lines = append(lines, line)
				break
			}
		}
	}
	return lines
}

// ParseSwitchportVlanMap scans "show interfaces switchport" output. A "Name:"
// line moves the cursor to that interface; an "Access Mode VLAN" line emits a
// mapping for the interface under the cursor. The cursor is not cleared
// between interfaces, so trunk blocks without an access line add nothing.
func ParseSwitchportVlanMap(output string) []entities.InterfaceVlanMapping {
	mappings := make([]entities.InterfaceVlanMapping, 0)
	current := ""
	for _, line := range splitLines(output) {
		if strings.HasPrefix(line, "Name:") {
			if fields := strings.Fields(line); len(fields) > 1 {
				current = fields[len(fields)-1]
			}
		}
		if !strings.Contains(line, "Access Mode VLAN") {
			continue
		}
		match := accessVlanRegex.FindStringSubmatch(line)
		if len(match) < 2 || current == "" {
			continue
		}
		mappings = append(mappings, entities.InterfaceVlanMapping{
			Interface:  current,
			AccessVlan: match[1],
		})
	}
	return mappings
}

// IsCommandError reports whether the device rejected a command.
func IsCommandError(output string) bool {
	lower := strings.ToLower(output)
	for _, keyword := range commandErrHints {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func splitLines(output string) []string {
	if output == "" {
		return nil
	}
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

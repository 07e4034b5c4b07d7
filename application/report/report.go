// Package report renders switch records for the operator.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carlosrabelo/swctl/domain/entities"
)

// heading prints text bold and colored on a terminal, plain otherwise
func heading(w io.Writer, text string) {
	style := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))
	fmt.Fprintln(w, style.Render(text))
}

// PrintArpTable writes the ARP table
func PrintArpTable(w io.Writer, entries []entities.ArpEntry) {
	heading(w, "ARP table:")
	for _, entry := range entries {
		fmt.Fprintf(w, "IP: %s, MAC: %s, IF: %s\n", entry.IP, entry.MAC, entry.Interface)
	}
}

// PrintPorts writes the Ethernet lines of the interface listing untouched
func PrintPorts(w io.Writer, lines []string) {
	heading(w, "Interfaces:")
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// PrintPortDevices writes the devices learned on one port
func PrintPortDevices(w io.Writer, port string, devices []entities.VlanDevice) {
	heading(w, fmt.Sprintf("Devices connected to port %s:", port))
	if len(devices) == 0 {
		fmt.Fprintln(w, "No connected devices found.")
		return
	}
	for _, device := range devices {
		fmt.Fprintf(w, "MAC: %s  IP: %s\n", device.MAC, device.IP)
	}
}

// PrintPortState writes the port change announcement and the device transcript
func PrintPortState(w io.Writer, port string, action entities.PortAction, transcript string) {
	fmt.Fprintf(w, "Setting %s to %s...\n", port, action)
	printTranscript(w, transcript)
}

// PrintACL writes the ACL change announcement and the device transcript
func PrintACL(w io.Writer, mode entities.ACLMode, aclNumber, transcript string) {
	fmt.Fprintf(w, "Adding %s rule to ACL %s...\n", mode, aclNumber)
	printTranscript(w, transcript)
}

// PrintMACNotFound reports an ACL request whose MAC has no ARP entry
func PrintMACNotFound(w io.Writer, mac string) {
	fmt.Fprintf(w, "No IP found for MAC address %s.\n", mac)
}

// PrintInterfaceVlanMap writes the access VLAN of every switchport
func PrintInterfaceVlanMap(w io.Writer, mappings []entities.InterfaceVlanMapping) {
	heading(w, "Interface to VLAN mapping:")
	for _, mapping := range mappings {
		fmt.Fprintf(w, "%s → VLAN %s\n", mapping.Interface, mapping.AccessVlan)
	}
}

// PrintVlanDevices writes the devices of each VLAN, one block per VLAN
func PrintVlanDevices(w io.Writer, groups []entities.VlanGroup) {
	heading(w, "Connected devices per VLAN:")
	for _, group := range groups {
		fmt.Fprintln(w)
		heading(w, fmt.Sprintf("[VLAN %s]", group.Vlan))
		for _, device := range group.Devices {
			fmt.Fprintf(w, "IP: %s, MAC: %s, PORT: %s\n", device.IP, device.MAC, device.Port)
		}
	}
}

// PrintSave writes the output of the configuration save
func PrintSave(w io.Writer, output string) {
	heading(w, "Saving configuration...")
	printTranscript(w, output)
}

func printTranscript(w io.Writer, transcript string) {
	transcript = strings.TrimRight(transcript, "\r\n")
	if transcript == "" {
		return
	}
	fmt.Fprintln(w, transcript)
}

package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carlosrabelo/swctl/domain/entities"
)

func TestPrintArpTable(t *testing.T) {
	var buf bytes.Buffer
	PrintArpTable(&buf, []entities.ArpEntry{
		{IP: "10.0.0.5", MAC: "5023.6dca.f669", Interface: "Vlan10"},
	})
	assert.Equal(t, "ARP table:\nIP: 10.0.0.5, MAC: 5023.6dca.f669, IF: Vlan10\n", buf.String())
}

func TestPrintPorts(t *testing.T) {
	var buf bytes.Buffer
	PrintPorts(&buf, []string{
		"GigabitEthernet0/1  unassigned  YES unset  up  up",
		"FastEthernet0/2     unassigned  YES unset  down  down",
	})
	assert.Equal(t, "Interfaces:\n"+
		"GigabitEthernet0/1  unassigned  YES unset  up  up\n"+
		"FastEthernet0/2     unassigned  YES unset  down  down\n", buf.String())
}

func TestPrintPortDevices(t *testing.T) {
	tests := []struct {
		name     string
		devices  []entities.VlanDevice
		expected string
	}{
		{
			name:     "no devices",
			devices:  []entities.VlanDevice{},
			expected: "Devices connected to port Gi0/1:\nNo connected devices found.\n",
		},
		{
			name: "known and unknown ip",
			devices: []entities.VlanDevice{
				{IP: "10.0.0.5", MAC: "aabb.ccdd.eeff", Port: "Gi0/1"},
				{IP: "unknown", MAC: "1111.2222.3333", Port: "Gi0/1"},
			},
			expected: "Devices connected to port Gi0/1:\n" +
				"MAC: aabb.ccdd.eeff  IP: 10.0.0.5\n" +
				"MAC: 1111.2222.3333  IP: unknown\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintPortDevices(&buf, "Gi0/1", tt.devices)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrintPortState(t *testing.T) {
	var buf bytes.Buffer
	PrintPortState(&buf, "Gi0/5", entities.ActionDisable, "configure terminal\ninterface Gi0/5\nshutdown\nend\n")
	assert.Equal(t, "Setting Gi0/5 to disable...\nconfigure terminal\ninterface Gi0/5\nshutdown\nend\n", buf.String())
}

func TestPrintACL(t *testing.T) {
	var buf bytes.Buffer
	PrintACL(&buf, entities.ModeDeny, "102", "")
	assert.Equal(t, "Adding deny rule to ACL 102...\n", buf.String())
}

func TestPrintMACNotFound(t *testing.T) {
	var buf bytes.Buffer
	PrintMACNotFound(&buf, "aabb.ccdd.eeff")
	assert.Equal(t, "No IP found for MAC address aabb.ccdd.eeff.\n", buf.String())
}

func TestPrintInterfaceVlanMap(t *testing.T) {
	var buf bytes.Buffer
	PrintInterfaceVlanMap(&buf, []entities.InterfaceVlanMapping{
		{Interface: "Gi0/1", AccessVlan: "10"},
		{Interface: "Gi0/2", AccessVlan: "20"},
	})
	assert.Equal(t, "Interface to VLAN mapping:\nGi0/1 → VLAN 10\nGi0/2 → VLAN 20\n", buf.String())
}

func TestPrintVlanDevices(t *testing.T) {
	var buf bytes.Buffer
	PrintVlanDevices(&buf, []entities.VlanGroup{
		{Vlan: "10", Devices: []entities.VlanDevice{{IP: "10.0.0.5", MAC: "aabb.ccdd.eeff", Port: "Gi0/1"}}},
		{Vlan: "20", Devices: []entities.VlanDevice{{IP: "unknown", MAC: "0011.2233.4455", Port: "Gi0/2"}}},
	})
	assert.Equal(t, "Connected devices per VLAN:\n"+
		"\n[VLAN 10]\nIP: 10.0.0.5, MAC: aabb.ccdd.eeff, PORT: Gi0/1\n"+
		"\n[VLAN 20]\nIP: unknown, MAC: 0011.2233.4455, PORT: Gi0/2\n", buf.String())
}

func TestPrintSave(t *testing.T) {
	var buf bytes.Buffer
	PrintSave(&buf, "Building configuration...\r\n[OK]\r\n")
	assert.Equal(t, "Saving configuration...\nBuilding configuration...\r\n[OK]\n", buf.String())
}

package entities

// UnknownIP is shown when a MAC address has no ARP entry
const UnknownIP = "unknown"

// DefaultACLNumber is the extended access list receiving MAC-based rules
const DefaultACLNumber = "102"

// ArpEntry is one row of the device ARP table
type ArpEntry struct {
	IP        string
	MAC       string
	Interface string
}

// MacTableEntry is one learned address from the switch MAC table
type MacTableEntry struct {
	Vlan string
	MAC  string
	Port string
}

// InterfaceVlanMapping pairs an interface with its access VLAN
type InterfaceVlanMapping struct {
	Interface  string
	AccessVlan string
}

// VlanDevice is a MAC table entry annotated with its ARP IP
type VlanDevice struct {
	IP   string
	MAC  string
	Port string
}

// VlanGroup holds the devices learned on a single VLAN
type VlanGroup struct {
	Vlan    string
	Devices []VlanDevice
}

// Inventory holds the baseline outputs fetched at the start of every run
type Inventory struct {
	Arp      []ArpEntry
	MacTable []MacTableEntry
	Ports    []string
}

package services

import (
	"github.com/carlosrabelo/swctl/domain/entities"
)

// LookupIP finds the IP bound to a MAC address in the ARP table. The
// argument is normalized before comparing; parsed entries already are.
func LookupIP(arp []entities.ArpEntry, mac string) (string, bool) {
	target := entities.NormalizeMAC(mac)
	for _, entry := range arp {
		if entry.MAC == target {
			return entry.IP, true
		}
	}
	return "", false
}

// ResolveIP is LookupIP with the "unknown" placeholder for misses
func ResolveIP(arp []entities.ArpEntry, mac string) string {
	if ip, ok := LookupIP(arp, mac); ok {
		return ip
	}
	return entities.UnknownIP
}

// DevicesOnPort returns the MAC table entries learned on exactly this port
func DevicesOnPort(macTable []entities.MacTableEntry, arp []entities.ArpEntry, port string) []entities.VlanDevice {
	devices := make([]entities.VlanDevice, 0)
	for _, entry := range macTable {
		if entry.Port != port {
			continue
		}
		devices = append(devices, entities.VlanDevice{
			IP:   ResolveIP(arp, entry.MAC),
			MAC:  entry.MAC,
			Port: entry.Port,
		})
	}
	return devices
}

// GroupByVlan groups MAC table entries by VLAN, keeping the order in which
// each VLAN first appears.
func GroupByVlan(macTable []entities.MacTableEntry, arp []entities.ArpEntry) []entities.VlanGroup {
	groups := make([]entities.VlanGroup, 0)
	index := make(map[string]int)
	for _, entry := range macTable {
		pos, ok := index[entry.Vlan]
		if !ok {
			pos = len(groups)
			index[entry.Vlan] = pos
			groups = append(groups, entities.VlanGroup{Vlan: entry.Vlan})
		}
		groups[pos].Devices = append(groups[pos].Devices, entities.VlanDevice{
			IP:   ResolveIP(arp, entry.MAC),
			MAC:  entry.MAC,
			Port: entry.Port,
		})
	}
	return groups
}

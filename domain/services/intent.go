package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carlosrabelo/swctl/domain/entities"
)

var (
	// ErrNoIntent means no recognised flag combination was supplied
	ErrNoIntent = errors.New("no valid arguments were given, see --help")
	// ErrMACNotFound means the requested MAC has no ARP entry
	ErrMACNotFound = errors.New("no IP found for MAC address")
	// ErrInvalidAction rejects a --action other than enable or disable
	ErrInvalidAction = errors.New("action must be 'enable' or 'disable'")
	// ErrInvalidMode rejects a --mode other than permit or deny
	ErrInvalidMode = errors.New("mode must be 'permit' or 'deny'")
)

// Options carries the raw command-line selections
type Options struct {
	PrintMacList     bool
	ListPorts        bool
	ShowPortDevices  string
	PortState        string
	Action           string
	Mode             string
	MAC              string
	InterfaceVlanMap bool
	ListVlanDevices  bool
}

// SelectIntent picks the single intent for an invocation. When several
// selections are present the first one in this order wins: print-mac-list,
// list-ports, show-port-devices, port-state with action, mode with mac,
// interface-vlan-map, list-vlan-devices.
func SelectIntent(opts Options) (entities.Intent, error) {
	action := strings.ToLower(strings.TrimSpace(opts.Action))
	if action != "" && action != string(entities.ActionEnable) && action != string(entities.ActionDisable) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidAction, opts.Action)
	}
	mode := strings.ToLower(strings.TrimSpace(opts.Mode))
	if mode != "" && mode != string(entities.ModePermit) && mode != string(entities.ModeDeny) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMode, opts.Mode)
	}

	switch {
	case opts.PrintMacList:
		return entities.ListArpIntent{}, nil
	case opts.ListPorts:
		return entities.ListPortsIntent{}, nil
	case opts.ShowPortDevices != "":
		return entities.ShowPortDevicesIntent{Port: opts.ShowPortDevices}, nil
	case opts.PortState != "" && action != "":
		return entities.PortStateIntent{Port: opts.PortState, Action: entities.PortAction(action)}, nil
	case mode != "" && opts.MAC != "":
		return entities.ACLIntent{Mode: entities.ACLMode(mode), MAC: opts.MAC}, nil
	case opts.InterfaceVlanMap:
		return entities.InterfaceVlanMapIntent{}, nil
	case opts.ListVlanDevices:
		return entities.ListVlanDevicesIntent{}, nil
	}
	return nil, ErrNoIntent
}

// IsConfigIntent reports whether the intent changes device configuration
func IsConfigIntent(intent entities.Intent) bool {
	switch intent.(type) {
	case entities.PortStateIntent, entities.ACLIntent:
		return true
	}
	return false
}

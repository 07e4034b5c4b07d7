package entities

// Intent is the single operation selected for one invocation.
// The set of implementations is closed; see the isIntent marker.
type Intent interface {
	isIntent()
}

// ListArpIntent prints every ARP entry
type ListArpIntent struct{}

// ListPortsIntent prints the physical interfaces from the brief listing
type ListPortsIntent struct{}

// ShowPortDevicesIntent lists the devices learned on one port
type ShowPortDevicesIntent struct {
	Port string
}

// PortStateIntent enables or disables a port
type PortStateIntent struct {
	Port   string
	Action PortAction
}

// ACLIntent adds a permit or deny rule for the IP behind a MAC address
type ACLIntent struct {
	Mode ACLMode
	MAC  string
}

// InterfaceVlanMapIntent prints the access VLAN of each interface
type InterfaceVlanMapIntent struct{}

// ListVlanDevicesIntent prints devices grouped by VLAN
type ListVlanDevicesIntent struct{}

func (ListArpIntent) isIntent() {}
func (ListPortsIntent) isIntent() {}
func (ShowPortDevicesIntent) isIntent() {}
func (PortStateIntent) isIntent() {}
func (ACLIntent) isIntent() {}
func (InterfaceVlanMapIntent) isIntent() {}
func (ListVlanDevicesIntent) isIntent() {}

// PortAction is the administrative state requested for a port
type PortAction string

const (
	ActionEnable  PortAction = "enable"
	ActionDisable PortAction = "disable"
)

// ACLMode is the verb of an access-list rule
type ACLMode string

const (
	ModePermit ACLMode = "permit"
	ModeDeny   ACLMode = "deny"
)

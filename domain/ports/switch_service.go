package ports

import "github.com/carlosrabelo/swctl/domain/entities"

// SwitchService defines the port for the operations offered by the switch
type SwitchService interface {
	Open() error
	Close()
	Baseline() (entities.Inventory, error)
	InterfaceVlanMap() ([]entities.InterfaceVlanMapping, error)
	SetPortState(port string, action entities.PortAction) (string, error)
	ApplyACL(ip string, mode entities.ACLMode) (string, error)
	SaveConfiguration() (string, error)
	ACLNumber() string
	IsSandbox() bool
}

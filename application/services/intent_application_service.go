package services

import (
	"fmt"
	"io"

	"github.com/carlosrabelo/swctl/application/report"
	"github.com/carlosrabelo/swctl/domain/entities"
	"github.com/carlosrabelo/swctl/domain/ports"
	"github.com/carlosrabelo/swctl/domain/services"
	"github.com/carlosrabelo/swctl/infrastructure/transport"
	"github.com/carlosrabelo/swctl/platform"
)

// IntentApplicationService runs one intent against one switch session
type IntentApplicationService struct {
	switchService ports.SwitchService
	saveConfig    bool
	out           io.Writer
}

// NewIntentApplicationService wires the transport client, the platform
// driver and the switch service together. With platform "auto" the device
// is probed, which opens the session early.
func NewIntentApplicationService(switchConfig entities.SwitchConfig, transportClient transport.Client, out io.Writer) (*IntentApplicationService, error) {
	switchAdapter := transport.NewSwitchAdapter(transportClient)

	driver, err := platform.Resolve(switchConfig.PlatformID(), switchAdapter)
	if err != nil {
		if switchAdapter.IsConnected() {
			switchAdapter.Disconnect()
		}
		return nil, fmt.Errorf("failed to select platform driver: %w", err)
	}
	if switchConfig.IsDebugEnabled() {
		fmt.Printf("DEBUG: Using platform driver %s\n", driver.Name())
	}

	if authClient, ok := transportClient.(transport.AuthConfigurable); ok {
		enablePassword := switchConfig.EnablePassword
		if enablePassword == "" {
			enablePassword = switchConfig.Password
		}
		authClient.SetAuthSequence(driver.AuthSequence(switchConfig.Username, switchConfig.Password, enablePassword))
	}

	return NewIntentApplicationServiceWith(services.NewSwitchService(switchAdapter, switchConfig, driver), switchConfig.SaveConfig, out), nil
}

// NewIntentApplicationServiceWith builds the service around an existing switch service
func NewIntentApplicationServiceWith(switchService ports.SwitchService, saveConfig bool, out io.Writer) *IntentApplicationService {
	return &IntentApplicationService{
		switchService: switchService,
		saveConfig:    saveConfig,
		out:           out,
	}
}

// Run opens the session, fetches the baseline tables and executes the
// intent. The session is closed on every return path.
func (a *IntentApplicationService) Run(intent entities.Intent) error {
	if err := a.switchService.Open(); err != nil {
		return err
	}
	defer a.switchService.Close()

	inventory, err := a.switchService.Baseline()
	if err != nil {
		return err
	}

	switch in := intent.(type) {
	case entities.ListArpIntent:
		report.PrintArpTable(a.out, inventory.Arp)
		return nil

	case entities.ListPortsIntent:
		report.PrintPorts(a.out, inventory.Ports)
		return nil

	case entities.ShowPortDevicesIntent:
		devices := services.DevicesOnPort(inventory.MacTable, inventory.Arp, in.Port)
		report.PrintPortDevices(a.out, in.Port, devices)
		return nil

	case entities.PortStateIntent:
		transcript, err := a.switchService.SetPortState(in.Port, in.Action)
		report.PrintPortState(a.out, in.Port, in.Action, transcript)
		if err != nil {
			return err
		}
		return a.save()

	case entities.ACLIntent:
		ip, found := services.LookupIP(inventory.Arp, in.MAC)
		if !found {
			report.PrintMACNotFound(a.out, in.MAC)
			return fmt.Errorf("%w: %s", services.ErrMACNotFound, in.MAC)
		}
		transcript, err := a.switchService.ApplyACL(ip, in.Mode)
		report.PrintACL(a.out, in.Mode, a.switchService.ACLNumber(), transcript)
		if err != nil {
			return err
		}
		return a.save()

	case entities.InterfaceVlanMapIntent:
		mappings, err := a.switchService.InterfaceVlanMap()
		if err != nil {
			return err
		}
		report.PrintInterfaceVlanMap(a.out, mappings)
		return nil

	case entities.ListVlanDevicesIntent:
		report.PrintVlanDevices(a.out, services.GroupByVlan(inventory.MacTable, inventory.Arp))
		return nil

	default:
		return fmt.Errorf("unhandled intent %T", intent)
	}
}

func (a *IntentApplicationService) save() error {
	if !a.saveConfig {
		return nil
	}
	output, err := a.switchService.SaveConfiguration()
	report.PrintSave(a.out, output)
	return err
}

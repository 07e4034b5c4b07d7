package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/carlosrabelo/swctl/application/services"
	"github.com/carlosrabelo/swctl/domain/entities"
	domainservices "github.com/carlosrabelo/swctl/domain/services"
	"github.com/carlosrabelo/swctl/infrastructure/config"
	"github.com/carlosrabelo/swctl/infrastructure/transport"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// clientFactory builds the transport for a loaded configuration
type clientFactory func(cfg entities.SwitchConfig) transport.Client

func printUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage of %s:\n", name)
	fmt.Fprintf(w, "  --print-mac-list                     Print the ARP table\n")
	fmt.Fprintf(w, "  --list-ports                         List the Ethernet interfaces\n")
	fmt.Fprintf(w, "  --show-port-devices string           Show the MAC/IP of devices learned on a port\n")
	fmt.Fprintf(w, "  --port-state string --action string Enable or disable a port (enable|disable)\n")
	fmt.Fprintf(w, "  --mode string --mac string           Add a permit or deny ACL rule for the IP behind a MAC\n")
	fmt.Fprintf(w, "  --interface-vlan-map                 Show the access VLAN of every interface\n")
	fmt.Fprintf(w, "  --list-vlan-devices                  List connected devices grouped by VLAN\n")
	fmt.Fprintf(w, "  --config string                      YAML or JSON configuration file (default \"config.yaml\")\n")
	fmt.Fprintf(w, "  --verbose int                        Verbosity level: 0=none, 1=debug logs, 2=raw switch output, 3=debug+raw output\n")
	fmt.Fprintf(w, "  --dry-run                            Print configuration changes instead of applying them\n")
	fmt.Fprintf(w, "  --save                               Write the running configuration after a change\n")
	fmt.Fprintf(w, "  --version                            Print the version and exit\n")
}

// promptPassword reads the login password from the terminal without echo
func promptPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func main() {
	// A .env file next to the binary may carry SWCTL_* credentials
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, transport.New))
}

func run(args []string, stdout, stderr io.Writer, newClient clientFactory) int {
	name := "swctl"
	logger := log.New(stderr, "", 0)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, name) }

	var opts domainservices.Options
	fs.BoolVar(&opts.PrintMacList, "print-mac-list", false, "Print the ARP table")
	fs.BoolVar(&opts.ListPorts, "list-ports", false, "List the Ethernet interfaces")
	fs.StringVar(&opts.ShowPortDevices, "show-port-devices", "", "Show the devices learned on a port")
	fs.StringVar(&opts.PortState, "port-state", "", "Port to enable or disable")
	fs.StringVar(&opts.Action, "action", "", "Port action: enable or disable")
	fs.StringVar(&opts.Mode, "mode", "", "ACL mode: permit or deny")
	fs.StringVar(&opts.MAC, "mac", "", "MAC address for the ACL rule")
	fs.BoolVar(&opts.InterfaceVlanMap, "interface-vlan-map", false, "Show the access VLAN of every interface")
	fs.BoolVar(&opts.ListVlanDevices, "list-vlan-devices", false, "List connected devices grouped by VLAN")
	configFile := fs.String("config", config.DefaultFile, "YAML or JSON configuration file")
	verbosity := fs.Int("verbose", 0, "Verbosity level: 0=none, 1=debug logs, 2=raw switch output, 3=debug+raw output")
	dryRun := fs.Bool("dry-run", false, "Print configuration changes instead of applying them")
	save := fs.Bool("save", false, "Write the running configuration after a change")
	showVersion := fs.Bool("version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *showVersion {
		fmt.Fprintf(stdout, "swctl %s (built %s)\n", version, buildTime)
		return 0
	}

	if *verbosity < 0 || *verbosity > 3 {
		logger.Printf("Error: --verbose must be 0, 1, 2, or 3")
		fs.Usage()
		return 1
	}

	intent, err := domainservices.SelectIntent(opts)
	if err != nil {
		logger.Printf("Error: %v", err)
		fs.Usage()
		return 1
	}

	configPath, err := config.Resolve(*configFile, *verbosity)
	if err != nil {
		logger.Printf("Error: %v", err)
		return 1
	}

	cfg, err := config.Load(configPath, *dryRun, *save, *verbosity)
	if errors.Is(err, config.ErrMissingPassword) && term.IsTerminal(int(os.Stdin.Fd())) {
		password, promptErr := promptPassword(stderr)
		if promptErr != nil {
			logger.Printf("Error: %v", promptErr)
			return 1
		}
		os.Setenv(config.EnvPassword, password)
		cfg, err = config.Load(configPath, *dryRun, *save, *verbosity)
	}
	if err != nil {
		logger.Printf("Error: %v", err)
		return 1
	}

	if cfg.IsDebugEnabled() {
		fmt.Printf("DEBUG: swctl %s (built %s), intent %T\n", version, buildTime, intent)
	}

	appService, err := services.NewIntentApplicationService(cfg.SwitchConfig, newClient(cfg.SwitchConfig), stdout)
	if err != nil {
		logger.Printf("Error: %v", err)
		return 1
	}

	if err := appService.Run(intent); err != nil {
		if errors.Is(err, domainservices.ErrMACNotFound) {
			return 1
		}
		logger.Printf("Error on %s: %v", cfg.Target, err)
		return 1
	}
	return 0
}

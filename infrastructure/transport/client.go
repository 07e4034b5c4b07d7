package transport

import (
	"strings"
	"time"

	"github.com/carlosrabelo/swctl/domain/entities"
)

const (
	DefaultTimeout    = 60 * time.Second
	BufferSize        = 4096
	PromptUsername    = "Username:"
	PromptPassword    = "Password:"
	PromptEnable      = ">"
	PromptPrivileged  = "#"
	TerminalLengthCmd = "terminal length 0\n"
	ConfigModeCmd     = "configure terminal"
	ConfigEndCmd      = "end"
)

// New builds the transport client selected by the configuration.
// The caller owns the client and must Disconnect it.
func New(cfg entities.SwitchConfig) Client {
	if cfg.Transport == "telnet" {
		return NewTelnetClient(cfg)
	}
	return NewSSHClient(cfg)
}

// trimEcho drops the echoed command line and the trailing prompt line
func trimEcho(output string) string {
	lines := strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
	if len(lines) > 1 {
		return strings.Join(lines[1:len(lines)-1], "\n")
	}
	return ""
}

func enablePassword(cfg entities.SwitchConfig) string {
	if cfg.EnablePassword != "" {
		return cfg.EnablePassword
	}
	return cfg.Password
}

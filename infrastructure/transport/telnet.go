package transport

import (
	"fmt"
	"strings"
	"time"

	"github.com/ziutek/telnet"

	"github.com/carlosrabelo/swctl/domain/entities"
)

// TelnetClient manages a Telnet connection to a switch
type TelnetClient struct {
	conn         *telnet.Conn
	config       entities.SwitchConfig
	authSequence []entities.AuthPrompt
}

// NewTelnetClient creates a new Telnet client with the given configuration
func NewTelnetClient(cfg entities.SwitchConfig) *TelnetClient {
	return &TelnetClient{config: cfg}
}

// SetAuthSequence configures the authentication sequence for this client
func (tc *TelnetClient) SetAuthSequence(prompts []entities.AuthPrompt) {
	tc.authSequence = prompts
}

// defaultAuthSequence is the Cisco IOS login followed by enable elevation
func (tc *TelnetClient) defaultAuthSequence() []entities.AuthPrompt {
	return []entities.AuthPrompt{
		{WaitFor: PromptUsername, SendCmd: tc.config.Username + "\n"},
		{WaitFor: PromptPassword, SendCmd: tc.config.Password + "\n"},
		{WaitFor: PromptEnable, SendCmd: "enable\n"},
		{WaitFor: PromptPassword, SendCmd: enablePassword(tc.config) + "\n"},
		{WaitFor: PromptPrivileged, SendCmd: TerminalLengthCmd},
		{WaitFor: PromptPrivileged, SendCmd: ""},
	}
}

// Connect establishes a Telnet connection to the switch
func (tc *TelnetClient) Connect() error {
	if tc.conn != nil {
		return nil
	}
	conn, err := telnet.DialTimeout("tcp", tc.config.Address(), DefaultTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", tc.config.Target, err)
	}
	conn.SetUnixWriteMode(true)
	tc.conn = conn
	if tc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Connected to %s via Telnet\n", tc.config.Target)
	}

	prompts := tc.authSequence
	if len(prompts) == 0 {
		prompts = tc.defaultAuthSequence()
	}

	for _, p := range prompts {
		output, err := tc.readUntil(p.WaitFor, DefaultTimeout)
		if err != nil {
			tc.Disconnect()
			return fmt.Errorf("failed to wait for %s: %w, output: %s", p.WaitFor, err, output)
		}
		if p.SendCmd != "" {
			if err := tc.send(p.SendCmd); err != nil {
				tc.Disconnect()
				return fmt.Errorf("failed to answer prompt %s: %w", p.WaitFor, err)
			}
			if tc.config.IsDebugEnabled() && p.WaitFor != PromptPassword {
				fmt.Printf("DEBUG: Sent %s for prompt %s\n", strings.TrimSpace(p.SendCmd), p.WaitFor)
			}
		}
	}
	return nil
}

// readUntil reads from the Telnet connection until the specified pattern is found
func (tc *TelnetClient) readUntil(pattern string, timeout time.Duration) (string, error) {
	if err := tc.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return "", err
	}
	data, err := tc.conn.ReadUntil(pattern)
	if tc.config.IsRawOutputEnabled() && len(data) > 0 {
		fmt.Printf("Switch output: Read: %s\n", string(data))
	}
	if err != nil {
		return string(data), fmt.Errorf("read error waiting for %s: %w", pattern, err)
	}
	return string(data), nil
}

func (tc *TelnetClient) send(data string) error {
	if err := tc.conn.SetWriteDeadline(time.Now().Add(DefaultTimeout)); err != nil {
		return err
	}
	_, err := tc.conn.Write([]byte(data))
	return err
}

// Disconnect closes the Telnet connection
func (tc *TelnetClient) Disconnect() {
	if tc.conn != nil {
		tc.conn.Close()
		if tc.config.IsDebugEnabled() {
			fmt.Println("DEBUG: Disconnected")
		}
		tc.conn = nil
	}
}

func (tc *TelnetClient) IsConnected() bool {
	return tc.conn != nil
}

// ExecuteCommand sends a command to the switch and returns its output
func (tc *TelnetClient) ExecuteCommand(cmd string) (string, error) {
	if tc.conn == nil {
		return "", fmt.Errorf("not connected to %s", tc.config.Target)
	}
	if tc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Executing: %s\n", cmd)
	}
	if err := tc.send(cmd + "\n"); err != nil {
		return "", fmt.Errorf("failed to send command %s: %w", cmd, err)
	}
	output, err := tc.readUntil(PromptPrivileged, DefaultTimeout)
	if err != nil {
		return "", fmt.Errorf("error executing %s: %w", cmd, err)
	}
	output = trimEcho(output)
	if tc.config.IsRawOutputEnabled() {
		fmt.Printf("Switch output for '%s':\n%s\n", cmd, output)
	}
	return output, nil
}

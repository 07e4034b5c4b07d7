package transport

import (
	"fmt"
	"strings"

	"github.com/carlosrabelo/swctl/domain/entities"
)

// SwitchAdapter implements the SwitchRepository port using existing infrastructure
type SwitchAdapter struct {
	client Client
}

// NewSwitchAdapter creates a new switch adapter
func NewSwitchAdapter(client Client) *SwitchAdapter {
	return &SwitchAdapter{
		client: client,
	}
}

// Connect connects to the switch
func (s *SwitchAdapter) Connect() error {
	return s.client.Connect()
}

// Disconnect disconnects from the switch
func (s *SwitchAdapter) Disconnect() {
	s.client.Disconnect()
}

// ExecuteCommand executes a command on the switch
func (s *SwitchAdapter) ExecuteCommand(cmd string) (string, error) {
	return s.client.ExecuteCommand(cmd)
}

// ExecuteConfig enters configuration mode, sends each line in order and
// leaves with "end". The transcript interleaves every line with the reply.
func (s *SwitchAdapter) ExecuteConfig(lines []string) (string, error) {
	commands := make([]string, 0, len(lines)+2)
	commands = append(commands, ConfigModeCmd)
	commands = append(commands, lines...)
	commands = append(commands, ConfigEndCmd)

	var transcript strings.Builder
	for _, cmd := range commands {
		output, err := s.client.ExecuteCommand(cmd)
		if err != nil {
			return transcript.String(), fmt.Errorf("failed to apply configuration line %q: %w", cmd, err)
		}
		transcript.WriteString(cmd)
		transcript.WriteByte('\n')
		if output != "" {
			transcript.WriteString(output)
			transcript.WriteByte('\n')
		}
	}
	return strings.TrimRight(transcript.String(), "\n"), nil
}

// IsConnected checks if connected
func (s *SwitchAdapter) IsConnected() bool {
	return s.client.IsConnected()
}

// Client interface that already exists in the transport package
type Client interface {
	Connect() error
	Disconnect()
	ExecuteCommand(cmd string) (string, error)
	IsConnected() bool
}

// AuthConfigurable allows setting authentication prompts after client creation
type AuthConfigurable interface {
	SetAuthSequence(prompts []entities.AuthPrompt)
}

package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosrabelo/swctl/domain/entities"
	"github.com/carlosrabelo/swctl/platform/ios"
)

// MockSwitchRepository implements the SwitchRepository port for testing
type MockSwitchRepository struct {
	connected       bool
	connectErr      error
	disconnectCalls int
	responses       map[string]string
	commandErrs     map[string]error
	executed        []string
	configLines     [][]string
	configErr       error
}

func newMockRepo() *MockSwitchRepository {
	return &MockSwitchRepository{
		responses: map[string]string{
			"show arp":                   "Internet  10.0.0.5  3  aabb.ccdd.eeff  ARPA  Vlan10",
			"show mac-address-table":     "aabb.ccdd.eeff    DYNAMIC     10    Gi0/1",
			"show ip interface brief":    "GigabitEthernet0/1  unassigned  YES unset  up  up",
			"show interfaces switchport": "Name: Gi0/1\nAccess Mode VLAN: 10 (USERS)",
		},
		commandErrs: map[string]error{},
	}
}

func (m *MockSwitchRepository) Connect() error {
	if m.connectErr != nil {
		return m.connectErr
	}
	m.connected = true
	return nil
}

func (m *MockSwitchRepository) Disconnect() {
	m.disconnectCalls++
	m.connected = false
}

func (m *MockSwitchRepository) IsConnected() bool {
	return m.connected
}

func (m *MockSwitchRepository) ExecuteCommand(cmd string) (string, error) {
	m.executed = append(m.executed, cmd)
	if err, ok := m.commandErrs[cmd]; ok {
		return "", err
	}
	return m.responses[cmd], nil
}

func (m *MockSwitchRepository) ExecuteConfig(lines []string) (string, error) {
	m.configLines = append(m.configLines, lines)
	if m.configErr != nil {
		return "", m.configErr
	}
	return "configure terminal\n" + lines[0] + "\nend", nil
}

func newTestService(repo *MockSwitchRepository, cfg entities.SwitchConfig) *SwitchServiceImpl {
	return NewSwitchService(repo, cfg, ios.New())
}

func TestSwitchService_OpenClose(t *testing.T) {
	repo := newMockRepo()
	service := newTestService(repo, entities.SwitchConfig{})

	require.NoError(t, service.Open())
	assert.True(t, repo.IsConnected())

	service.Close()
	service.Close()
	assert.False(t, repo.IsConnected())
	assert.Equal(t, 1, repo.disconnectCalls)
}

func TestSwitchService_OpenError(t *testing.T) {
	repo := newMockRepo()
	repo.connectErr = errors.New("connection refused")
	service := newTestService(repo, entities.SwitchConfig{})

	assert.EqualError(t, service.Open(), "connection refused")
}

func TestSwitchService_Baseline(t *testing.T) {
	repo := newMockRepo()
	service := newTestService(repo, entities.SwitchConfig{})

	inventory, err := service.Baseline()
	require.NoError(t, err)

	assert.Equal(t, []string{"show arp", "show mac-address-table", "show ip interface brief"}, repo.executed)
	assert.Equal(t, []entities.ArpEntry{{IP: "10.0.0.5", MAC: "aabb.ccdd.eeff", Interface: "Vlan10"}}, inventory.Arp)
	assert.Equal(t, []entities.MacTableEntry{{Vlan: "10", MAC: "aabb.ccdd.eeff", Port: "Gi0/1"}}, inventory.MacTable)
	assert.Equal(t, []string{"GigabitEthernet0/1  unassigned  YES unset  up  up"}, inventory.Ports)
}

func TestSwitchService_BaselineStopsOnError(t *testing.T) {
	repo := newMockRepo()
	repo.commandErrs["show mac-address-table"] = errors.New("timeout")
	service := newTestService(repo, entities.SwitchConfig{})

	_, err := service.Baseline()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to retrieve MAC table")
	assert.NotContains(t, repo.executed, "show ip interface brief")
}

func TestSwitchService_InterfaceVlanMap(t *testing.T) {
	repo := newMockRepo()
	service := newTestService(repo, entities.SwitchConfig{})

	mappings, err := service.InterfaceVlanMap()
	require.NoError(t, err)
	assert.Equal(t, []entities.InterfaceVlanMapping{{Interface: "Gi0/1", AccessVlan: "10"}}, mappings)
}

func TestSwitchService_SetPortState(t *testing.T) {
	repo := newMockRepo()
	service := newTestService(repo, entities.SwitchConfig{})

	transcript, err := service.SetPortState("Gi0/5", entities.ActionDisable)
	require.NoError(t, err)
	assert.Contains(t, transcript, "interface Gi0/5")
	assert.Equal(t, [][]string{{"interface Gi0/5", "shutdown"}}, repo.configLines)
}

func TestSwitchService_ApplyACL(t *testing.T) {
	tests := []struct {
		name     string
		aclCfg   string
		expected string
	}{
		{name: "default acl", aclCfg: "", expected: "102"},
		{name: "configured acl", aclCfg: "150", expected: "150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			service := newTestService(repo, entities.SwitchConfig{ACLNumber: tt.aclCfg})

			assert.Equal(t, tt.expected, service.ACLNumber())
			_, err := service.ApplyACL("10.0.0.5", entities.ModeDeny)
			require.NoError(t, err)
			assert.Equal(t, [][]string{{
				"ip access-list extended " + tt.expected,
				"deny ip host 10.0.0.5 any",
				"deny ip any host 10.0.0.5",
			}}, repo.configLines)
		})
	}
}

func TestSwitchService_ConfigError(t *testing.T) {
	repo := newMockRepo()
	repo.configErr = errors.New("session closed")
	service := newTestService(repo, entities.SwitchConfig{})

	_, err := service.SetPortState("Gi0/5", entities.ActionEnable)
	assert.EqualError(t, err, "session closed")
}

func TestSwitchService_Sandbox(t *testing.T) {
	repo := newMockRepo()
	service := newTestService(repo, entities.SwitchConfig{Sandbox: true})

	assert.True(t, service.IsSandbox())

	transcript, err := service.ApplyACL("10.0.0.5", entities.ModePermit)
	require.NoError(t, err)
	assert.Contains(t, transcript, "SANDBOX:")
	assert.Contains(t, transcript, "permit ip host 10.0.0.5 any")

	transcript, err = service.SaveConfiguration()
	require.NoError(t, err)
	assert.Contains(t, transcript, "SANDBOX:")

	assert.Empty(t, repo.configLines)
	assert.Empty(t, repo.executed)
}

func TestSwitchService_SaveConfiguration(t *testing.T) {
	repo := newMockRepo()
	repo.responses["write memory"] = "Building configuration...\n[OK]"
	service := newTestService(repo, entities.SwitchConfig{})

	output, err := service.SaveConfiguration()
	require.NoError(t, err)
	assert.Equal(t, "Building configuration...\n[OK]", output)
	assert.Equal(t, []string{"write memory"}, repo.executed)

	repo.commandErrs["write memory"] = errors.New("timeout")
	_, err = service.SaveConfiguration()
	assert.ErrorContains(t, err, "failed to save configuration")
}

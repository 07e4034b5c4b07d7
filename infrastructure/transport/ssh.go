package transport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/carlosrabelo/swctl/domain/entities"
)

// Algorithms offered to the device; the sha1 and cbc entries are for older IOS images.
var (
	legacyKeyExchanges = []string{
		"curve25519-sha256",
		"ecdh-sha2-nistp256",
		"diffie-hellman-group14-sha256",
		"diffie-hellman-group14-sha1",
		"diffie-hellman-group1-sha1",
	}
	legacyCiphers = []string{
		"aes128-gcm@openssh.com",
		"aes256-gcm@openssh.com",
		"chacha20-poly1305@openssh.com",
		"aes128-ctr",
		"aes192-ctr",
		"aes256-ctr",
		"aes128-cbc",
	}
)

// SSHClient manages an interactive SSH shell on a switch
type SSHClient struct {
	config  entities.SwitchConfig
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	chunks  chan []byte
	done    chan struct{}
	readErr error
}

// NewSSHClient creates a new SSH client with the given configuration
func NewSSHClient(config entities.SwitchConfig) *SSHClient {
	return &SSHClient{config: config}
}

func hostKeyCallback(cfg entities.SwitchConfig) (ssh.HostKeyCallback, error) {
	if cfg.KnownHosts == "" {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	callback, err := knownhosts.New(cfg.KnownHosts)
	if err != nil {
		return nil, fmt.Errorf("failed to load known_hosts %s: %w", cfg.KnownHosts, err)
	}
	return callback, nil
}

func (sc *SSHClient) Connect() error {
	if sc.IsConnected() {
		return nil
	}
	callback, err := hostKeyCallback(sc.config)
	if err != nil {
		return err
	}
	sshConfig := &ssh.ClientConfig{
		User:            sc.config.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(sc.config.Password)},
		HostKeyCallback: callback,
		Timeout:         DefaultTimeout,
		Config: ssh.Config{
			KeyExchanges: legacyKeyExchanges,
			Ciphers:      legacyCiphers,
		},
	}

	client, err := ssh.Dial("tcp", sc.config.Address(), sshConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to %s via SSH: %w", sc.config.Target, err)
	}

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to create SSH session for %s: %w", sc.config.Target, err)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 9600,
		ssh.TTY_OP_OSPEED: 9600,
	}
	if err := session.RequestPty("vt100", 80, 40, modes); err != nil {
		session.Close()
		client.Close()
		return fmt.Errorf("failed to request PTY for %s: %w", sc.config.Target, err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		client.Close()
		return fmt.Errorf("failed to get stdin pipe for %s: %w", sc.config.Target, err)
	}

	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		client.Close()
		return fmt.Errorf("failed to get stdout pipe for %s: %w", sc.config.Target, err)
	}

	if err := session.Shell(); err != nil {
		session.Close()
		client.Close()
		return fmt.Errorf("failed to start shell for %s: %w", sc.config.Target, err)
	}

	sc.client = client
	sc.session = session
	sc.stdin = stdin
	sc.chunks = make(chan []byte, 16)
	sc.done = make(chan struct{})
	sc.readErr = nil
	go sc.pump(stdout, sc.chunks, sc.done)

	if sc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Connected to %s via SSH\n", sc.config.Target)
	}

	initial, err := sc.readUntilAny([]string{PromptPrivileged, PromptEnable}, DefaultTimeout)
	if err != nil {
		sc.Disconnect()
		return err
	}

	if !strings.Contains(initial, PromptPrivileged) {
		if sc.config.IsDebugEnabled() {
			fmt.Printf("DEBUG: Elevating to privileged mode on %s\n", sc.config.Target)
		}
		if err := sc.send("enable\n"); err != nil {
			sc.Disconnect()
			return fmt.Errorf("failed to send enable command to %s: %w", sc.config.Target, err)
		}

		if _, err := sc.readUntil(PromptPassword, DefaultTimeout); err != nil {
			sc.Disconnect()
			return err
		}

		if err := sc.send(enablePassword(sc.config) + "\n"); err != nil {
			sc.Disconnect()
			return fmt.Errorf("failed to send enable password to %s: %w", sc.config.Target, err)
		}

		if _, err := sc.readUntil(PromptPrivileged, DefaultTimeout); err != nil {
			sc.Disconnect()
			return err
		}
	} else if sc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: %s already in privileged mode\n", sc.config.Target)
	}

	if err := sc.send(TerminalLengthCmd); err != nil {
		sc.Disconnect()
		return fmt.Errorf("failed to send terminal length command to %s: %w", sc.config.Target, err)
	}

	if _, err := sc.readUntil(PromptPrivileged, DefaultTimeout); err != nil {
		sc.Disconnect()
		return err
	}

	return nil
}

// pump copies the remote shell output into the chunk channel until EOF
func (sc *SSHClient) pump(stdout io.Reader, chunks chan<- []byte, done <-chan struct{}) {
	buffer := make([]byte, BufferSize)
	for {
		n, err := stdout.Read(buffer)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buffer[:n])
			select {
			case chunks <- chunk:
			case <-done:
				return
			}
		}
		if err != nil {
			sc.readErr = err
			close(chunks)
			return
		}
	}
}

func (sc *SSHClient) Disconnect() {
	if sc.done != nil {
		close(sc.done)
		sc.done = nil
	}
	if sc.session != nil {
		sc.session.Close()
		sc.session = nil
	}
	if sc.client != nil {
		sc.client.Close()
		sc.client = nil
	}
	sc.stdin = nil
	if sc.config.IsDebugEnabled() {
		fmt.Println("DEBUG: Disconnected")
	}
}

func (sc *SSHClient) IsConnected() bool {
	return sc.session != nil && sc.client != nil
}

func (sc *SSHClient) ExecuteCommand(cmd string) (string, error) {
	if !sc.IsConnected() {
		return "", fmt.Errorf("not connected to %s", sc.config.Target)
	}
	if sc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Executing: %s\n", cmd)
	}
	if err := sc.send(cmd + "\n"); err != nil {
		return "", fmt.Errorf("failed to send command %s: %w", cmd, err)
	}

	output, err := sc.readUntil(PromptPrivileged, DefaultTimeout)
	if err != nil {
		return "", fmt.Errorf("error executing %s: %w", cmd, err)
	}
	output = trimEcho(output)

	if sc.config.IsRawOutputEnabled() {
		fmt.Printf("Switch output for '%s':\n%s\n", cmd, output)
	}

	return output, nil
}

func (sc *SSHClient) send(data string) error {
	_, err := sc.stdin.Write([]byte(data))
	return err
}

func (sc *SSHClient) readUntil(pattern string, timeout time.Duration) (string, error) {
	return sc.readUntilAny([]string{pattern}, timeout)
}

func (sc *SSHClient) readUntilAny(patterns []string, timeout time.Duration) (string, error) {
	var output strings.Builder
	output.Grow(BufferSize)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case chunk, ok := <-sc.chunks:
			if !ok {
				return output.String(), fmt.Errorf("read error: %v", sc.readErr)
			}
			output.Write(chunk)
			if sc.config.IsRawOutputEnabled() {
				fmt.Printf("Switch output: Read: %s\n", string(chunk))
			}
			text := output.String()
			for _, pattern := range patterns {
				if strings.Contains(text, pattern) {
					return text, nil
				}
			}
		case <-timer.C:
			return output.String(), fmt.Errorf("timeout waiting for prompts %s", strings.Join(patterns, ", "))
		}
	}
}

// internal/db/ssh.go
package db

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// SSHConfig holds SSH tunnel connection details
type SSHConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	KeyPath  string
}

// SSHTunnel is an active SSH connection database drivers dial through.
type SSHTunnel struct {
	client *ssh.Client
}

// NewSSHTunnel establishes an SSH connection, trying key file, agent and
// password auth in that order.
func NewSSHTunnel(config *SSHConfig) (*SSHTunnel, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("ssh host is required")
	}

	var authMethods []ssh.AuthMethod

	if config.KeyPath != "" {
		keyPath := config.KeyPath
		if len(keyPath) > 1 && keyPath[:2] == "~/" {
			if home, err := os.UserHomeDir(); err == nil {
				keyPath = filepath.Join(home, keyPath[2:])
			}
		}

		if key, err := os.ReadFile(keyPath); err == nil {
			signer, err := ssh.ParsePrivateKey(key)
			if err != nil && config.Password != "" {
				signer, err = ssh.ParsePrivateKeyWithPassphrase(key, []byte(config.Password))
			}
			if err == nil {
				authMethods = append(authMethods, ssh.PublicKeys(signer))
			} else {
				log.Printf("ssh: unusable private key %s: %v", keyPath, err)
			}
		} else {
			log.Printf("ssh: cannot read private key %s: %v", keyPath, err)
		}
	}

	if socket := os.Getenv("SSH_AUTH_SOCK"); socket != "" {
		if conn, err := net.Dial("unix", socket); err == nil {
			authMethods = append(authMethods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		} else {
			log.Printf("ssh: agent socket: %v", err)
		}
	}

	if config.Password != "" {
		authMethods = append(authMethods, ssh.Password(config.Password))
		// Some servers only offer keyboard-interactive.
		authMethods = append(authMethods, ssh.KeyboardInteractive(func(user, instruction string, questions []string, echos []bool) ([]string, error) {
			answers := make([]string, len(questions))
			for i := range answers {
				answers[i] = config.Password
			}
			return answers, nil
		}))
	}

	if len(authMethods) == 0 {
		return nil, fmt.Errorf("no valid SSH authentication methods found")
	}

	cliConfig := &ssh.ClientConfig{
		User:            config.User,
		Auth:            authMethods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	client, err := ssh.Dial("tcp", address, cliConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %w", err)
	}

	return &SSHTunnel{client: client}, nil
}

// Dial connects to a remote address through the tunnel.
func (t *SSHTunnel) Dial(network, addr string) (net.Conn, error) {
	return t.client.Dial(network, addr)
}

// DialTimeout satisfies pq.Dialer. The SSH transport handles its own
// timeouts, so the argument is ignored.
func (t *SSHTunnel) DialTimeout(network, addr string, _ time.Duration) (net.Conn, error) {
	return t.client.Dial(network, addr)
}

// DialContext connects through the tunnel, honoring ctx cancellation.
func (t *SSHTunnel) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return dialWithContext(ctx, t.client.Dial, network, addr)
}

// dialWithContext wraps a blocking dial with ctx cancellation. A connection
// that settles after the caller gave up is closed instead of leaked.
func dialWithContext(ctx context.Context, dial func(network, addr string) (net.Conn, error), network, addr string) (net.Conn, error) {
	type result struct {
		conn net.Conn
		err  error
	}
	ch := make(chan result)

	go func() {
		conn, err := dial(network, addr)
		select {
		case ch <- result{conn, err}:
		default:
			// The caller already returned on ctx; nobody will ever
			// receive this connection.
			if conn != nil {
				conn.Close()
			}
		}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.conn, res.err
	}
}

// Close closes the SSH connection.
func (t *SSHTunnel) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

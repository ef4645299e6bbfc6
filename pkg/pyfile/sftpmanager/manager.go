package sftpmanager

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

var (
	globalManager *Manager
	once          sync.Once
)

// Default configuration values
const (
	DefaultMaxIdleTime       = 5 * time.Minute
	DefaultConnectTimeout    = 10 * time.Second
	DefaultKeepAliveInterval = 30 * time.Second
	DefaultMaxConnections    = 10
	DefaultCleanupInterval   = 2 * time.Minute
)

// ConnectionDetails holds the information needed to establish an SFTP
// connection.
type ConnectionDetails struct {
	Hostname          string
	Port              int
	Username          string
	Password          string
	ConnectTimeout    time.Duration
	KeepAliveInterval time.Duration
}

// String returns a unique string representation of the connection details
func (cd ConnectionDetails) String() string {
	return fmt.Sprintf("%s@%s:%d", cd.Username, cd.Hostname, cd.Port)
}

// applyDefaults sets default values for unspecified fields
func (cd *ConnectionDetails) applyDefaults() {
	if cd.ConnectTimeout == 0 {
		cd.ConnectTimeout = DefaultConnectTimeout
	}
	if cd.KeepAliveInterval == 0 {
		cd.KeepAliveInterval = DefaultKeepAliveInterval
	}
}

// clientInfo holds the SFTP client and its last used timestamp
type clientInfo struct {
	client    *sftp.Client
	sshClient *ssh.Client
	lastUsed  time.Time
}

// ManagerConfig holds the configuration for the SFTP manager
type ManagerConfig struct {
	MaxIdleTime     time.Duration
	MaxConnections  int
	CleanupInterval time.Duration
	Logger          *log.Logger
}

// Manager handles SFTP client pooling and lifecycle. Connection failures are
// surfaced immediately; the manager never retries.
type Manager struct {
	clients map[string]*clientInfo
	mu      sync.RWMutex
	config  ManagerConfig
	logger  *log.Logger
	done    chan struct{}
}

// NewManager creates a new Manager with the given configuration
func NewManager(config ManagerConfig) *Manager {
	if config.MaxIdleTime == 0 {
		config.MaxIdleTime = DefaultMaxIdleTime
	}
	if config.MaxConnections == 0 {
		config.MaxConnections = DefaultMaxConnections
	}
	if config.CleanupInterval == 0 {
		config.CleanupInterval = DefaultCleanupInterval
	}
	if config.Logger == nil {
		config.Logger = log.New(os.Stderr, "sftp: ", log.LstdFlags)
	}

	m := &Manager{
		clients: make(map[string]*clientInfo),
		config:  config,
		logger:  config.Logger,
		done:    make(chan struct{}),
	}
	go m.cleanup()
	return m
}

// GetGlobalManager returns the global SFTP manager instance, creating it if needed
func GetGlobalManager() *Manager {
	once.Do(func() {
		globalManager = NewManager(ManagerConfig{})
	})
	return globalManager
}

// GetClient is a convenience function that uses the global manager
func GetClient(ctx context.Context, details ConnectionDetails) (*sftp.Client, error) {
	return GetGlobalManager().GetClient(ctx, details)
}

// GetClient returns an SFTP client for the given connection details
func (m *Manager) GetClient(ctx context.Context, details ConnectionDetails) (*sftp.Client, error) {
	details.applyDefaults()
	key := details.String()

	// Check connection pool limit
	m.mu.RLock()
	if len(m.clients) >= m.config.MaxConnections {
		m.mu.RUnlock()
		return nil, fmt.Errorf("connection pool limit reached (%d)", m.config.MaxConnections)
	}
	m.mu.RUnlock()

	// Try to get existing client
	if client, ok := m.getExistingClient(key); ok {
		return client, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return m.createNewClient(key, details)
}

// getExistingClient returns a pooled client for key if it is still alive.
// Stale connections are dropped from the pool.
func (m *Manager) getExistingClient(key string) (*sftp.Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.clients[key]
	if !ok {
		return nil, false
	}

	if _, err := info.client.Getwd(); err != nil {
		m.logger.Printf("dropping stale connection %s: %v", key, err)
		m.closeClientLocked(key, info)
		return nil, false
	}

	info.lastUsed = time.Now()
	return info.client, true
}

// createNewClient dials the endpoint and adds the resulting client to the
// pool.
func (m *Manager) createNewClient(key string, details ConnectionDetails) (*sftp.Client, error) {
	sshConfig := &ssh.ClientConfig{
		User: details.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(details.Password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         details.ConnectTimeout,
	}

	addr := fmt.Sprintf("%s:%d", details.Hostname, details.Port)
	sshClient, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SSH server %s: %w", addr, err)
	}

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("failed to create SFTP client for %s: %w", addr, err)
	}

	if details.KeepAliveInterval > 0 {
		go m.keepAlive(sshClient, key, details.KeepAliveInterval)
	}

	m.mu.Lock()
	m.clients[key] = &clientInfo{
		client:    client,
		sshClient: sshClient,
		lastUsed:  time.Now(),
	}
	m.mu.Unlock()

	return client, nil
}

// keepAlive periodically pings the SSH connection until it fails or the
// manager shuts down.
func (m *Manager) keepAlive(client *ssh.Client, key string, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-t.C:
			if _, _, err := client.SendRequest("keepalive@openssh.com", true, nil); err != nil {
				m.logger.Printf("keepalive failed for %s: %v", key, err)
				return
			}
		}
	}
}

// cleanup periodically closes connections that have been idle for longer
// than MaxIdleTime.
func (m *Manager) cleanup() {
	t := time.NewTicker(m.config.CleanupInterval)
	defer t.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-t.C:
			m.mu.Lock()
			now := time.Now()
			for key, info := range m.clients {
				if now.Sub(info.lastUsed) > m.config.MaxIdleTime {
					m.closeClientLocked(key, info)
				}
			}
			m.mu.Unlock()
		}
	}
}

// closeClientLocked closes a pooled connection and removes it from the pool.
// The caller must hold m.mu.
func (m *Manager) closeClientLocked(key string, info *clientInfo) {
	if err := info.client.Close(); err != nil {
		m.logger.Printf("error closing SFTP client %s: %v", key, err)
	}
	if err := info.sshClient.Close(); err != nil {
		m.logger.Printf("error closing SSH client %s: %v", key, err)
	}
	delete(m.clients, key)
}

// Close shuts the manager down and closes every pooled connection.
func (m *Manager) Close() error {
	close(m.done)

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, info := range m.clients {
		m.closeClientLocked(key, info)
	}
	return nil
}

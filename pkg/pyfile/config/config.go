package config

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

// DefaultService is the keyring service name used for SFTP credentials when
// an sftp:// path carries no password.
const DefaultService = "pyfile-sftp"

// Config represents a credential store backed by the system keyring.
type Config struct {
	service string
}

// New creates a new Config instance with the given service name.
// The service name is used to namespace the stored values in the keyring.
func New(service string) (*Config, error) {
	if service == "" {
		return nil, fmt.Errorf("service name cannot be empty")
	}
	return &Config{
		service: service,
	}, nil
}

// Set stores a value in the keyring under the given key.
func (c *Config) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	return keyring.Set(c.service, key, value)
}

// Get retrieves a value from the keyring by its key.
// Returns an empty string if the key doesn't exist.
func (c *Config) Get(key string) string {
	if key == "" {
		return ""
	}

	value, err := keyring.Get(c.service, key)
	if err != nil {
		return ""
	}
	return value
}

// Exists checks if a key exists in the keyring.
func (c *Config) Exists(key string) bool {
	if key == "" {
		return false
	}

	_, err := keyring.Get(c.service, key)
	return err == nil
}

// Delete removes a value from the keyring by its key.
func (c *Config) Delete(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	return keyring.Delete(c.service, key)
}

// DeleteAll removes all values stored under the service name.
func (c *Config) DeleteAll() error {
	return keyring.DeleteAll(c.service)
}

// endpointKey builds the keyring key for an SFTP endpoint.
func endpointKey(user, host string, port int) string {
	return fmt.Sprintf("%s@%s:%d", user, host, port)
}

// Password looks up the stored password for user@host:port under the
// default service. Returns an empty string when nothing is stored.
func Password(user, host string, port int) string {
	c, err := New(DefaultService)
	if err != nil {
		return ""
	}
	return c.Get(endpointKey(user, host, port))
}

// SetPassword stores the password for user@host:port under the default
// service.
func SetPassword(user, host string, port int, password string) error {
	c, err := New(DefaultService)
	if err != nil {
		return err
	}
	return c.Set(endpointKey(user, host, port), password)
}

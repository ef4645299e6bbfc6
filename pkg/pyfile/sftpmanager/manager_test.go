package sftpmanager

import (
	"testing"
	"time"
)

func TestNewManager(t *testing.T) {
	tests := []struct {
		name   string
		config ManagerConfig
		want   ManagerConfig
	}{
		{
			name:   "default configuration",
			config: ManagerConfig{},
			want: ManagerConfig{
				MaxIdleTime:     DefaultMaxIdleTime,
				MaxConnections:  DefaultMaxConnections,
				CleanupInterval: DefaultCleanupInterval,
			},
		},
		{
			name: "custom configuration",
			config: ManagerConfig{
				MaxIdleTime:     10 * time.Minute,
				MaxConnections:  5,
				CleanupInterval: 1 * time.Minute,
			},
			want: ManagerConfig{
				MaxIdleTime:     10 * time.Minute,
				MaxConnections:  5,
				CleanupInterval: 1 * time.Minute,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewManager(tt.config)
			defer manager.Close()

			if manager.config.MaxIdleTime != tt.want.MaxIdleTime {
				t.Errorf("MaxIdleTime = %v, want %v", manager.config.MaxIdleTime, tt.want.MaxIdleTime)
			}
			if manager.config.MaxConnections != tt.want.MaxConnections {
				t.Errorf("MaxConnections = %v, want %v", manager.config.MaxConnections, tt.want.MaxConnections)
			}
			if manager.config.CleanupInterval != tt.want.CleanupInterval {
				t.Errorf("CleanupInterval = %v, want %v", manager.config.CleanupInterval, tt.want.CleanupInterval)
			}
			if manager.logger == nil {
				t.Error("logger should default to stderr")
			}
		})
	}
}

func TestConnectionDetailsDefaults(t *testing.T) {
	cd := ConnectionDetails{
		Hostname: "example.com",
		Port:     22,
		Username: "user",
	}
	cd.applyDefaults()

	if cd.ConnectTimeout != DefaultConnectTimeout {
		t.Errorf("ConnectTimeout = %v, want %v", cd.ConnectTimeout, DefaultConnectTimeout)
	}
	if cd.KeepAliveInterval != DefaultKeepAliveInterval {
		t.Errorf("KeepAliveInterval = %v, want %v", cd.KeepAliveInterval, DefaultKeepAliveInterval)
	}
}

func TestConnectionDetailsString(t *testing.T) {
	cd := ConnectionDetails{
		Hostname: "example.com",
		Port:     2222,
		Username: "user",
	}

	if got, want := cd.String(), "user@example.com:2222"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

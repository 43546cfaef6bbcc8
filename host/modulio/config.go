package modulio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"modulio/host/serial"
)

// SessionConfig describes a complete board session: the serial port to
// open and the devices to create after connecting.
type SessionConfig struct {
	Port           string         `yaml:"port"`
	Baud           int            `yaml:"baud"`
	Automated      bool           `yaml:"automated"`
	StreamPeriodMS int            `yaml:"stream_period_ms"`
	Devices        []DeviceConfig `yaml:"devices"`
}

// DeviceConfig declares one device to create at connect time.
type DeviceConfig struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
	Pins []int  `yaml:"pins"`
}

// LoadSessionConfig reads a session file, applying defaults for omitted
// values.
func LoadSessionConfig(path string) (*SessionConfig, error) {
	cfg := defaultSessionConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating session file: %w", err)
	}
	return cfg, nil
}

func defaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Baud:           115200,
		StreamPeriodMS: DefaultStreamPeriodMS,
	}
}

func (cfg *SessionConfig) validate() error {
	if cfg.Port == "" {
		return fmt.Errorf("port is required")
	}
	if cfg.StreamPeriodMS < 1 {
		return fmt.Errorf("stream_period_ms must be at least 1, got %d", cfg.StreamPeriodMS)
	}
	seen := make(map[string]bool, len(cfg.Devices))
	for _, d := range cfg.Devices {
		if d.Name == "" {
			return fmt.Errorf("device with kind %q has no name", d.Kind)
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate device name %q", d.Name)
		}
		seen[d.Name] = true
		if _, err := KindFromString(d.Kind); err != nil {
			return fmt.Errorf("device %q: %w", d.Name, err)
		}
	}
	return nil
}

// ConnectSession opens a session from a config: connects, applies the
// stream period and automated flag, and creates every declared device.
// On any failure the partially built session is closed.
func ConnectSession(cfg *SessionConfig) (*Client, error) {
	c := NewClient()

	serialCfg := serial.DefaultConfig(cfg.Port)
	serialCfg.Baud = cfg.Baud
	if err := c.ConnectWithConfig(serialCfg); err != nil {
		return nil, err
	}

	if err := applySession(c, cfg); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func applySession(c *Client, cfg *SessionConfig) error {
	if cfg.StreamPeriodMS != DefaultStreamPeriodMS {
		if err := c.SetStreamPeriod(cfg.StreamPeriodMS); err != nil {
			return err
		}
	}
	if cfg.Automated {
		if err := c.SetAutomated(true); err != nil {
			return err
		}
	}
	for _, d := range cfg.Devices {
		kind, err := KindFromString(d.Kind)
		if err != nil {
			return err
		}
		if _, err := c.CreateDevice(kind, d.Name, d.Pins...); err != nil {
			return fmt.Errorf("creating device %q: %w", d.Name, err)
		}
	}
	return nil
}

// Package config loads transport settings from YAML and builds the
// Socket and BufferedTransport stack from them.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tport-io/tport-go/pkg/log"
	"github.com/tport-io/tport-go/pkg/transport"
)

// Config is the top-level configuration document.
type Config struct {
	// Host and Port name a TCP target. Ignored when UnixPath is set.
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// UnixPath names a Unix-domain stream socket.
	UnixPath string `yaml:"unix_path"`

	// ReadBlockSize is the minimum refill size of the buffered transport.
	ReadBlockSize int `yaml:"read_block_size"`

	// TimeoutMS bounds connects, reads and writes. Zero blocks indefinitely.
	TimeoutMS int `yaml:"timeout_ms"`

	// ProtocolLog is the path of a .tlog file receiving protocol events.
	ProtocolLog string `yaml:"protocol_log"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is console or json.
	Format string `yaml:"format"`
	// File receives log output; empty means stderr.
	File   string       `yaml:"file"`
	Rotate RotateConfig `yaml:"rotate"`
}

// RotateConfig enables size-based rotation of LogConfig.File. Rotation is
// off while MaxSizeMB is zero.
type RotateConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Host:          transport.DefaultHost,
		Port:          transport.DefaultPort,
		ReadBlockSize: transport.DefaultReadBlockSize,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Parse parses a YAML document. Fields it leaves out keep their defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}
	if err := c.Validate(); err != nil {
		return nil, &LoadError{
			Message: err.Error(),
			Cause:   err,
		}
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	c, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return c, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.UnixPath == "" && (c.Port < 0 || c.Port > 65535) {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.ReadBlockSize < 0 {
		return fmt.Errorf("read_block_size must not be negative, got %d", c.ReadBlockSize)
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("timeout_ms must not be negative, got %d", c.TimeoutMS)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Timeout returns TimeoutMS as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// SocketOptions translates the configuration into Socket options.
func (c *Config) SocketOptions() []transport.SocketOption {
	opts := []transport.SocketOption{
		transport.WithHost(c.Host),
		transport.WithPort(c.Port),
		transport.WithTimeout(c.Timeout()),
	}
	if c.UnixPath != "" {
		opts = append(opts, transport.WithUnixPath(c.UnixPath))
	}
	return opts
}

// NewSocket builds an unopened Socket. opts are applied after the
// configured ones and override them.
func (c *Config) NewSocket(opts ...transport.SocketOption) *transport.Socket {
	return transport.NewSocket(append(c.SocketOptions(), opts...)...)
}

// NewTransport builds an unopened BufferedTransport over a Socket. The
// protocol logger, if any, is attached to both layers.
func (c *Config) NewTransport(logger log.Logger, opts ...transport.SocketOption) *transport.BufferedTransport {
	sockOpts := append([]transport.SocketOption{transport.WithProtocolLogger(logger)}, opts...)
	sock := c.NewSocket(sockOpts...)
	return transport.NewBufferedTransport(sock,
		transport.WithReadBlockSize(c.ReadBlockSize),
		transport.WithBufferLogger(logger, sock.ConnectionID()),
	)
}

// OpenProtocolLog opens the protocol event file named by ProtocolLog. It
// returns nil when none is configured.
func (c *Config) OpenProtocolLog() (*log.FileLogger, error) {
	if c.ProtocolLog == "" {
		return nil, nil
	}
	fl, err := log.NewFileLogger(c.ProtocolLog)
	if err != nil {
		return nil, fmt.Errorf("open protocol log: %w", err)
	}
	return fl, nil
}

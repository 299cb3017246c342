package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const ConfigFileName = ".txgraph.json"

const (
	DefaultRPCURL          = "https://ethereum-sepolia-rpc.publicnode.com"
	DefaultRPCTimeout      = 30
	DefaultBlockCount      = 10
	DefaultValueDecimals   = 4
	DefaultDisplayWidth    = 10
	DefaultEdgeLabel       = EdgeLabelHash
	DefaultQuitKey         = "esc"
	DefaultRefreshInterval = 1000
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	EdgeLabelHash          = "hash"
	EdgeLabelValue         = "value"
	EnvRPCURL              = "TXGRAPH_RPC_URL"
	EnvLogLevel            = "TXGRAPH_LOG_LEVEL"
	EnvBlockCount          = "TXGRAPH_BLOCK_COUNT"
)

// Format selects the decoder for a config file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Config holds application-wide settings.
type Config struct {
	RPCURL            string `json:"rpc_url" yaml:"rpc_url"`
	RPCTimeoutSeconds int    `json:"rpc_timeout_seconds" yaml:"rpc_timeout_seconds"`
	BlockCount        int    `json:"block_count" yaml:"block_count"`
	ValueDecimals     int    `json:"value_decimals" yaml:"value_decimals"`
	DisplayWidth      int    `json:"display_width" yaml:"display_width"`
	EdgeLabel         string `json:"edge_label" yaml:"edge_label"`
	QuitKey           string `json:"quit_key" yaml:"quit_key"`
	RefreshIntervalMs int    `json:"refresh_interval_ms" yaml:"refresh_interval_ms"`
	LogLevel          string `json:"log_level" yaml:"log_level"`
	LogFormat         string `json:"log_format" yaml:"log_format"` // text|json
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		RPCURL:            DefaultRPCURL,
		RPCTimeoutSeconds: DefaultRPCTimeout,
		BlockCount:        DefaultBlockCount,
		ValueDecimals:     DefaultValueDecimals,
		DisplayWidth:      DefaultDisplayWidth,
		EdgeLabel:         DefaultEdgeLabel,
		QuitKey:           DefaultQuitKey,
		RefreshIntervalMs: DefaultRefreshInterval,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
	}
}

func (c Config) RPCTimeout() time.Duration {
	return time.Duration(c.RPCTimeoutSeconds) * time.Second
}

func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMs) * time.Millisecond
}

// Validate rejects settings the scanner or the view cannot work with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RPCURL) == "" {
		return fmt.Errorf("validation failed: rpc_url is empty")
	}
	if c.BlockCount <= 0 {
		return fmt.Errorf("validation failed: block_count must be positive, got %d", c.BlockCount)
	}
	if c.DisplayWidth <= 0 {
		return fmt.Errorf("validation failed: display_width must be positive, got %d", c.DisplayWidth)
	}
	if c.ValueDecimals < 0 {
		return fmt.Errorf("validation failed: value_decimals must not be negative, got %d", c.ValueDecimals)
	}
	if c.RefreshIntervalMs <= 0 {
		return fmt.Errorf("validation failed: refresh_interval_ms must be positive, got %d", c.RefreshIntervalMs)
	}
	if c.EdgeLabel != EdgeLabelHash && c.EdgeLabel != EdgeLabelValue {
		return fmt.Errorf("validation failed: edge_label must be %q or %q, got %q", EdgeLabelHash, EdgeLabelValue, c.EdgeLabel)
	}
	if strings.TrimSpace(c.QuitKey) == "" {
		return fmt.Errorf("validation failed: quit_key is empty")
	}
	return nil
}

func GetConfigPath(customPath string) (string, error) {
	if customPath != "" {
		return customPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}

// FormatForPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// LoadConfigFromFile reads the file at path, then applies environment overrides.
// A missing file yields the defaults.
func LoadConfigFromFile(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f, FormatForPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadConfig decodes a config document. Keys absent from the document keep
// their defaults.
func LoadConfig(r io.Reader, format Format) (Config, error) {
	var raw struct {
		RPCURL            *string `json:"rpc_url" yaml:"rpc_url"`
		RPCTimeoutSeconds *int    `json:"rpc_timeout_seconds" yaml:"rpc_timeout_seconds"`
		BlockCount        *int    `json:"block_count" yaml:"block_count"`
		ValueDecimals     *int    `json:"value_decimals" yaml:"value_decimals"`
		DisplayWidth      *int    `json:"display_width" yaml:"display_width"`
		EdgeLabel         *string `json:"edge_label" yaml:"edge_label"`
		QuitKey           *string `json:"quit_key" yaml:"quit_key"`
		RefreshIntervalMs *int    `json:"refresh_interval_ms" yaml:"refresh_interval_ms"`
		LogLevel          *string `json:"log_level" yaml:"log_level"`
		LogFormat         *string `json:"log_format" yaml:"log_format"`
	}

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return Config{}, err
		}
	default:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	if raw.RPCURL != nil {
		cfg.RPCURL = strings.TrimSpace(*raw.RPCURL)
	}
	if raw.RPCTimeoutSeconds != nil {
		cfg.RPCTimeoutSeconds = *raw.RPCTimeoutSeconds
	}
	if raw.BlockCount != nil {
		cfg.BlockCount = *raw.BlockCount
	}
	if raw.ValueDecimals != nil {
		cfg.ValueDecimals = *raw.ValueDecimals
	}
	if raw.DisplayWidth != nil {
		cfg.DisplayWidth = *raw.DisplayWidth
	}
	if raw.EdgeLabel != nil {
		cfg.EdgeLabel = strings.ToLower(strings.TrimSpace(*raw.EdgeLabel))
	}
	if raw.QuitKey != nil {
		cfg.QuitKey = strings.TrimSpace(*raw.QuitKey)
	}
	if raw.RefreshIntervalMs != nil {
		cfg.RefreshIntervalMs = *raw.RefreshIntervalMs
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.LogFormat != nil {
		cfg.LogFormat = *raw.LogFormat
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if url := os.Getenv(EnvRPCURL); url != "" {
		c.RPCURL = url
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if count := os.Getenv(EnvBlockCount); count != "" {
		if n, err := strconv.Atoi(count); err == nil {
			c.BlockCount = n
		}
	}
}

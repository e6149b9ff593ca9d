package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type APIKey struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
	Role string `yaml:"role"`
}

type LogConfig struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level"`
}

// GeneratorConfig drives cmd/sdfgen. Empty fields fall back to the
// generator's built-in defaults.
type GeneratorConfig struct {
	SchemaDir  string   `yaml:"schema_dir"`
	Version    string   `yaml:"version"`
	Output     string   `yaml:"output"`
	Package    string   `yaml:"package"`
	TypePrefix string   `yaml:"type_prefix"`
	Exclude    []string `yaml:"exclude"`
	OpenAttrs  []string `yaml:"open_attrs"`
}

type Config struct {
	ListenAddr       string          `yaml:"listen_addr"`
	DBDSN            string          `yaml:"db_dsn"`
	APIKeys          []APIKey        `yaml:"api_keys"`
	MaxDocumentBytes int64           `yaml:"max_document_bytes"`
	Log              LogConfig       `yaml:"log"`
	Generator        GeneratorConfig `yaml:"generator"`
}

const (
	defaultListenAddr       = ":8080"
	defaultLogLevel         = "info"
	defaultMaxDocumentBytes = 4 << 20
)

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML config from r. An empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.MaxDocumentBytes <= 0 {
		c.MaxDocumentBytes = defaultMaxDocumentBytes
	}
}

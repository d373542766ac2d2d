package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/helixdoc"
	yaml "gopkg.in/yaml.v3"
)

// Environment variables read by the CLI.
const (
	EnvConfig = "HELIXDOC_CONFIG"
	EnvCache  = "HELIXDOC_CACHE"
	EnvDB     = "HELIXDOC_DB"
)

// Built-in defaults, used when neither flags, environment nor config file
// set a value.
const (
	DefaultCachePath  = ".helixdoc-cache"
	DefaultOutputPath = "endpoints.csv"
	DefaultTimeout    = 30 * time.Second
	DefaultRetries    = 3
	DefaultRPS        = 1.0
)

// FileConfig is the YAML configuration file schema.
type FileConfig struct {
	ReferenceURL string `yaml:"referenceURL"`
	BaseURL      string `yaml:"baseURL"`

	Cache struct {
		Path   string        `yaml:"path"`
		MaxAge time.Duration `yaml:"maxAge"`
	} `yaml:"cache"`

	Fetch struct {
		Timeout time.Duration `yaml:"timeout"`
		Retries *int          `yaml:"retries"`
		RPS     float64       `yaml:"rps"`
		Browser bool          `yaml:"browser"`
	} `yaml:"fetch"`

	Output struct {
		Paths   []string `yaml:"paths"`
		Compact bool     `yaml:"compact"`
	} `yaml:"output"`

	DB string `yaml:"db"`
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, helixdoc.Errorf(helixdoc.EINVALID, "parse config %s: %v", path, err)
	}
	return fc, nil
}

// Config is the fully resolved run configuration.
type Config struct {
	ReferenceURL string
	BaseURL      string
	CachePath    string
	MaxAge       time.Duration
	Refresh      bool
	Timeout      time.Duration
	Retries      int
	RPS          float64
	Browser      bool
	Outputs      []string
	Compact      bool
	DBPath       string
	Verbose      bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		ReferenceURL: helixdoc.DefaultReferenceURL,
		BaseURL:      helixdoc.DefaultBaseURL,
		CachePath:    DefaultCachePath,
		Timeout:      DefaultTimeout,
		Retries:      DefaultRetries,
		RPS:          DefaultRPS,
		Outputs:      []string{DefaultOutputPath},
	}
}

// ResolveConfig layers the config file, environment and flags over the
// defaults, later layers winning. getenv is os.Getenv outside tests.
func ResolveConfig(cli *CLI, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	configPath := cli.Config
	if configPath == "" {
		configPath = getenv(EnvConfig)
	}
	if configPath != "" {
		fc, err := LoadConfigFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg.applyFile(fc)
	}

	if v := getenv(EnvCache); v != "" {
		cfg.CachePath = v
	}
	if v := getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}

	cfg.applyFlags(cli)

	if cfg.Retries < 0 {
		return cfg, helixdoc.Errorf(helixdoc.EINVALID, "retries must not be negative")
	}
	if cfg.MaxAge < 0 {
		return cfg, helixdoc.Errorf(helixdoc.EINVALID, "max age must not be negative")
	}
	return cfg, nil
}

func (c *Config) applyFile(fc FileConfig) {
	setString(&c.ReferenceURL, fc.ReferenceURL)
	setString(&c.BaseURL, fc.BaseURL)
	setString(&c.CachePath, fc.Cache.Path)
	setString(&c.DBPath, fc.DB)
	if fc.Cache.MaxAge != 0 {
		c.MaxAge = fc.Cache.MaxAge
	}
	if fc.Fetch.Timeout != 0 {
		c.Timeout = fc.Fetch.Timeout
	}
	if fc.Fetch.Retries != nil {
		c.Retries = *fc.Fetch.Retries
	}
	if fc.Fetch.RPS != 0 {
		c.RPS = fc.Fetch.RPS
	}
	c.Browser = c.Browser || fc.Fetch.Browser
	if len(fc.Output.Paths) > 0 {
		c.Outputs = fc.Output.Paths
	}
	c.Compact = c.Compact || fc.Output.Compact
}

func (c *Config) applyFlags(cli *CLI) {
	c.Verbose = cli.Verbose
	setString(&c.DBPath, cli.DB)

	e := cli.Extract
	setString(&c.ReferenceURL, e.URL)
	setString(&c.BaseURL, e.BaseURL)
	setString(&c.CachePath, e.Cache)
	if e.MaxAge != 0 {
		c.MaxAge = e.MaxAge
	}
	if e.Timeout != 0 {
		c.Timeout = e.Timeout
	}
	if e.Retries != nil {
		c.Retries = *e.Retries
	}
	if e.RPS != 0 {
		c.RPS = e.RPS
	}
	c.Refresh = e.Refresh
	c.Browser = c.Browser || e.Browser
	if len(e.Out) > 0 {
		c.Outputs = e.Out
	}
	c.Compact = c.Compact || e.Compact
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

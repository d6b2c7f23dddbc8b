package tradebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment overrides, applied on top of the config file.
const (
	EnvCredentialsFile = "TBK_CREDENTIALS_FILE"
	EnvPortfolioDir    = "TBK_PORTFOLIO_DIR"
	EnvCurrency        = "TBK_CURRENCY"
	EnvStrictCash      = "TBK_STRICT_CASH"
)

const (
	defaultCredentialsFile = "credentials.txt"
	defaultPortfolioDir    = "portfolio_files"
	defaultCurrency        = "USD"
)

// Config holds the application settings.
type Config struct {
	CredentialsFile string `yaml:"credentials_file"`
	PortfolioDir    string `yaml:"portfolio_dir"`
	Currency        string `yaml:"currency"`
	StrictCash      bool   `yaml:"strict_cash"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	c := Config{}
	c.setup()
	return c
}

// LoadConfig reads the yaml config at path, then applies environment
// overrides and defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	var c Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return DefaultConfig(), fmt.Errorf("could not read config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return DefaultConfig(), fmt.Errorf("could not parse config %q: %w", path, err)
		}
	}

	if err := c.fromEnv(); err != nil {
		return DefaultConfig(), err
	}
	c.setup()
	return c, nil
}

func (c *Config) fromEnv() error {
	if v := os.Getenv(EnvCredentialsFile); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv(EnvPortfolioDir); v != "" {
		c.PortfolioDir = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Currency = v
	}
	if v := os.Getenv(EnvStrictCash); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvStrictCash, v, err)
		}
		c.StrictCash = b
	}
	return nil
}

func (c *Config) setup() {
	if c.CredentialsFile == "" {
		c.CredentialsFile = defaultCredentialsFile
	}
	if c.PortfolioDir == "" {
		c.PortfolioDir = defaultPortfolioDir
	}
	if c.Currency == "" {
		c.Currency = defaultCurrency
	}
}

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/thand-io/terminal/internal/common"
)

// Config represents the application configuration structure
type Config struct {
	Login    LoginConfig    `mapstructure:"login"`
	Session  SessionConfig  `mapstructure:"session"`
	Terminal TerminalConfig `mapstructure:"terminal"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type LoginConfig struct {
	Endpoint string        `mapstructure:"endpoint" default:"https://api.openbb.co"`
	Base     string        `mapstructure:"base" default:"/"` // Base path for the hub api e.g. /v1
	Timeout  time.Duration `mapstructure:"timeout" default:"30s"`
}

type SessionConfig struct {
	Path         string `mapstructure:"path" default:"~/.config/terminal/"`
	GuestAllowed bool   `mapstructure:"guest_allowed" default:"true"`
}

type TerminalConfig struct {
	Banner      string `mapstructure:"banner"` // Optional banner file, the built in one is used otherwise
	RegisterUrl string `mapstructure:"register_url" default:"https://my.openbb.co/register"`
	SupportUrl  string `mapstructure:"support_url" default:"https://openbb.co/support"`
	Plain       bool   `mapstructure:"plain"` // Line based prompts instead of forms
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"text"`
	Output string `mapstructure:"output"`
}

func (c *Config) GetLoginServerUrl() string {
	return strings.TrimSuffix(fmt.Sprintf(
		"%s/%s",
		strings.TrimSuffix(c.Login.Endpoint, "/"),
		strings.Trim(c.Login.Base, "/")),
		"/")
}

func (c *Config) GetLoginServerHostname() string {
	hostname, err := url.Parse(c.Login.Endpoint)
	if err != nil || len(hostname.Hostname()) == 0 {
		return "localhost"
	}
	// Return only the hostname, no port or schema
	return hostname.Hostname()
}

func (c *Config) SetLoginServer(loginServer string) error {
	if !common.IsValidURL(loginServer) {
		return fmt.Errorf("invalid login server URL: %s", loginServer)
	}
	parsedUrl, err := url.Parse(loginServer)
	if err != nil {
		return fmt.Errorf("invalid login server URL: %w", err)
	}
	c.Login.Endpoint = parsedUrl.String()
	return nil
}

func (c *Config) IsGuestAllowed() bool {
	return c.Session.GuestAllowed
}

// Package base holds what every padctl command shares: the UI, the logger
// and the connection flags.
package base

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/padclient/internal/config"
	"github.com/hashicorp-forge/padclient/internal/output"
	"github.com/hashicorp-forge/padclient/pkg/etherpad"
)

// Environment variables consulted when the matching flag is unset.
const (
	EnvAPIKey  = "ETHERPAD_API_KEY"
	EnvBaseURL = "ETHERPAD_BASE_URL"
	EnvConfig  = "PADCTL_CONFIG"
)

// Command is embedded by every padctl command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	flagConfig   string
	flagAPIKey   string
	flagBaseURL  string
	flagFormat   string
	flagLogLevel string

	// lookupEnv is os.LookupEnv outside of tests.
	lookupEnv func(string) (string, bool)
}

// New returns a Command writing to ui.
func New(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:       log,
		UI:        ui,
		lookupEnv: os.LookupEnv,
	}
}

// ConnectionFlags registers the flags shared by all operation commands.
func (c *Command) ConnectionFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"["+EnvConfig+"] Path to an HCL configuration file",
	)
	f.StringVar(
		&c.flagAPIKey, "api-key", "",
		"["+EnvAPIKey+"] API key of the Etherpad server",
	)
	f.StringVar(
		&c.flagBaseURL, "base-url", "",
		"["+EnvBaseURL+"] API root, default "+etherpad.DefaultBaseURL,
	)
	f.StringVar(
		&c.flagFormat, "format", "",
		"Output format (json, yaml)",
	)
	f.StringVar(
		&c.flagLogLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error)",
	)
}

// ResolveConfig merges, in increasing precedence, the defaults, the config
// file, the environment and the flags.
func (c *Command) ResolveConfig() (config.Config, error) {
	cfg := config.Default()

	path := c.flagConfig
	if val, ok := c.lookupEnv(EnvConfig); ok && path == "" {
		path = val
	}
	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Merge(fileCfg)
	}

	var env config.Config
	if val, ok := c.lookupEnv(EnvAPIKey); ok {
		env.APIKey = val
	}
	if val, ok := c.lookupEnv(EnvBaseURL); ok {
		env.BaseURL = val
	}
	cfg.Merge(env)

	cfg.Merge(config.Config{
		APIKey:   c.flagAPIKey,
		BaseURL:  c.flagBaseURL,
		Format:   c.flagFormat,
		LogLevel: c.flagLogLevel,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Client builds a client from the resolved configuration.
func (c *Command) Client(cfg config.Config) (*etherpad.Client, error) {
	c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	return etherpad.NewFromConfig(cfg.Etherpad(), etherpad.WithLogger(c.Log))
}

// Output renders v and writes it to the UI.
func (c *Command) Output(format string, v any) int {
	out, err := output.Render(format, v)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error rendering output: %v", err))
		return 1
	}
	c.UI.Output(out)
	return 0
}

// Fail reports err and returns the exit code for it.
func (c *Command) Fail(err error) int {
	var e *etherpad.Error
	if errors.As(err, &e) {
		c.UI.Error(fmt.Sprintf("Error: %s", err))
		if e.Kind == etherpad.KindInvalidConfiguration {
			return 2
		}
		return 1
	}
	c.UI.Error(fmt.Sprintf("Error: %v", err))
	return 1
}

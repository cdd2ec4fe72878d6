// Package config loads padctl settings from an HCL file.
//
// Example:
//
//	api_key   = env("ETHERPAD_API_KEY")
//	base_url  = "https://pad.example.com/api"
//	format    = "yaml"
//	log_level = "debug"
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/hashicorp-forge/padclient/internal/output"
	"github.com/hashicorp-forge/padclient/pkg/etherpad"
)

// Config is the padctl configuration.
type Config struct {
	APIKey   string `hcl:"api_key,optional"`
	BaseURL  string `hcl:"base_url,optional"`
	Format   string `hcl:"format,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL:  etherpad.DefaultBaseURL,
		Format:   output.FormatJSON,
		LogLevel: "warn",
	}
}

// Load decodes an HCL (or HCL-JSON) file.
func Load(path string) (Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, evalContext(), &cfg); err != nil {
		return Config{}, fmt.Errorf("error loading config file %q: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes HCL source. filename selects the syntax by extension.
func Decode(filename string, src []byte) (Config, error) {
	var cfg Config
	if err := hclsimple.Decode(filename, src, evalContext(), &cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Merge overrides c with every non-empty field of o.
func (c *Config) Merge(o Config) {
	if o.APIKey != "" {
		c.APIKey = o.APIKey
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.APIKey == "" {
		result = multierror.Append(result,
			fmt.Errorf("api_key is required"))
	}
	if err := c.Etherpad().Validate(); err != nil {
		result = multierror.Append(result,
			fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err))
	}
	if !slices.Contains(output.Formats, c.Format) {
		result = multierror.Append(result,
			fmt.Errorf("invalid format %q, expected one of %v", c.Format, output.Formats))
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result,
			fmt.Errorf("invalid log_level %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

// Etherpad returns the client settings.
func (c Config) Etherpad() etherpad.Config {
	return etherpad.Config{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
	}
}

// evalContext exposes env("NAME") to configuration files.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

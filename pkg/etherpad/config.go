package etherpad

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// APIVersion is the path segment placed between the base URL and the
	// operation name.
	APIVersion = "1"

	// DefaultBaseURL is used when no base URL is given.
	DefaultBaseURL = "http://localhost:9001/api"

	// Timeout bounds every call made with the default HTTP client.
	Timeout = 20 * time.Second
)

// Config contains the connection settings for a Client.
//
// Example configuration (HCL):
//
//	api_key  = env("ETHERPAD_API_KEY")
//	base_url = "https://pad.example.com/api"
type Config struct {
	// APIKey is sent with every request. It is not validated locally.
	APIKey string `hcl:"api_key" json:"-"`

	// BaseURL is the API root, e.g. "http://localhost:9001/api".
	// Default: DefaultBaseURL
	BaseURL string `hcl:"base_url,optional" json:"baseUrl,omitempty"`
}

// DefaultConfig returns a Config pointing at a local server.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
	}
}

// Validate checks that the base URL is an absolute URL.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(absoluteURL)),
	)
}

// resolveBaseURL validates u and trims any trailing slash.
func resolveBaseURL(u string) (string, error) {
	if err := (Config{BaseURL: u}).Validate(); err != nil {
		return "", newError(KindInvalidConfiguration, "",
			fmt.Sprintf("[%s] is not a valid URL", u), err)
	}
	return strings.TrimRight(u, "/"), nil
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) != s {
		return errors.New("must not contain surrounding whitespace")
	}

	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme == "" {
		return errors.New("missing scheme")
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

// Package output renders operation results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted values of the -format flag.
var Formats = []string{FormatJSON, FormatYAML}

// Render formats v. Operations without a payload pass nil and render as "ok".
func Render(format string, v any) (string, error) {
	if v == nil {
		return "ok", nil
	}

	switch format {
	case FormatJSON, "":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error encoding JSON: %w", err)
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("error encoding YAML: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	default:
		return "", fmt.Errorf("unsupported format %q, expected one of %s",
			format, strings.Join(Formats, ", "))
	}
}

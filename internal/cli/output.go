package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var _ pflag.Value = (*Format)(nil)

func (f *Format) String() string { return string(*f) }

// Set validates the flag value so bad formats fail during flag parsing.
func (f *Format) Set(raw string) error {
	parsed, err := parseFormat(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f *Format) Type() string { return "format" }

func parseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use json or yaml)", raw)
	}
}

// renderPayload renders payload in json/yaml format.
func renderPayload(payload any, format Format) (string, error) {
	switch format {
	case FormatJSON:
		bytes, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(bytes), nil
	case FormatYAML:
		bytes, err := yaml.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return strings.TrimRight(string(bytes), "\n"), nil
	default:
		return "", fmt.Errorf("render payload only supports json/yaml")
	}
}

func writeOutput(w io.Writer, text string) error {
	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/uikit-go/uikit/internal/version"
)

// NewVersionSchemaCmd returns the command printing the JSON Schema of the
// structured version report.
func NewVersionSchemaCmd() *cobra.Command {
	output := new(string)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show the JSON Schema of the version report",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			b, err := VersionSchema()
			if err != nil {
				return err
			}

			switch strings.ToLower(*output) {
			case OutputJSON:
			case OutputYAML:
				b, err = yaml.JSONToYAML(b)
				if err != nil {
					return fmt.Errorf("failed to convert schema: %w", err)
				}
			default:
				return fmt.Errorf("%w: %q", ErrUnknownOutput, *output)
			}

			if _, err := cc.OutOrStdout().Write(b); err != nil {
				return fmt.Errorf("failed to write schema: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(output, "output", "o", OutputJSON, "Output format (json, yaml)")

	return cmd
}

// VersionSchema returns the JSON Schema of [version.Info], newline
// terminated.
func VersionSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}

	s := r.Reflect(&version.Info{})
	s.Title = "Version report"

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return append(b, '\n'), nil
}

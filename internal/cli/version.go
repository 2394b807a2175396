package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uikit-go/uikit/internal/version"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var ErrUnknownOutput = errors.New("unknown output format")

type versionArgs struct {
	output *string
	short  *bool
	number *bool
	check  *bool
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	args := &versionArgs{
		output: new(string),
		short:  new(bool),
		number: new(bool),
		check:  new(bool),
	}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version stamped into this build",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			info := version.Get()

			if *args.check {
				if err := info.Validate(); err != nil {
					return err
				}

				slog.Info("version stamp is consistent", slog.String("version", info.String))
			}

			w := cc.OutOrStdout()

			switch {
			case *args.short:
				return writeLine(w, info.String)
			case *args.number:
				return writeLine(w, FormatNumber(info.Number))
			}

			return writeInfo(w, info, *args.output)
		},
	}

	cmd.Flags().StringVarP(args.output, "output", "o", OutputText, "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(args.short, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(args.number, "number", false, "Print only the version number")
	cmd.Flags().BoolVar(args.check, "check", false, "Fail if the stamped version number and string disagree")

	cmd.MarkFlagsMutuallyExclusive("short", "number", "output")

	cmd.AddCommand(NewVersionSchemaCmd())

	return cmd
}

// FormatNumber renders a version number the way it is written in build
// settings: whole numbers keep one decimal place.
func FormatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', 1, 64)
	}

	return strconv.FormatFloat(n, 'f', -1, 64)
}

func writeLine(w io.Writer, s string) error {
	if _, err := fmt.Fprintln(w, s); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}

	return nil
}

func writeInfo(w io.Writer, info version.Info, output string) error {
	switch strings.ToLower(output) {
	case OutputText:
		_, err := io.WriteString(w, renderInfo(w, info))
		if err != nil {
			return fmt.Errorf("failed to write version: %w", err)
		}

	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("failed to encode version: %w", err)
		}

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("failed to encode version: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode version: %w", err)
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}

	return nil
}

func renderInfo(w io.Writer, info version.Info) string {
	r := newRenderer(w)

	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	key := r.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	block := r.NewStyle().MarginLeft(2)

	rows := []struct{ k, v string }{
		{"number", FormatNumber(info.Number)},
		{"commit", info.Commit},
		{"built", info.BuildDate},
		{"go", info.GoVersion},
		{"platform", info.Platform},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, key.Render(row.k), row.v))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title.Render(info.Product+" "+info.String),
		block.Render(strings.Join(lines, "\n")),
	) + "\n"
}

// newRenderer returns a renderer that only emits colour when w is a
// terminal.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)

	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		r.SetColorProfile(termenv.Ascii)
	}

	return r
}

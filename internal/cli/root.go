package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/uikit-go/uikit/internal/version"
	"github.com/uikit-go/uikit/pkg/log"
)

const (
	EnvLogLevel  = "UIKIT_LOG_LEVEL"
	EnvLogFormat = "UIKIT_LOG_FORMAT"
)

var (
	ErrArgument         = errors.New("invalid argument")
	ErrLogHandlerFailed = errors.New("log handler failed")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", envOr(EnvLogLevel, "warn"),
		"Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", envOr(EnvLogFormat, log.FormatText),
		"Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var merr error

		if _, err := log.GetLevel(args.GetLogLevel()); err != nil {
			merr = multierror.Append(merr, err)
		}

		if _, err := log.GetFormatter(args.GetLogFormat()); err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrArgument, merr)
		}

		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), args.GetLogLevel(), args.GetLogFormat())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go",
			slog.String("product", version.Product()),
			slog.String("version", version.String()),
		)

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		return nil
	}

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uikit-go/uikit/internal/cli"
)

//nolint:paralleltest // Replaces the default slog handler.
func TestRootCmdDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "version", "--short", "--log_level=debug", "--log_format=logfmt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "ready to go")
	assert.Contains(t, stderr, "shutting down")
}

//nolint:paralleltest // Uses t.Setenv.
func TestRootCmdEnvDefaults(t *testing.T) {
	t.Setenv(cli.EnvLogLevel, "debug")
	t.Setenv(cli.EnvLogFormat, "json")

	_, stderr, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stderr, "{"), stderr)
	assert.Contains(t, stderr, "ready to go")
}

func TestRootCmdInvalidLogFlags(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "version", "--log_level=loud", "--log_format=xml")
	require.ErrorIs(t, err, cli.ErrArgument)
	assert.Contains(t, err.Error(), `unknown log level "loud"`)
	assert.Contains(t, err.Error(), `unknown log format "xml"`)
}

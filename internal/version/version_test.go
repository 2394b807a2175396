package version_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/uikit-go/uikit/internal/version"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, version.String())
	require.NotEmpty(t, version.Product())
	assert.GreaterOrEqual(t, version.Number(), 0.0)
}

func TestAccessorsAreStable(t *testing.T) {
	t.Parallel()

	n, s := version.Number(), version.String()
	for range 100 {
		assert.Equal(t, n, version.Number()) //nolint:testifylint // Must be bit-identical.
		assert.Equal(t, s, version.String())
	}
}

func TestAccessorsConcurrent(t *testing.T) {
	t.Parallel()

	n, s := version.Number(), version.String()

	numbers := make([]float64, 64)
	strs := make([]string, 64)

	var g errgroup.Group
	for i := range numbers {
		g.Go(func() error {
			numbers[i] = version.Number()
			strs[i] = version.String()

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := range numbers {
		assert.Equal(t, n, numbers[i]) //nolint:testifylint // Must be bit-identical.
		assert.Equal(t, s, strs[i])
	}
}

func TestBytesReturnsCopy(t *testing.T) {
	t.Parallel()

	b := version.Bytes()
	require.Equal(t, version.String(), string(b))

	for i := range b {
		b[i] = 'x'
	}

	assert.Equal(t, version.String(), string(version.Bytes()))
}

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.Equal(t, version.Product(), info.Product)
	assert.Equal(t, version.String(), info.String)
	assert.Equal(t, version.Number(), info.Number) //nolint:testifylint // Must be bit-identical.
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.BuildDate)

	require.NoError(t, info.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		number float64
		str    string
		errs   []string
	}{
		"release": {
			number: 1.0,
			str:    "1.0.0",
		},
		"minor": {
			number: 2.3,
			str:    "v2.3.11",
		},
		"prerelease": {
			number: 0,
			str:    "0.0.0-dev",
		},
		"mismatch": {
			number: 1.1,
			str:    "1.2.0",
			errs:   []string{`number 1.1 does not match string "1.2.0"`},
		},
		"not semver": {
			number: 1,
			str:    "PROJECT:UIKit-1",
			errs:   []string{`string "PROJECT:UIKit-1"`},
		},
		"negative and not semver": {
			number: -1,
			str:    "",
			errs:   []string{"number -1 is negative", `string ""`},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			info := version.Info{Number: tc.number, String: tc.str}

			err := info.Validate()
			if len(tc.errs) == 0 {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, version.ErrInconsistent)
			for _, msg := range tc.errs {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

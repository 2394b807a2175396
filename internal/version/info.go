package version

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"runtime/debug"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-multierror"
)

// ErrInconsistent indicates that the stamped values disagree with each
// other.
var ErrInconsistent = errors.New("inconsistent version stamp")

const unknown = "unknown"

// Info is a snapshot of the build metadata.
type Info struct {
	Product   string  `json:"product"   yaml:"product"   jsonschema:"description=Product the version belongs to"`
	Number    float64 `json:"number"    yaml:"number"    jsonschema:"description=Version number stamped at build time"`
	String    string  `json:"string"    yaml:"string"    jsonschema:"description=Version string stamped at build time"`
	Commit    string  `json:"commit"    yaml:"commit"    jsonschema:"description=VCS revision the binary was built from"`
	BuildDate string  `json:"buildDate" yaml:"buildDate" jsonschema:"description=Build timestamp (RFC 3339)"`
	GoVersion string  `json:"goVersion" yaml:"goVersion" jsonschema:"description=Go toolchain version"`
	Platform  string  `json:"platform"  yaml:"platform"  jsonschema:"description=GOOS/GOARCH of the binary"`
}

// Get returns the build metadata of the running binary.
func Get() Info {
	info := Info{
		Product:   product,
		Number:    parsedNumber,
		String:    str,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info.Commit == "" || info.BuildDate == "" {
		rev, at := vcsSettings()
		if info.Commit == "" {
			info.Commit = rev
		}
		if info.BuildDate == "" {
			info.BuildDate = at
		}
	}

	return info
}

// vcsSettings reads the revision and commit time the Go toolchain records
// for builds made inside a repository.
func vcsSettings() (string, string) {
	rev, at := unknown, unknown

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return rev, at
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at = s.Value
		}
	}

	return rev, at
}

// Validate reports whether the stamped values agree. The string must be a
// semantic version, and the number must be finite, non-negative and equal to
// the string's major.minor.
func (i Info) Validate() error {
	var merr error

	if math.IsNaN(i.Number) || math.IsInf(i.Number, 0) {
		merr = multierror.Append(merr, fmt.Errorf("number %v is not finite", i.Number))
	} else if i.Number < 0 {
		merr = multierror.Append(merr, fmt.Errorf("number %v is negative", i.Number))
	}

	sv, err := semver.NewVersion(i.String)
	if err != nil {
		merr = multierror.Append(merr, fmt.Errorf("string %q: %w", i.String, err))
	} else {
		mm, err := strconv.ParseFloat(fmt.Sprintf("%d.%d", sv.Major(), sv.Minor()), 64)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("string %q: %w", i.String, err))
		} else if mm != i.Number {
			merr = multierror.Append(merr,
				fmt.Errorf("number %v does not match string %q", i.Number, i.String))
		}
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInconsistent, merr)
	}

	return nil
}

// Package version exposes the version values stamped into the binary at build
// time.
//
// The values are injected by the linker:
//
//	go build -ldflags "\
//	  -X github.com/uikit-go/uikit/internal/version.number=1.0 \
//	  -X github.com/uikit-go/uikit/internal/version.str=1.0.0"
//
// The linker can only stamp strings, so the version number is carried as
// decimal text and converted once while the package initializes. A number
// that does not parse makes initialization panic: the build is broken and
// the binary must not start.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNumber indicates that the stamped version number is not a
// decimal float.
var ErrInvalidNumber = errors.New("invalid version number")

// These values are intended to be set at build time using -ldflags.
var (
	number    = "0"
	str       = "0.0.0-dev"
	product   = "UIKit"
	commit    = ""
	buildDate = ""
)

// decimalRe matches the decimal forms a build setting can hold. ParseFloat
// alone would also take NaN, Inf, exponents and hex floats.
var decimalRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

var parsedNumber = mustParseNumber(number)

// Number returns the version number stamped at build time.
func Number() float64 {
	return parsedNumber
}

// String returns the version string stamped at build time.
func String() string {
	return str
}

// Bytes returns the version string as a new byte slice. Callers may modify
// the result freely.
func Bytes() []byte {
	return []byte(str)
}

// Product returns the name of the product the version belongs to.
func Product() string {
	return product
}

func parseNumber(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if !decimalRe.MatchString(t) {
		return 0, fmt.Errorf("%w %q: not a decimal number", ErrInvalidNumber, s)
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidNumber, s, err)
	}

	return f, nil
}

func mustParseNumber(s string) float64 {
	f, err := parseNumber(s)
	if err != nil {
		panic(err)
	}

	return f
}

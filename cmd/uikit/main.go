package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/uikit-go/uikit/internal/cli"
)

const (
	cmdName = "uikit"

	shortDesc = "Report the UIKit build version."
	longDesc  = `Report the version stamped into this UIKit build.

The version number and version string are fixed when the binary is linked:

  go build -ldflags "-X github.com/uikit-go/uikit/internal/version.number=1.0 \
    -X github.com/uikit-go/uikit/internal/version.str=1.0.0" ./cmd/uikit
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}

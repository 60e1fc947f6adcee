package main

import (
	"os"
	"runtime"

	"github.com/grovetools/jj-prompt/cli"
)

// Set via -ldflags at release time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		BuildArch: runtime.GOOS + "/" + runtime.GOARCH,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/raphi011/workty/internal/config"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(Execute(config.SystemDirs{}, os.Args[1:]))
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("workty %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}

package main

import (
	"os"

	"github.com/tinytelemetry/wonders/cmd/wonders/commands"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	commands.SetBuildInfo(commands.BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: goVersion,
	})
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

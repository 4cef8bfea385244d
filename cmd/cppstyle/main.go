package main

import (
	"cppstyle/internal/cli"
	_ "cppstyle/internal/rules/checks"
)

// These variables are populated at build time via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetBuildInfo(version, commit, date)
	cli.Execute()
}

// Package main provides the quickplt CLI entry point.
package main

import (
	"os"

	"github.com/kpumuk/quickplt/internal/cmd"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
	BuiltBy = ""
)

func main() {
	if err := cmd.Execute(Version, Commit, Date, BuiltBy); err != nil {
		os.Exit(1)
	}
}

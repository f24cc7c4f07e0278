// Command bintool drives the binel, ghostnet, and maps packages from the
// shell: dump a map file's tree, round-trip it through encode/decode, or
// split a ghost-network capture into its frames.
package main

import (
	"fmt"
	"os"

	"github.com/liamwhite/binel/cmd/bintool/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bintool: %v\n", err)
		os.Exit(1)
	}
}

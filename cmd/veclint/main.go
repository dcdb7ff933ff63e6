// Command veclint lints SVG files against declarative structural rules.
package main

import (
	"os"

	"github.com/veclint/veclint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

// Command dashctl drives the dashboard session from a terminal: sign in, check
// which store the account resolves to, and browse the category tree.
package main

import (
	"os"

	"marketdash/config"
)

func main() {
	if err := newRootCmd(config.New).Execute(); err != nil {
		os.Exit(1)
	}
}

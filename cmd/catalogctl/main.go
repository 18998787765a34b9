// Command catalogctl queries and edits a catalog loaded from the configured
// source. Edits only live for the duration of the command.
package main

import (
	"os"

	"bookshelf/internal/app"
	"bookshelf/internal/platform/logging"
)

func main() {
	app.LoadEnvFiles()
	logging.Setup()

	if err := newRootCmd(defaultLoader).Execute(); err != nil {
		os.Exit(1)
	}
}

// Command formctl is the operator CLI for quickforms: it applies database
// migrations, exports a form's responses as CSV and mints owner tokens.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// main is the entry point for the codescout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/codescout/codescout/cmd"
	"github.com/codescout/codescout/internal/iocache"
)

func main() {
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

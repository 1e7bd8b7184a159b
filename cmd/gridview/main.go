// Command gridview renders tables from documents, CSV files and SQLite
// queries to the console.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	initConsole()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(defaultDeps()).ExecuteContext(ctx)
	stop()
	logAndExit(err)
}

func logAndExit(err error) {
	// cobra has already printed the error
	if err != nil {
		exitFunc(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(NewApp(os.Stdout), os.Args[1:], os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(app *App, args []string, stderr io.Writer) int {
	root := newRootCmd(app)
	root.SetArgs(args)

	err := root.Execute()
	app.sentry.Flush()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

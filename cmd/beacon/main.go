package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/beacon/internal/cli"
	"github.com/vvka-141/beacon/pkg/beacon"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and maps its outcome to an exit code. A panic is
// reported with its stack and exits with ExitPanic.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			code = beacon.ExitPanic
		}
	}()

	return beacon.ExitCodeForError(cli.Execute())
}

package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash prints the panic value and stack trace to stderr and exits
// The caller must have released the terminal before calling
func HandleCrash(r any) {
	if r == nil {
		return
	}

	os.Stdout.Sync()

	// \r\n keeps the trace readable if the tty is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTRAFFIC LIGHT CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}

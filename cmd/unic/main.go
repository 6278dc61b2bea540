// Command unic collapses adjacent repeated lines.
//
//	unic [-c] [INPUT [OUTPUT]]
//
// INPUT defaults to standard input ("-"); OUTPUT defaults to standard output.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kbukum/unic/config"
	"github.com/kbukum/unic/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status. Failures
// are reported as a single "unic: <message>" line on stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(streams{in: stdin, out: stdout, err: stderr})
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", config.AppName, errors.UserMessage(err))
		return errors.ExitCode(err)
	}
	return 0
}

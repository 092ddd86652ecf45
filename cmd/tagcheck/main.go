/*
Package main is the tagcheck cli tool.
It verifies that CI templates reference one consistent, newer release of a
shared template repository.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

// Exit codes.
const (
	exitOK           = 0
	exitInvalidTag   = 1
	exitUsage        = 2
	exitInconsistent = 8
	exitFailed       = 9
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	scan := &scanCommand{stdout: stdout}

	parser := flags.NewNamedParser("tagcheck", flags.HelpFlag|flags.PassDoubleDash)
	parser.LongDescription = `tagcheck checks CI pipeline templates.
Every remote include must point to the template origin at a vMAJOR.MINOR.PATCH
tag newer than the current release, and all includes must agree on one tag.`

	if _, err := parser.AddCommand("scan",
		"Scan a directory of YAML templates",
		"Scan YAML templates under directory-path and validate their remote includes.",
		scan,
	); err != nil {
		fmt.Fprintf(stderr, "register scan command: %v\n", err)
		return exitUsage
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}

		fmt.Fprintln(stderr, err)
		if scan.code != exitOK {
			return scan.code
		}

		return exitUsage
	}

	return scan.code
}

package main

import (
	"fmt"
	"os"

	derrors "github.com/agentflare-ai/go-dokuwiki/internal/errors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(exitCode(err))
	}
}

// errorMessage points load failures at the debug log, which lists every
// target candidate that was tried.
func errorMessage(err error) string {
	msg := "go-dokuwiki: " + err.Error()
	if derrors.IsCategory(err, derrors.CategoryLoad) {
		msg += " (run with -v to see each candidate)"
	}
	return msg
}

// exitCode is 2 for configuration and usage problems, 1 for everything else.
func exitCode(err error) int {
	switch derrors.GetCategory(err) {
	case derrors.CategoryConfig, derrors.CategoryValidation:
		return 2
	default:
		return 1
	}
}

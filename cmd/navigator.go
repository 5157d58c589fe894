package cmd

import (
	"context"
	"fmt"
	"io"
)

// loginNavigator is the terminal's login screen: after a forced logout it
// tells the user to sign in again.
type loginNavigator struct {
	out io.Writer
}

func newLoginNavigator(out io.Writer) loginNavigator {
	return loginNavigator{out: out}
}

func (n loginNavigator) RedirectToLogin(_ context.Context, reason string) {
	_, _ = fmt.Fprintf(n.out, "Signed out: %s\nRun `lms login --email <email> --password <password>` to sign in again.\n", reason)
}

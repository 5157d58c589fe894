package ports

import "context"

// Navigator sends the user back to the login entry point after a forced logout.
type Navigator interface {
	RedirectToLogin(ctx context.Context, reason string)
}

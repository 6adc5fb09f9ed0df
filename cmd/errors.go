package cmd

import "errors"

// The verbs sort every failure into one of four buckets: the three usage
// errors below plus everything a collaborator returns. Scripts rely on the
// split through the exit code.
var (
	// ErrUnknownVerb is returned when the first argument names no verb.
	ErrUnknownVerb = errors.New("unknown verb")
	// ErrMissingArgument is returned when a required argument or flag is absent.
	ErrMissingArgument = errors.New("missing argument")
	// ErrMalformedArgument is returned when an argument is present but unusable.
	ErrMalformedArgument = errors.New("malformed argument")
)

const (
	exitOK = 0
	// exitFailure covers errors from the node or the chain itself.
	exitFailure = 1
	// exitUsage covers errors in the invocation, nothing was attempted.
	exitUsage = 2
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUnknownVerb),
		errors.Is(err, ErrMissingArgument),
		errors.Is(err, ErrMalformedArgument):
		return exitUsage
	default:
		return exitFailure
	}
}

package errors

// CommandError represents a failed command invocation, carrying the exit code
// the process should terminate with.
type CommandError struct {
	ExitCode    int
	CommonError string
	Args        interface{}
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError creates a new CommandError instance, encapsulating args and the error message.
func NewCommandError(args interface{}, err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		Args:        args,
	}
}

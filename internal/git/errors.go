package git

import (
	"errors"
	"fmt"

	"github.com/raphi011/workty/internal/cmd"
)

// ErrNotARepository is returned by Discover when the start directory is not
// inside a git working tree.
var ErrNotARepository = errors.New("not a git repository")

// CommandError reports a git invocation that exited unsuccessfully.
type CommandError struct {
	Subcommand string
	Stderr     string
	Err        error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed: %s", e.Subcommand, e.Stderr)
	}
	return fmt.Sprintf("git %s failed: %v", e.Subcommand, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns git's exit status, or -1 if it is unknown.
func (e *CommandError) ExitCode() int {
	var cmdErr *cmd.Error
	if errors.As(e.Err, &cmdErr) {
		return cmdErr.ExitCode()
	}
	return -1
}

// newCommandError wraps a failure of "git <args...>" with the subcommand name.
func newCommandError(args []string, err error) error {
	ce := &CommandError{Err: err}
	if len(args) > 0 {
		ce.Subcommand = args[0]
	}
	var cmdErr *cmd.Error
	if errors.As(err, &cmdErr) {
		ce.Stderr = cmdErr.Stderr
	}
	return ce
}

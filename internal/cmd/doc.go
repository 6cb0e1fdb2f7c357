// Package cmd runs external commands with proper error handling.
//
// It wraps [os/exec.Cmd] so that a failing command produces an [*Error]
// whose message is the command's trimmed stderr, making failures readable
// without further formatting.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoRoot, "git", "rev-parse", "--show-toplevel")
//	if err != nil {
//	    var cmdErr *cmd.Error
//	    if errors.As(err, &cmdErr) && cmdErr.ExitCode() == 1 {
//	        // command ran and reported a negative answer
//	    }
//	}
//
// Every invocation is echoed to the context logger in verbose mode.
package cmd

package git

import "errors"

// ErrTimeout signals that a git invocation exceeded the client timeout.
// Callers may treat it as a transient failure, unlike a definitive git
// error.
var ErrTimeout = errors.New("git: operation timed out")

// Op constants map to git subcommand names for error context.
const (
	OpClone    = "clone"
	OpConfig   = "config"
	OpRevParse = "rev-parse"
	OpAdd      = "add"
	OpPull     = "pull"
	OpPush     = "push"
	OpCommit   = "commit"
	OpReset    = "reset"
	OpCheckout = "checkout"
	OpClean    = "clean"
)

// Error wraps an underlying error with the git subcommand for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "git " + e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

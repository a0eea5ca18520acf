package store

import "fmt"

// Op constants identify which lifecycle phase failed.
const (
	OpInitialize = "initialize"
	OpClone      = "clone"
	OpPull       = "pull"
	OpPush       = "push"
	OpCommit     = "commit"
	OpClean      = "clean"
)

// Error wraps an underlying failure with the store name and the lifecycle
// phase in which it occurred.
type Error struct {
	Op    string
	Store string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: failed to %s repo: %v", e.Store, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

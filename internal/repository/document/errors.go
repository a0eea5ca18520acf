package document

import "fmt"

// Kind identifies which document operation failed.
type Kind uint8

const (
	KindNotFound Kind = iota
	KindRead
	KindWrite
	KindUpdate
	KindDelete
	KindCreate
	KindCopy
	KindRemove
)

// String returns the failure description used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindRead:
		return "read error"
	case KindWrite:
		return "write error"
	case KindUpdate:
		return "update error"
	case KindDelete:
		return "delete error"
	case KindCreate:
		return "create error"
	case KindCopy:
		return "copy error"
	case KindRemove:
		return "remove error"
	default:
		return fmt.Sprintf("error kind %d", uint8(k))
	}
}

// Error wraps an underlying failure with the operation kind and the
// document's relative path. The cause is never discarded.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("document %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("document %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

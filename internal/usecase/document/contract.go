package document

import "github.com/kailas-cloud/gitdocs/internal/domain/query"

// Engine is the per-document storage contract.
type Engine interface {
	Read() (any, error)
	Write(data any) error
	Update(path string, val any) error
	Delete(path string) error
	Exists() bool
	Copy(source string) (int64, error)
	Remove() error
}

// Opener creates document engines by relative path within a store.
type Opener interface {
	Document(rel string) Engine
}

// Finder scans the store's documents under a query.
type Finder interface {
	FindOne(q query.Expr) (any, error)
	FindMany(q query.Expr) ([]any, error)
}

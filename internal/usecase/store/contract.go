package store

import "context"

// Repository is the lifecycle contract of a git-backed store.
type Repository interface {
	Name() string
	Initialize(ctx context.Context) error
	Pull(ctx context.Context, rebase bool) error
	Push(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Clean(ctx context.Context) error
}

package store

import "context"

type mockRepository struct {
	nameFn       func() string
	initializeFn func(ctx context.Context) error
	pullFn       func(ctx context.Context, rebase bool) error
	pushFn       func(ctx context.Context) error
	commitFn     func(ctx context.Context, message string) error
	cleanFn      func(ctx context.Context) error
}

func (m *mockRepository) Name() string {
	if m.nameFn == nil {
		return "mock"
	}
	return m.nameFn()
}

func (m *mockRepository) Initialize(ctx context.Context) error { return m.initializeFn(ctx) }

func (m *mockRepository) Pull(ctx context.Context, rebase bool) error { return m.pullFn(ctx, rebase) }

func (m *mockRepository) Push(ctx context.Context) error { return m.pushFn(ctx) }

func (m *mockRepository) Commit(ctx context.Context, message string) error {
	return m.commitFn(ctx, message)
}

func (m *mockRepository) Clean(ctx context.Context) error { return m.cleanFn(ctx) }

package document

import "github.com/kailas-cloud/gitdocs/internal/domain/query"

type mockEngine struct {
	readFn   func() (any, error)
	writeFn  func(data any) error
	updateFn func(path string, val any) error
	deleteFn func(path string) error
	existsFn func() bool
	copyFn   func(source string) (int64, error)
	removeFn func() error
}

func (m *mockEngine) Read() (any, error)                  { return m.readFn() }
func (m *mockEngine) Write(data any) error                { return m.writeFn(data) }
func (m *mockEngine) Update(path string, val any) error   { return m.updateFn(path, val) }
func (m *mockEngine) Delete(path string) error            { return m.deleteFn(path) }
func (m *mockEngine) Exists() bool                        { return m.existsFn() }
func (m *mockEngine) Copy(source string) (int64, error)   { return m.copyFn(source) }
func (m *mockEngine) Remove() error                       { return m.removeFn() }

type mockOpener struct {
	documentFn func(rel string) Engine
}

func (m *mockOpener) Document(rel string) Engine { return m.documentFn(rel) }

type mockFinder struct {
	findOneFn  func(q query.Expr) (any, error)
	findManyFn func(q query.Expr) ([]any, error)
}

func (m *mockFinder) FindOne(q query.Expr) (any, error)    { return m.findOneFn(q) }
func (m *mockFinder) FindMany(q query.Expr) ([]any, error) { return m.findManyFn(q) }

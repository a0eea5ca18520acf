package gitdocs

import (
	"context"
	"errors"

	documentrepo "github.com/kailas-cloud/gitdocs/internal/repository/document"
	repostore "github.com/kailas-cloud/gitdocs/internal/repository/store"
	documentuc "github.com/kailas-cloud/gitdocs/internal/usecase/document"
	storeuc "github.com/kailas-cloud/gitdocs/internal/usecase/store"
)

// Store is the gitdocs entry point: a named git working copy holding JSON
// documents.
type Store struct {
	repo     *repostore.Store
	storeSvc *storeuc.Service
	docSvc   *documentuc.Service
}

// New creates a Store for a remote repository and a local working
// directory. No filesystem or network activity happens until Initialize.
func New(name, remoteURL, workdir string, opts ...Option) (*Store, error) {
	if name == "" {
		return nil, errors.New("gitdocs: store name required")
	}
	if remoteURL == "" {
		return nil, errors.New("gitdocs: remote URL required")
	}
	if workdir == "" {
		return nil, errors.New("gitdocs: working directory required")
	}

	cfg := &storeConfig{
		author: repostore.Author{Name: "gitdocs", Email: "gitdocs@localhost"},
	}
	for _, o := range opts {
		o(cfg)
	}

	repo := repostore.New(repostore.Config{
		Name:      name,
		RemoteURL: remoteURL,
		Workdir:   workdir,
		Branch:    cfg.branch,
		Auth:      cfg.auth,
		Author:    cfg.author,
		Timeout:   cfg.timeout,
	})

	return &Store{
		repo:     repo,
		storeSvc: storeuc.New(repo, cfg.logger),
		docSvc:   documentuc.New(opener{repo}, repo.Collection(), cfg.logger),
	}, nil
}

// opener adapts the repository store's concrete document factory to the
// usecase contract.
type opener struct {
	repo *repostore.Store
}

func (o opener) Document(rel string) documentuc.Engine {
	return o.repo.Document(rel)
}

// Name returns the store's symbolic name.
func (s *Store) Name() string { return s.repo.Name() }

// Workdir returns the local working-directory path.
func (s *Store) Workdir() string { return s.repo.Workdir() }

// Initialize brings the working directory to a valid checkout of the
// remote: cloning it when absent, recloning when corrupted, and leaving a
// valid checkout untouched. Idempotent.
func (s *Store) Initialize(ctx context.Context) error {
	return s.storeSvc.Initialize(ctx)
}

// Pull fetches and integrates remote changes, via rebase when requested.
func (s *Store) Pull(ctx context.Context, rebase bool) error {
	return s.storeSvc.Pull(ctx, rebase)
}

// Push publishes local commits to the remote.
func (s *Store) Push(ctx context.Context) error {
	return s.storeSvc.Push(ctx)
}

// Commit stages all working-directory changes and commits them with the
// given message.
func (s *Store) Commit(ctx context.Context, message string) error {
	return s.storeSvc.Commit(ctx, message)
}

// Clean discards all uncommitted state, including untracked and ignored
// files.
func (s *Store) Clean(ctx context.Context) error {
	return s.storeSvc.Clean(ctx)
}

// Sync pulls with rebase, commits local changes with the given message and
// pushes. A clean working tree commits nothing and is not an error.
func (s *Store) Sync(ctx context.Context, message string) error {
	return s.storeSvc.Sync(ctx, message)
}

// Document returns the raw document engine for a relative path, bypassing
// the service layer's path validation.
func (s *Store) Document(rel string) *documentrepo.Document {
	return s.repo.Document(rel)
}

// Get reads a document's full JSON content.
func (s *Store) Get(rel string) (any, error) {
	return s.docSvc.Get(rel)
}

// Put replaces a document's whole content.
func (s *Store) Put(rel string, data any) error {
	return s.docSvc.Put(rel, data)
}

// SetField applies a dotted-path upsert to a document.
func (s *Store) SetField(rel, fieldPath string, val any) error {
	return s.docSvc.SetField(rel, fieldPath, val)
}

// UnsetField removes the leaf at a dotted path from a document. An
// untraversable path is a no-op.
func (s *Store) UnsetField(rel, fieldPath string) error {
	return s.docSvc.UnsetField(rel, fieldPath)
}

// Exists reports whether a document's file is present on disk.
func (s *Store) Exists(rel string) bool {
	return s.docSvc.Exists(rel)
}

// CopyFrom copies the file at source into the document's location and
// returns the bytes copied.
func (s *Store) CopyFrom(rel, source string) (int64, error) {
	return s.docSvc.CopyFrom(rel, source)
}

// Remove deletes a document's file.
func (s *Store) Remove(rel string) error {
	return s.docSvc.Remove(rel)
}

// FindOne returns the first document in the store whose content satisfies
// the query.
func (s *Store) FindOne(q Query) (any, error) {
	return s.docSvc.FindOne(q)
}

// FindMany returns every document in the store whose content satisfies the
// query.
func (s *Store) FindMany(q Query) ([]any, error) {
	return s.docSvc.FindMany(q)
}

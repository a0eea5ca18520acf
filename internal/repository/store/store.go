// Package store owns a git working copy as the durability substrate for
// JSON documents. Lifecycle operations shell out to git through
// internal/db/git; documents are transient views over files inside the
// working directory.
package store

import (
	"context"
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/kailas-cloud/gitdocs/internal/db/git"
	"github.com/kailas-cloud/gitdocs/internal/repository/document"
)

// Auth holds the credentials used to reach the remote. Token wins over
// username/password; with neither set no auth header is sent.
type Auth struct {
	Username string
	Password string
	Token    string
	// Insecure disables TLS certificate verification for the clone.
	Insecure bool
}

// Header builds the HTTP Authorization header for the configured
// credentials, or "" when none are set.
func (a Auth) Header() string {
	if a.Token != "" {
		return "Authorization: Bearer " + a.Token
	}
	if a.Username != "" && a.Password != "" {
		cred := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Password))
		return "Authorization: Basic " + cred
	}
	return ""
}

// Author is the store-scoped commit identity. It is configured per store
// rather than read from ambient git configuration.
type Author struct {
	Name  string
	Email string
}

// Config holds everything needed to construct a Store.
type Config struct {
	Name      string
	RemoteURL string
	Workdir   string
	Branch    string
	Auth      Auth
	Author    Author
	// Timeout bounds each git invocation; zero means git.DefaultTimeout.
	Timeout time.Duration
}

// Store is a working directory backed by a remote git repository. Lifecycle
// and synchronization operations are serialized by an internal mutex; the
// on-disk repository state is a shared mutable resource with no locking of
// its own.
type Store struct {
	name      string
	remoteURL string
	workdir   string
	branch    string
	auth      Auth
	author    Author
	git       *git.Client

	mu sync.Mutex
}

// New creates a Store. No filesystem or network activity happens until
// Initialize.
func New(cfg Config) *Store {
	return &Store{
		name:      cfg.Name,
		remoteURL: cfg.RemoteURL,
		workdir:   cfg.Workdir,
		branch:    cfg.Branch,
		auth:      cfg.Auth,
		author:    cfg.Author,
		git:       git.New(cfg.Timeout),
	}
}

// Name returns the store's symbolic name.
func (s *Store) Name() string { return s.name }

// Workdir returns the working-directory path all document paths resolve
// against.
func (s *Store) Workdir() string { return s.workdir }

// Initialize brings the working directory to a valid checkout of the
// remote. An absent directory is cloned; a directory that fails the
// work-tree probe is destroyed and recloned; a valid checkout is left
// untouched, so Initialize is idempotent.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.workdir)
	switch {
	case err == nil:
		if s.git.InsideWorkTree(ctx, s.workdir) {
			return nil
		}
		if err := os.RemoveAll(s.workdir); err != nil {
			return &Error{Op: OpInitialize, Store: s.name, Err: err}
		}
		return s.cloneAndConfigure(ctx)
	case errors.Is(err, fs.ErrNotExist):
		return s.cloneAndConfigure(ctx)
	default:
		return &Error{Op: OpInitialize, Store: s.name, Err: err}
	}
}

// cloneAndConfigure creates the working directory, clones the remote into
// it and sets the store-scoped commit identity. Caller holds the mutex.
func (s *Store) cloneAndConfigure(ctx context.Context) error {
	if err := os.MkdirAll(s.workdir, 0o755); err != nil {
		return &Error{Op: OpInitialize, Store: s.name, Err: err}
	}
	err := s.git.Clone(ctx, git.CloneOptions{
		URL:         s.remoteURL,
		Dir:         s.workdir,
		Branch:      s.branch,
		ExtraHeader: s.auth.Header(),
		InsecureTLS: s.auth.Insecure,
	})
	if err != nil {
		return &Error{Op: OpClone, Store: s.name, Err: err}
	}
	if err := s.git.SetConfig(ctx, s.workdir, "user.name", s.author.Name); err != nil {
		return &Error{Op: OpInitialize, Store: s.name, Err: err}
	}
	if err := s.git.SetConfig(ctx, s.workdir, "user.email", s.author.Email); err != nil {
		return &Error{Op: OpInitialize, Store: s.name, Err: err}
	}
	return nil
}

// Pull fetches and integrates remote changes, via rebase when requested.
func (s *Store) Pull(ctx context.Context, rebase bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.git.Pull(ctx, s.workdir, rebase); err != nil {
		return &Error{Op: OpPull, Store: s.name, Err: err}
	}
	return nil
}

// Push publishes local commits to the remote.
func (s *Store) Push(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.git.Push(ctx, s.workdir); err != nil {
		return &Error{Op: OpPush, Store: s.name, Err: err}
	}
	return nil
}

// Commit stages all working-directory changes and commits them with the
// given message under the configured author identity.
func (s *Store) Commit(ctx context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.git.CommitAll(ctx, s.workdir, message); err != nil {
		return &Error{Op: OpCommit, Store: s.name, Err: err}
	}
	return nil
}

// Clean discards all uncommitted state: tracked files reset to the last
// commit, the working tree restored, then untracked files and directories
// removed including those matched by ignore rules.
func (s *Store) Clean(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.git.ResetHard(ctx, s.workdir); err != nil {
		return &Error{Op: OpClean, Store: s.name, Err: err}
	}
	if err := s.git.CheckoutAll(ctx, s.workdir); err != nil {
		return &Error{Op: OpClean, Store: s.name, Err: err}
	}
	if err := s.git.CleanForce(ctx, s.workdir); err != nil {
		return &Error{Op: OpClean, Store: s.name, Err: err}
	}
	return nil
}

// Document returns a document handle for the relative path. The handle is
// valid only as long as the store's working directory exists.
func (s *Store) Document(rel string) *document.Document {
	return document.New(s.workdir, rel)
}

// Collection returns a scan handle over every document in the store.
func (s *Store) Collection() *document.Collection {
	return document.NewCollection(s.workdir)
}

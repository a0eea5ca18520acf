package store

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_Header(t *testing.T) {
	tests := []struct {
		name string
		auth Auth
		want string
	}{
		{"none", Auth{}, ""},
		{"token", Auth{Token: "abc123"}, "Authorization: Bearer abc123"},
		{"basic", Auth{Username: "user", Password: "pass"}, "Authorization: Basic dXNlcjpwYXNz"},
		{"token wins", Auth{Token: "t", Username: "u", Password: "p"}, "Authorization: Bearer t"},
		{"username alone is not basic", Auth{Username: "u"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.auth.Header())
		})
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func newRemote(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init", "--initial-branch", "main")
	runGit(t, dir, "config", "user.name", "test")
	runGit(t, dir, "config", "user.email", "test@localhost")
	runGit(t, dir, "config", "receive.denyCurrentBranch", "updateInstead")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seed.json"), []byte(`{"seed":true}`), 0o644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "seed")
	return dir
}

func newStore(t *testing.T, remote string) *Store {
	t.Helper()
	return New(Config{
		Name:      "test",
		RemoteURL: remote,
		Workdir:   filepath.Join(t.TempDir(), "work"),
		Author:    Author{Name: "gitdocs", Email: "gitdocs@localhost"},
	})
}

func TestStore_Initialize(t *testing.T) {
	requireGit(t)
	s := newStore(t, newRemote(t))

	require.NoError(t, s.Initialize(context.Background()))

	assert.FileExists(t, filepath.Join(s.Workdir(), "seed.json"))
	out, err := exec.Command("git", "-C", s.Workdir(), "config", "user.email").Output()
	require.NoError(t, err)
	assert.Equal(t, "gitdocs@localhost\n", string(out))
}

func TestStore_InitializeIdempotent(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	s := newStore(t, newRemote(t))
	require.NoError(t, s.Initialize(ctx))

	// Leave a marker; a second Initialize must not reclone over a valid
	// checkout.
	marker := filepath.Join(s.Workdir(), "marker.txt")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))

	require.NoError(t, s.Initialize(ctx))
	assert.FileExists(t, marker)
}

func TestStore_InitializeReclonesInvalidDir(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	s := newStore(t, newRemote(t))

	// A directory that is not a git checkout gets destroyed and recloned.
	require.NoError(t, os.MkdirAll(s.Workdir(), 0o755))
	stale := filepath.Join(s.Workdir(), "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))

	require.NoError(t, s.Initialize(ctx))

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(s.Workdir(), "seed.json"))
}

func TestStore_InitializeCloneFailure(t *testing.T) {
	requireGit(t)
	s := newStore(t, filepath.Join(t.TempDir(), "no-such-remote"))

	err := s.Initialize(context.Background())

	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, OpClone, storeErr.Op)
	assert.Equal(t, "test", storeErr.Store)
}

func TestStore_CommitPush(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	remote := newRemote(t)
	s := newStore(t, remote)
	require.NoError(t, s.Initialize(ctx))

	// A document created through the engine is untracked until Commit
	// stages it; no separate add step is needed.
	require.NoError(t, s.Document("items/new.json").Write(map[string]any{"fresh": true}))
	require.NoError(t, s.Commit(ctx, "add document"))
	require.NoError(t, s.Push(ctx))

	// A second store sees the pushed document after pulling.
	other := newStore(t, remote)
	require.NoError(t, other.Initialize(ctx))
	assert.True(t, other.Document("items/new.json").Exists())
}

func TestStore_Pull(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	remote := newRemote(t)
	s := newStore(t, remote)
	require.NoError(t, s.Initialize(ctx))

	// Advance the remote behind the store's back.
	require.NoError(t, os.WriteFile(filepath.Join(remote, "late.json"), []byte(`{}`), 0o644))
	runGit(t, remote, "add", ".")
	runGit(t, remote, "commit", "-m", "late")

	require.NoError(t, s.Pull(ctx, true))
	assert.True(t, s.Document("late.json").Exists())
}

func TestStore_Clean(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	s := newStore(t, newRemote(t))
	require.NoError(t, s.Initialize(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(s.Workdir(), "seed.json"), []byte(`{"dirty":1}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Workdir(), "untracked.json"), []byte(`{}`), 0o644))

	require.NoError(t, s.Clean(ctx))

	data, err := os.ReadFile(filepath.Join(s.Workdir(), "seed.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"seed":true}`, string(data))
	assert.NoFileExists(t, filepath.Join(s.Workdir(), "untracked.json"))
}

func TestStore_DocumentAndCollection(t *testing.T) {
	s := New(Config{Name: "n", Workdir: "/tmp/wd"})

	assert.Equal(t, "a/b.json", s.Document("a/b.json").Path())
	assert.NotNil(t, s.Collection())
}

func TestError_Message(t *testing.T) {
	err := &Error{Op: OpPull, Store: "main", Err: errors.New("offline")}
	assert.Equal(t, "store main: failed to pull repo: offline", err.Error())
	assert.ErrorContains(t, err, "offline")
}

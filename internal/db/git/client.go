// Package git wraps the git executable as the version-control backend.
// Command semantics are git's own; this layer only builds invocations,
// bounds them with a timeout and maps failures to typed errors.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = 60 * time.Second

// Client invokes the git binary. The zero timeout means DefaultTimeout.
type Client struct {
	timeout time.Duration
}

// New creates a git client with the given per-invocation timeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{timeout: timeout}
}

// CloneOptions configure a clone invocation.
type CloneOptions struct {
	URL    string
	Dir    string
	Branch string
	// ExtraHeader is an http.extraHeader config value, typically an
	// Authorization header.
	ExtraHeader string
	InsecureTLS bool
}

// Clone clones a remote repository into the target directory.
func (c *Client) Clone(ctx context.Context, opts CloneOptions) error {
	args := []string{"clone"}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	if opts.ExtraHeader != "" {
		args = append(args, "-c", "http.extraHeader="+opts.ExtraHeader)
	}
	if opts.InsecureTLS {
		args = append(args, "-c", "http.sslVerify=false")
	}
	args = append(args, opts.URL, opts.Dir)
	_, err := c.run(ctx, "", OpClone, args...)
	return err
}

// SetConfig sets a repository-local configuration entry.
func (c *Client) SetConfig(ctx context.Context, dir, key, val string) error {
	_, err := c.run(ctx, dir, OpConfig, "config", key, val)
	return err
}

// InsideWorkTree probes whether dir is inside a git work tree. Any failure,
// including a subprocess error, reports false.
func (c *Client) InsideWorkTree(ctx context.Context, dir string) bool {
	out, err := c.run(ctx, dir, OpRevParse, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.Contains(out, "true")
}

// Pull fetches and integrates remote changes, optionally via rebase.
func (c *Client) Pull(ctx context.Context, dir string, rebase bool) error {
	args := []string{"pull"}
	if rebase {
		args = append(args, "--rebase")
	}
	_, err := c.run(ctx, dir, OpPull, args...)
	return err
}

// Push publishes local commits to the remote.
func (c *Client) Push(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, OpPush, "push")
	return err
}

// CommitAll stages every working-directory change, untracked files
// included, and commits the result with the given message.
func (c *Client) CommitAll(ctx context.Context, dir, message string) error {
	if _, err := c.run(ctx, dir, OpAdd, "add", "-A"); err != nil {
		return err
	}
	_, err := c.run(ctx, dir, OpCommit, "commit", "--message", message)
	return err
}

// ResetHard resets tracked files to the last commit.
func (c *Client) ResetHard(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, OpReset, "reset", "--hard")
	return err
}

// CheckoutAll restores the working tree from the index.
func (c *Client) CheckoutAll(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, OpCheckout, "checkout", "--", ".")
	return err
}

// CleanForce removes all untracked files and directories, including those
// matched by ignore rules.
func (c *Client) CleanForce(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, OpClean, "clean", "-fdx")
	return err
}

// run executes one git invocation under the client timeout. Stdout and
// stderr are combined so failures carry git's own diagnostics.
func (c *Client) run(ctx context.Context, dir, op string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", &Error{Op: op, Err: fmt.Errorf("%w after %s", ErrTimeout, c.timeout)}
		}
		msg := strings.TrimSpace(out.String())
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", &Error{Op: op, Err: err}
	}
	return out.String(), nil
}

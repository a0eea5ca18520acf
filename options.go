package gitdocs

import (
	"time"

	"go.uber.org/zap"

	repostore "github.com/kailas-cloud/gitdocs/internal/repository/store"
)

// Option configures a Store.
type Option func(*storeConfig)

type storeConfig struct {
	branch  string
	auth    repostore.Auth
	author  repostore.Author
	timeout time.Duration
	logger  *zap.Logger
}

// WithBranch clones a specific branch instead of the remote default.
func WithBranch(branch string) Option {
	return func(c *storeConfig) {
		c.branch = branch
	}
}

// WithBasicAuth authenticates against the remote with a username and
// password, sent as a Basic Authorization header.
func WithBasicAuth(username, password string) Option {
	return func(c *storeConfig) {
		c.auth.Username = username
		c.auth.Password = password
	}
}

// WithTokenAuth authenticates against the remote with a bearer token. It
// takes precedence over basic auth.
func WithTokenAuth(token string) Option {
	return func(c *storeConfig) {
		c.auth.Token = token
	}
}

// WithInsecureTLS disables TLS certificate verification for the remote.
func WithInsecureTLS() Option {
	return func(c *storeConfig) {
		c.auth.Insecure = true
	}
}

// WithAuthor sets the store-scoped commit identity. Defaults to
// "gitdocs" <gitdocs@localhost>.
func WithAuthor(name, email string) Option {
	return func(c *storeConfig) {
		c.author = repostore.Author{Name: name, Email: email}
	}
}

// WithTimeout bounds each git invocation. Defaults to 60 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *storeConfig) {
		c.timeout = d
	}
}

// WithLogger attaches a zap logger to the store's services. Logging is off
// by default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *storeConfig) {
		c.logger = logger
	}
}

package store

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/gitdocs/internal/metrics"
)

// Service orchestrates store lifecycle operations with logging and metrics.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a store service. A nil logger disables logging.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Initialize brings the working directory to a valid checkout.
func (s *Service) Initialize(ctx context.Context) error {
	return s.observe("initialize", func() error { return s.repo.Initialize(ctx) })
}

// Pull fetches and integrates remote changes.
func (s *Service) Pull(ctx context.Context, rebase bool) error {
	return s.observe("pull", func() error { return s.repo.Pull(ctx, rebase) })
}

// Push publishes local commits.
func (s *Service) Push(ctx context.Context) error {
	return s.observe("push", func() error { return s.repo.Push(ctx) })
}

// Commit stages and commits all working-directory changes.
func (s *Service) Commit(ctx context.Context, message string) error {
	return s.observe("commit", func() error { return s.repo.Commit(ctx, message) })
}

// Clean discards all uncommitted state.
func (s *Service) Clean(ctx context.Context) error {
	return s.observe("clean", func() error { return s.repo.Clean(ctx) })
}

// Sync integrates remote changes via rebase, commits local changes with
// the given message and publishes the result. A commit that finds nothing
// to commit is treated as a clean tree, not a failure.
func (s *Service) Sync(ctx context.Context, message string) error {
	if err := s.Pull(ctx, true); err != nil {
		return err
	}
	if err := s.Commit(ctx, message); err != nil {
		if !isNothingToCommit(err) {
			return err
		}
		s.logger.Debug("Nothing to commit", zap.String("store", s.repo.Name()))
	}
	return s.Push(ctx)
}

func (s *Service) observe(op string, fn func() error) error {
	start := time.Now()
	err := fn()
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		s.logger.Error("Store operation failed",
			zap.String("store", s.repo.Name()),
			zap.String("op", op),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
	} else {
		s.logger.Info("Store operation",
			zap.String("store", s.repo.Name()),
			zap.String("op", op),
			zap.Duration("duration", duration),
		)
	}

	metrics.StoreOperationsTotal.WithLabelValues(s.repo.Name(), op, status).Inc()
	metrics.StoreOperationDuration.WithLabelValues(s.repo.Name(), op).Observe(duration.Seconds())
	return err
}

// isNothingToCommit matches git's exit on a clean working tree.
func isNothingToCommit(err error) bool {
	return err != nil && strings.Contains(err.Error(), "nothing to commit")
}

package document

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/gitdocs/internal/domain/query"
	"github.com/kailas-cloud/gitdocs/internal/metrics"
)

// ErrInvalidPath signals a document path that does not stay inside the
// store's working directory.
var ErrInvalidPath = errors.New("invalid document path")

// Service handles document operations with path validation, logging and
// metrics on top of the raw engine.
type Service struct {
	docs   Opener
	finder Finder
	logger *zap.Logger
}

// New creates a document service. A nil logger disables logging.
func New(docs Opener, finder Finder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{docs: docs, finder: finder, logger: logger}
}

// Get reads a document's full JSON content.
func (s *Service) Get(rel string) (any, error) {
	rel, err := validateRel(rel)
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.Document(rel).Read()
	s.observe("read", rel, err)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Put replaces a document's whole content.
func (s *Service) Put(rel string, data any) error {
	rel, err := validateRel(rel)
	if err != nil {
		return err
	}
	err = s.docs.Document(rel).Write(data)
	s.observe("write", rel, err)
	return err
}

// SetField applies a dotted-path upsert to a document.
func (s *Service) SetField(rel, fieldPath string, val any) error {
	rel, err := validateRel(rel)
	if err != nil {
		return err
	}
	err = s.docs.Document(rel).Update(fieldPath, val)
	s.observe("update", rel, err)
	return err
}

// UnsetField removes the leaf at a dotted path from a document. An
// untraversable path is a no-op, not an error.
func (s *Service) UnsetField(rel, fieldPath string) error {
	rel, err := validateRel(rel)
	if err != nil {
		return err
	}
	err = s.docs.Document(rel).Delete(fieldPath)
	s.observe("delete", rel, err)
	return err
}

// Exists reports whether a document's file is present. Invalid paths and
// I/O failures collapse to false.
func (s *Service) Exists(rel string) bool {
	rel, err := validateRel(rel)
	if err != nil {
		return false
	}
	return s.docs.Document(rel).Exists()
}

// CopyFrom copies the file at source into the document's location and
// returns the bytes copied.
func (s *Service) CopyFrom(rel, source string) (int64, error) {
	rel, err := validateRel(rel)
	if err != nil {
		return 0, err
	}
	n, err := s.docs.Document(rel).Copy(source)
	s.observe("copy", rel, err)
	return n, err
}

// Remove deletes a document's file.
func (s *Service) Remove(rel string) error {
	rel, err := validateRel(rel)
	if err != nil {
		return err
	}
	err = s.docs.Document(rel).Remove()
	s.observe("remove", rel, err)
	return err
}

// FindOne returns the first document in the store matching the query.
func (s *Service) FindOne(q query.Expr) (any, error) {
	doc, err := s.finder.FindOne(q)
	s.observe("find_one", q.String(), err)
	return doc, err
}

// FindMany returns every document in the store matching the query.
func (s *Service) FindMany(q query.Expr) ([]any, error) {
	docs, err := s.finder.FindMany(q)
	s.observe("find_many", q.String(), err)
	return docs, err
}

func (s *Service) observe(op, subject string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		s.logger.Warn("Document operation failed",
			zap.String("op", op),
			zap.String("document", subject),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("Document operation",
			zap.String("op", op),
			zap.String("document", subject),
		)
	}
	metrics.DocumentOperationsTotal.WithLabelValues(op, status).Inc()
}

// validateRel normalizes a document path and rejects anything that could
// escape the store root.
func validateRel(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if strings.HasPrefix(rel, "/") {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, rel)
	}
	clean := path.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q escapes the store", ErrInvalidPath, rel)
	}
	return clean, nil
}

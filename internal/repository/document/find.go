package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/gitdocs/internal/domain/query"
)

// Collection scans every document under a store root. Field names in the
// query resolve against each document's JSON content as dotted paths.
type Collection struct {
	root string
}

// NewCollection creates a collection over the given store root.
func NewCollection(root string) *Collection {
	return &Collection{root: root}
}

// FindMany parses every file under the root and returns those whose
// content satisfies the query, in lexicographic path order. The .git
// directory is skipped, as are files that are not valid JSON; a store may
// carry non-document files.
func (c *Collection) FindMany(q query.Expr) ([]any, error) {
	var out []any
	err := c.scan(q, func(doc any) bool {
		out = append(out, doc)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindOne returns the first matching document in scan order. When nothing
// matches it fails with a not-found error.
func (c *Collection) FindOne(q query.Expr) (any, error) {
	var found any
	ok := false
	err := c.scan(q, func(doc any) bool {
		found = doc
		ok = true
		return false
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &Error{Kind: KindNotFound, Path: c.root, Err: errors.New("no document matches query")}
	}
	return found, nil
}

// scan walks the root and feeds each matching document to visit until
// visit returns false.
func (c *Collection) scan(q query.Expr, visit func(doc any) bool) error {
	stop := errors.New("stop")
	err := filepath.WalkDir(c.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		doc, err := decode(data)
		if err != nil {
			return nil
		}
		if !q.EvaluateWith(query.DocResolver(doc)) {
			return nil
		}
		if !visit(doc) {
			return stop
		}
		return nil
	})
	if err != nil && !errors.Is(err, stop) {
		return &Error{Kind: KindRead, Path: c.root, Err: err}
	}
	return nil
}

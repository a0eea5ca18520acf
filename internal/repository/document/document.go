// Package document implements the per-file JSON document engine. One
// document is one JSON file at a relative path under a store root; no
// content is cached between calls.
package document

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/gitdocs/internal/domain/jsonpath"
	"github.com/kailas-cloud/gitdocs/internal/domain/query"
)

// Document is a transient view over one JSON file. It holds no state beyond
// its location; every operation re-reads or re-writes the file.
type Document struct {
	root string
	rel  string
	path string
}

// New creates a document handle for the file at rel under root. The handle
// does not touch the filesystem.
func New(root, rel string) *Document {
	return &Document{
		root: root,
		rel:  rel,
		path: filepath.Join(root, filepath.FromSlash(rel)),
	}
}

// Path returns the document's relative path within the store.
func (d *Document) Path() string { return d.rel }

// Read parses the file's full JSON content. Numbers decode as json.Number
// so integer values keep their exact classification.
func (d *Document) Read() (any, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, &Error{Kind: KindRead, Path: d.rel, Err: err}
	}
	v, err := decode(data)
	if err != nil {
		return nil, &Error{Kind: KindRead, Path: d.rel, Err: err}
	}
	return v, nil
}

// Write serializes data and replaces the file's whole content. Parent
// directories are created as needed.
func (d *Document) Write(data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return &Error{Kind: KindWrite, Path: d.rel, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return &Error{Kind: KindCreate, Path: d.rel, Err: err}
	}
	if err := os.WriteFile(d.path, raw, 0o644); err != nil {
		return &Error{Kind: KindWrite, Path: d.rel, Err: err}
	}
	return nil
}

// Update applies a dotted-path upsert to the document and writes the
// result back. Read or write failures surface as update errors wrapping
// the cause.
func (d *Document) Update(path string, val any) error {
	doc, err := d.Read()
	if err != nil {
		return &Error{Kind: KindUpdate, Path: d.rel, Err: err}
	}
	if err := d.Write(jsonpath.Set(doc, path, val)); err != nil {
		return &Error{Kind: KindUpdate, Path: d.rel, Err: err}
	}
	return nil
}

// Delete removes the leaf at a dotted path and writes the result back. An
// untraversable path leaves the document unchanged; the write still
// happens.
func (d *Document) Delete(path string) error {
	doc, err := d.Read()
	if err != nil {
		return &Error{Kind: KindDelete, Path: d.rel, Err: err}
	}
	if err := d.Write(jsonpath.Delete(doc, path)); err != nil {
		return &Error{Kind: KindDelete, Path: d.rel, Err: err}
	}
	return nil
}

// Exists reports whether the file is present on disk. I/O failures
// collapse to false.
func (d *Document) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// Copy copies bytes from the file at source into this document's location
// and returns the count copied. The source path is used verbatim.
func (d *Document) Copy(source string) (int64, error) {
	src, err := os.Open(source)
	if err != nil {
		return 0, &Error{Kind: KindCopy, Path: d.rel, Err: err}
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return 0, &Error{Kind: KindCopy, Path: d.rel, Err: err}
	}
	dst, err := os.Create(d.path)
	if err != nil {
		return 0, &Error{Kind: KindCopy, Path: d.rel, Err: err}
	}
	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, &Error{Kind: KindCopy, Path: d.rel, Err: err}
	}
	return n, nil
}

// Remove deletes the file.
func (d *Document) Remove() error {
	if err := os.Remove(d.path); err != nil {
		return &Error{Kind: KindRemove, Path: d.rel, Err: err}
	}
	return nil
}

// FindOne returns the first document under the store root whose content
// satisfies the query. See Collection.FindOne.
func (d *Document) FindOne(q query.Expr) (any, error) {
	return NewCollection(d.root).FindOne(q)
}

// FindMany returns every document under the store root whose content
// satisfies the query. See Collection.FindMany.
func (d *Document) FindMany(q query.Expr) ([]any, error) {
	return NewCollection(d.root).FindMany(q)
}

func decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

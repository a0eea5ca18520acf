package document

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDocument_WriteRead(t *testing.T) {
	root := t.TempDir()
	doc := New(root, "items/first.json")

	in := map[string]any{"name": "alpha", "count": json.Number("3")}
	if err := doc.Write(in); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	got, err := doc.Read()
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]any{"name": "alpha", "count": json.Number("3")}) {
		t.Errorf("Read() = %#v", got)
	}
}

func TestDocument_WriteCreatesParents(t *testing.T) {
	root := t.TempDir()
	doc := New(root, "deep/nested/dir/doc.json")

	if err := doc.Write(map[string]any{"ok": true}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "deep", "nested", "dir", "doc.json")); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestDocument_ReadMissing(t *testing.T) {
	doc := New(t.TempDir(), "absent.json")

	_, err := doc.Read()
	if err == nil {
		t.Fatal("Read() of a missing file succeeded")
	}
	var docErr *Error
	if !errors.As(err, &docErr) || docErr.Kind != KindRead {
		t.Errorf("err = %v, want read error", err)
	}
	if docErr.Path != "absent.json" {
		t.Errorf("Path = %q, want %q", docErr.Path, "absent.json")
	}
}

func TestDocument_ReadInvalidJSON(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(root, "bad.json").Read()
	var docErr *Error
	if !errors.As(err, &docErr) || docErr.Kind != KindRead {
		t.Errorf("err = %v, want read error", err)
	}
}

func TestDocument_Update(t *testing.T) {
	root := t.TempDir()
	doc := New(root, "doc.json")
	if err := doc.Write(map[string]any{"a": "old"}); err != nil {
		t.Fatal(err)
	}

	if err := doc.Update("meta.count", 5); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	got, err := doc.Read()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": "old", "meta": map[string]any{"count": json.Number("5")}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %#v, want %#v", got, want)
	}
}

func TestDocument_UpdateMissingFile(t *testing.T) {
	err := New(t.TempDir(), "absent.json").Update("a", 1)

	var docErr *Error
	if !errors.As(err, &docErr) || docErr.Kind != KindUpdate {
		t.Fatalf("err = %v, want update error", err)
	}
	// The cause keeps its own read classification.
	var cause *Error
	if !errors.As(docErr.Err, &cause) || cause.Kind != KindRead {
		t.Errorf("cause = %v, want read error", docErr.Err)
	}
}

func TestDocument_Delete(t *testing.T) {
	root := t.TempDir()
	doc := New(root, "doc.json")
	if err := doc.Write(map[string]any{"a": map[string]any{"b": 1, "c": 2}}); err != nil {
		t.Fatal(err)
	}

	if err := doc.Delete("a.b"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	got, _ := doc.Read()
	want := map[string]any{"a": map[string]any{"c": json.Number("2")}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %#v, want %#v", got, want)
	}
}

func TestDocument_DeleteMissingPath(t *testing.T) {
	root := t.TempDir()
	doc := New(root, "doc.json")
	if err := doc.Write(map[string]any{"a": 1}); err != nil {
		t.Fatal(err)
	}

	if err := doc.Delete("b.c"); err != nil {
		t.Fatalf("Delete() of an absent path failed: %v", err)
	}

	got, _ := doc.Read()
	if !reflect.DeepEqual(got, map[string]any{"a": json.Number("1")}) {
		t.Errorf("document changed: %#v", got)
	}
}

func TestDocument_Exists(t *testing.T) {
	root := t.TempDir()
	doc := New(root, "doc.json")

	if doc.Exists() {
		t.Error("Exists() = true before write")
	}
	if err := doc.Write(map[string]any{}); err != nil {
		t.Fatal(err)
	}
	if !doc.Exists() {
		t.Error("Exists() = false after write")
	}
}

func TestDocument_Copy(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "source.json")
	content := []byte(`{"copied":true}`)
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	doc := New(root, "dst/copy.json")
	n, err := doc.Copy(src)
	if err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}
	if n != int64(len(content)) {
		t.Errorf("Copy() = %d bytes, want %d", n, len(content))
	}
	got, err := doc.Read()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, map[string]any{"copied": true}) {
		t.Errorf("Read() = %#v", got)
	}
}

func TestDocument_CopyMissingSource(t *testing.T) {
	_, err := New(t.TempDir(), "dst.json").Copy("/nonexistent/source.json")

	var docErr *Error
	if !errors.As(err, &docErr) || docErr.Kind != KindCopy {
		t.Errorf("err = %v, want copy error", err)
	}
}

func TestDocument_Remove(t *testing.T) {
	root := t.TempDir()
	doc := New(root, "doc.json")
	if err := doc.Write(map[string]any{}); err != nil {
		t.Fatal(err)
	}

	if err := doc.Remove(); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if doc.Exists() {
		t.Error("Exists() = true after remove")
	}

	err := doc.Remove()
	var docErr *Error
	if !errors.As(err, &docErr) || docErr.Kind != KindRemove {
		t.Errorf("second Remove() err = %v, want remove error", err)
	}
}

func TestErrorMessages(t *testing.T) {
	err := &Error{Kind: KindRead, Path: "a/b.json", Err: errors.New("boom")}
	want := "document a/b.json: read error: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

package fileutil

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
)

func TestAtomicWriteFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/out", 0o755); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(fsys, "/out/plan.md", []byte("first\n"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}
	if err := AtomicWriteFile(fsys, "/out/plan.md", []byte("second\n"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() overwrite error = %v", err)
	}

	got, err := afero.ReadFile(fsys, "/out/plan.md")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "second\n" {
		t.Errorf("content = %q, want %q", got, "second\n")
	}

	entries, err := afero.ReadDir(fsys, "/out")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestWriteFileAll_CreatesParents(t *testing.T) {
	fsys := afero.NewMemMapFs()

	if err := WriteFileAll(fsys, "/out/nested/dir/cmd.toml", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFileAll() error = %v", err)
	}
	if ok, _ := afero.Exists(fsys, "/out/nested/dir/cmd.toml"); !ok {
		t.Error("expected file to exist")
	}
}

func TestReadFileWithLimit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	small := []byte("hello")
	large := bytes.Repeat([]byte("a"), MaxFileSize+1)
	_ = afero.WriteFile(fsys, "/small.md", small, 0o644)
	_ = afero.WriteFile(fsys, "/large.md", large, 0o644)

	got, err := ReadFileWithLimit(fsys, "/small.md")
	if err != nil {
		t.Fatalf("ReadFileWithLimit() error = %v", err)
	}
	if !bytes.Equal(got, small) {
		t.Errorf("content = %q, want %q", got, small)
	}

	if _, err := ReadFileWithLimit(fsys, "/large.md"); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}

	if _, err := ReadFileWithLimit(fsys, "/missing.md"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

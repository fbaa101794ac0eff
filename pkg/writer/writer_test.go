package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	t.Run("default output directory", func(t *testing.T) {
		w, err := New()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.OutputDir() != "generated_terraform" {
			t.Errorf("OutputDir() = %q, want %q", w.OutputDir(), "generated_terraform")
		}
	})

	t.Run("empty output directory is invalid", func(t *testing.T) {
		_, err := New(WithOutputDir(""))
		if err == nil {
			t.Fatal("expected error but got none")
		}
	})
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := New(WithOutputDir(dir))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files := map[string][]byte{
		"main.tf":                 []byte("# root\n"),
		"modules/compute/main.tf": []byte("# compute\n"),
	}

	if err := w.Write(files); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for path, want := range files {
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(path)))
		if err != nil {
			t.Fatalf("failed to read back %q: %v", path, err)
		}
		if diff := cmp.Diff(string(want), string(got)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestWriteIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	w, err := New(WithOutputDir(dir))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files := map[string][]byte{
		"modules/storage/main.tf": []byte("# first run\n"),
	}
	if err := w.Write(files); err != nil {
		t.Fatalf("first run: unexpected error: %v", err)
	}

	// A second run against the already-populated directory must overwrite
	// without error.
	files["modules/storage/main.tf"] = []byte("# second run\n")
	if err := w.Write(files); err != nil {
		t.Fatalf("second run: unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "modules", "storage", "main.tf"))
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(got) != "# second run\n" {
		t.Errorf("file content = %q, want %q", got, "# second run\n")
	}
}

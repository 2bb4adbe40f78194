package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, path string) {
	t.Helper()
	writeFile(t, path, "")
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.xml.in"))
	touch(t, filepath.Join(root, "src", "z.hpp.in"))
	touch(t, filepath.Join(root, "a.hpp.in"))
	touch(t, filepath.Join(root, "deep", "er", "Info.plist.in"))
	touch(t, filepath.Join(root, "README.md.in"))
	touch(t, filepath.Join(root, "a.hpp"))
	touch(t, filepath.Join(root, ".git", "hooks", "x.hpp.in"))

	templates, err := Discover(context.Background(), root, DefaultSuffixes(), []string{".git"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	var got []string
	for _, tmpl := range templates {
		rel, err := filepath.Rel(root, tmpl.Path)
		if err != nil {
			t.Fatalf("Rel: %v", err)
		}
		got = append(got, filepath.ToSlash(rel))
		if tmpl.OutputPath != OutputPathFor(tmpl.Path) {
			t.Errorf("OutputPath = %q for %q", tmpl.OutputPath, tmpl.Path)
		}
	}

	want := []string{
		"a.hpp.in",
		"src/z.hpp.in",
		"deep/er/Info.plist.in",
		"b.xml.in",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverFirstSuffixWins(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.hpp.in"))

	templates, err := Discover(context.Background(), root, []string{".hpp.in", ".in"}, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates))
	}
	if templates[0].Suffix != ".hpp.in" {
		t.Errorf("Suffix = %q, want .hpp.in", templates[0].Suffix)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(context.Background(), filepath.Join(t.TempDir(), "nope"), DefaultSuffixes(), nil)
	var renderErr *RenderError
	if !errors.As(err, &renderErr) || renderErr.Type != DiscoverFailed {
		t.Errorf("expected DiscoverFailed, got %v", err)
	}
}

func TestDiscoverCancelled(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.hpp.in"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Discover(ctx, root, DefaultSuffixes(), nil); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestOutputPathFor(t *testing.T) {
	tests := map[string]string{
		"include/version.hpp.in":    "include/version.hpp",
		"Info.plist.in":             "Info.plist",
		"a.in.in":                   "a.in",
		filepath.Join("x", "y.xml"): filepath.Join("x", "y.xml"),
	}
	for in, want := range tests {
		if got := OutputPathFor(in); got != want {
			t.Errorf("OutputPathFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

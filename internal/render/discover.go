package render

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pqrs-org/verstamp/internal/debug"
)

// TemplateSuffix is stripped from a template path to form its output path.
const TemplateSuffix = ".in"

// DefaultSuffixes returns the recognized template suffixes in processing order.
func DefaultSuffixes() []string {
	return []string{".hpp.in", ".plist.in", ".xml.in"}
}

// Template is a discovered template file and the output it renders to.
type Template struct {
	// Path is the template file path.
	Path string
	// OutputPath is Path without the trailing ".in".
	OutputPath string
	// Suffix is the recognized suffix the template matched.
	Suffix string
}

// OutputPathFor strips the trailing ".in" from a template path.
func OutputPathFor(path string) string {
	return strings.TrimSuffix(path, TemplateSuffix)
}

// Discover walks root recursively and returns every file ending in one of
// suffixes. Results are grouped by suffix in the given order and sorted
// lexically within a group. Directories whose base name matches an exclude
// pattern are not descended into.
func Discover(ctx context.Context, root string, suffixes, exclude []string) ([]Template, error) {
	groups := make([][]Template, len(suffixes))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && isExcluded(d.Name(), exclude) {
				debug.Debug("[render] Skipping excluded directory: %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		for i, suffix := range suffixes {
			if strings.HasSuffix(d.Name(), suffix) {
				groups[i] = append(groups[i], Template{
					Path:       path,
					OutputPath: OutputPathFor(path),
					Suffix:     suffix,
				})
				break
			}
		}
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, newRenderError(DiscoverFailed, "failed to walk template tree", root, err)
	}

	var templates []Template
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool { return group[i].Path < group[j].Path })
		templates = append(templates, group...)
	}
	debug.Debug("[render] Discovered %d templates under %s", len(templates), root)
	return templates, nil
}

func isExcluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

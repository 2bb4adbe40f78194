// Package render substitutes version placeholders into template files and
// writes each rendered output only when its content changes.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pqrs-org/verstamp/internal/debug"
	"github.com/pqrs-org/verstamp/internal/descriptor"
)

// Options configures a Renderer.
type Options struct {
	// Suffixes are the template suffixes, in processing order.
	// Defaults to DefaultSuffixes().
	Suffixes []string

	// Exclude holds directory base-name patterns skipped during discovery.
	Exclude []string

	// Notify receives one "Update <path>" line per written output.
	// Nil discards notices.
	Notify io.Writer

	// Writer writes outputs. Defaults to a FileWriter.
	Writer Writer
}

// Renderer renders every template under a root directory.
type Renderer struct {
	suffixes []string
	exclude  []string
	notify   io.Writer
	writer   Writer
}

// Result summarizes a render pass.
type Result struct {
	// Templates lists every discovered template in processing order.
	Templates []Template
	// Updated lists the output paths that were written.
	Updated []string
	// Unchanged lists the output paths that already matched.
	Unchanged []string
}

// Status describes an output relative to its template.
type Status string

const (
	// StatusMissing means the output file does not exist and rendering creates it.
	StatusMissing Status = "missing"
	// StatusStale means the output exists but differs from the rendered template.
	StatusStale Status = "stale"
	// StatusUpToDate means the output matches the rendered template.
	StatusUpToDate Status = "up-to-date"
)

// Plan is the dry-run outcome for one template.
type Plan struct {
	Template Template
	Status   Status
	// Content is the content the output would have after rendering.
	Content []byte
}

// NewRenderer creates a Renderer, filling unset options with defaults.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		suffixes: opts.Suffixes,
		exclude:  opts.Exclude,
		notify:   opts.Notify,
		writer:   opts.Writer,
	}
	if len(r.suffixes) == 0 {
		r.suffixes = DefaultSuffixes()
	}
	if r.notify == nil {
		r.notify = io.Discard
	}
	if r.writer == nil {
		r.writer = NewFileWriter()
	}
	return r
}

// Render renders every template under root. The first error aborts the
// pass; outputs already written stay written.
func (r *Renderer) Render(ctx context.Context, root string, info *descriptor.VersionInfo) (*Result, error) {
	debug.DebugSection("[render] Render start")
	debug.DebugValue("[render] root", root)

	templates, err := Discover(ctx, root, r.suffixes, r.exclude)
	if err != nil {
		return nil, err
	}

	reps := info.Replacements()
	result := &Result{Templates: templates}

	for _, tmpl := range templates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rendered, err := r.renderFile(tmpl, reps)
		if err != nil {
			return result, err
		}
		if !rendered.dirty {
			debug.Debug("[render] Up to date: %s", tmpl.OutputPath)
			result.Unchanged = append(result.Unchanged, tmpl.OutputPath)
			continue
		}

		if err := r.writer.WriteFile(tmpl.OutputPath, rendered.content(), rendered.mode); err != nil {
			return result, err
		}
		fmt.Fprintf(r.notify, "Update %s\n", tmpl.OutputPath)
		result.Updated = append(result.Updated, tmpl.OutputPath)
	}

	debug.Debug("[render] Render complete: updated=%d, unchanged=%d",
		len(result.Updated), len(result.Unchanged))
	return result, nil
}

// Plan reports what Render would do without writing anything.
func (r *Renderer) Plan(ctx context.Context, root string, info *descriptor.VersionInfo) ([]Plan, error) {
	templates, err := Discover(ctx, root, r.suffixes, r.exclude)
	if err != nil {
		return nil, err
	}

	reps := info.Replacements()
	plans := make([]Plan, 0, len(templates))
	for _, tmpl := range templates {
		if err := ctx.Err(); err != nil {
			return plans, err
		}

		rendered, err := r.renderFile(tmpl, reps)
		if err != nil {
			return plans, err
		}

		status := StatusUpToDate
		switch {
		case rendered.dirty && !rendered.existed:
			status = StatusMissing
		case rendered.dirty:
			status = StatusStale
		}
		plans = append(plans, Plan{Template: tmpl, Status: status, Content: rendered.content()})
	}
	return plans, nil
}

type renderedFile struct {
	lines   []string
	dirty   bool
	existed bool
	mode    os.FileMode
}

func (f *renderedFile) content() []byte {
	return []byte(strings.Join(f.lines, ""))
}

// renderFile renders one template against its current output.
func (r *Renderer) renderFile(tmpl Template, reps []descriptor.Replacement) (*renderedFile, error) {
	data, err := os.ReadFile(tmpl.Path)
	if err != nil {
		return nil, newRenderError(ReadFailed, "failed to read template", tmpl.Path, err)
	}
	templateLines := SplitLines(string(data))

	existing := templateLines
	existed := false
	mode := defaultFileMode

	current, err := os.ReadFile(tmpl.OutputPath)
	switch {
	case err == nil:
		existing = SplitLines(string(current))
		existed = true
		if info, statErr := os.Stat(tmpl.OutputPath); statErr == nil {
			mode = info.Mode().Perm()
		}
	case errors.Is(err, os.ErrNotExist):
		// The template's own lines are the baseline, so a template without
		// placeholders produces no output.
	default:
		return nil, newRenderError(ReadFailed, "failed to read existing output", tmpl.OutputPath, err)
	}

	lines, dirty := mergeLines(templateLines, existing, reps)
	return &renderedFile{
		lines:   lines,
		dirty:   dirty,
		existed: existed,
		mode:    mode,
	}, nil
}

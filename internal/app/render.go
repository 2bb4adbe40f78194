package app

import (
	"context"
	"io"

	"github.com/pqrs-org/verstamp/internal/config"
	"github.com/pqrs-org/verstamp/internal/debug"
	"github.com/pqrs-org/verstamp/internal/descriptor"
	"github.com/pqrs-org/verstamp/internal/render"
)

// RenderOptions contains options for the render workflow.
type RenderOptions struct {
	// Root is the repository root holding the descriptor and templates.
	Root string
	// ConfigPath is an explicit configuration file (optional).
	ConfigPath string
	// DryRun plans the render without writing files.
	DryRun bool
	// Notify receives one line per written output (optional).
	Notify io.Writer
}

// RenderResult contains the results of the render workflow.
type RenderResult struct {
	// Source describes the descriptor that was used.
	Source string
	// Info is the loaded version information.
	Info *descriptor.VersionInfo
	// Updated lists written outputs (or outputs that would be written on dry run).
	Updated []string
	// Unchanged lists outputs that already matched.
	Unchanged []string
	// Plans holds per-template status on dry run.
	Plans []render.Plan
}

// Render loads the configuration and descriptor under opts.Root and renders
// every template.
func Render(ctx context.Context, opts RenderOptions) (*RenderResult, error) {
	debug.DebugSection("[app] Render workflow start")
	debug.DebugValue("[app] Root", opts.Root)
	debug.DebugValue("[app] DryRun", opts.DryRun)

	root := rootOrDefault(opts.Root)
	env, err := prepare(root, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	r := render.NewRenderer(render.Options{
		Suffixes: env.cfg.Suffixes,
		Exclude:  env.cfg.Exclude,
		Notify:   opts.Notify,
	})

	result := &RenderResult{Source: env.source.Name(), Info: env.info}

	if opts.DryRun {
		plans, err := r.Plan(ctx, root, env.info)
		if err != nil {
			return nil, NewAppError(RenderFailed, "failed to plan render", err)
		}
		result.Plans = plans
		for _, p := range plans {
			if p.Status == render.StatusUpToDate {
				result.Unchanged = append(result.Unchanged, p.Template.OutputPath)
			} else {
				result.Updated = append(result.Updated, p.Template.OutputPath)
			}
		}
		return result, nil
	}

	rendered, err := r.Render(ctx, root, env.info)
	if err != nil {
		return nil, NewAppError(RenderFailed, "failed to render templates", err)
	}
	result.Updated = rendered.Updated
	result.Unchanged = rendered.Unchanged
	return result, nil
}

// CheckOptions contains options for the check workflow.
type CheckOptions struct {
	// Root is the repository root holding the descriptor and templates.
	Root string
	// ConfigPath is an explicit configuration file (optional).
	ConfigPath string
}

// CheckResult reports whether every output is up to date.
type CheckResult struct {
	// Source describes the descriptor that was used.
	Source string
	// Plans holds per-template status.
	Plans []render.Plan
}

// Stale returns the plans whose output is missing or out of date.
func (r *CheckResult) Stale() []render.Plan {
	var stale []render.Plan
	for _, p := range r.Plans {
		if p.Status != render.StatusUpToDate {
			stale = append(stale, p)
		}
	}
	return stale
}

// Check plans a render and reports the status of every output.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	debug.DebugSection("[app] Check workflow start")

	root := rootOrDefault(opts.Root)
	env, err := prepare(root, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	r := render.NewRenderer(render.Options{
		Suffixes: env.cfg.Suffixes,
		Exclude:  env.cfg.Exclude,
	})
	plans, err := r.Plan(ctx, root, env.info)
	if err != nil {
		return nil, NewAppError(RenderFailed, "failed to check templates", err)
	}
	return &CheckResult{Source: env.source.Name(), Plans: plans}, nil
}

type environment struct {
	cfg    *config.Config
	source descriptor.Source
	info   *descriptor.VersionInfo
}

// prepare loads configuration and the version descriptor. Any failure
// aborts before templates are touched.
func prepare(root, configPath string) (*environment, error) {
	cfg, err := config.Resolve(root, configPath)
	if err != nil {
		return nil, NewAppError(ConfigLoadFailed, "failed to load configuration", err)
	}

	src, err := descriptor.Detect(root, cfg.DescriptorNames())
	if err != nil {
		return nil, NewAppError(DescriptorLoadFailed, "failed to find version descriptor", err)
	}
	info, err := src.Load()
	if err != nil {
		return nil, NewAppError(DescriptorLoadFailed, "failed to load version descriptor", err)
	}
	debug.DebugValue("[app] Descriptor", src.Name())

	return &environment{cfg: cfg, source: src, info: info}, nil
}

func rootOrDefault(root string) string {
	if root == "" {
		return "."
	}
	return root
}

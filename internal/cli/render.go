package cli

import (
	"fmt"

	"github.com/pqrs-org/verstamp/internal/app"
	"github.com/pqrs-org/verstamp/internal/render"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render version placeholders into templates",
	Long: `Render every template under the root with the values from the
version descriptor. An output is written only when at least one of its
lines changes, and each written output is reported as "Update <path>".

Examples:
  verstamp render
  verstamp render -C path/to/repo
  verstamp render --dry-run`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

// Render command flags
var (
	renderDryRun  bool
	renderVerbose bool
)

func init() {
	renderCmd.Flags().BoolVarP(&renderDryRun, FlagDryRun, "d", false, DescDryRun)
	renderCmd.Flags().BoolVarP(&renderVerbose, FlagVerbose, "v", false, DescVerbose)
}

func runRender(cmd *cobra.Command, args []string) error {
	result, err := app.Render(cmd.Context(), app.RenderOptions{
		Root:       globalRoot,
		ConfigPath: globalConfig,
		DryRun:     renderDryRun,
		Notify:     notifyWriter(),
	})
	if err != nil {
		return err
	}

	printVerbose(renderVerbose, fmt.Sprintf("Descriptor: %s", result.Source))
	printVerbose(renderVerbose, fmt.Sprintf("Package version: %s (%d)",
		result.Info.PackageVersion, result.Info.PackageVersionNumber()))
	printVerbose(renderVerbose, fmt.Sprintf("Driver version: %s (%d)",
		result.Info.DriverVersion, result.Info.DriverVersionNumber()))

	if renderDryRun {
		for _, p := range result.Plans {
			if p.Status == render.StatusUpToDate {
				printVerbose(renderVerbose, fmt.Sprintf("Up to date: %s", p.Template.OutputPath))
				continue
			}
			printInfo(fmt.Sprintf("Would update %s (%s)", p.Template.OutputPath, p.Status))
		}
		return nil
	}

	for _, path := range result.Unchanged {
		printVerbose(renderVerbose, fmt.Sprintf("Up to date: %s", path))
	}
	printVerbose(renderVerbose, fmt.Sprintf("%d updated, %d unchanged", len(result.Updated), len(result.Unchanged)))
	return nil
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pqrs-org/verstamp/internal/app"
	"github.com/pqrs-org/verstamp/internal/render"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report outputs that are missing or out of date",
	Long: `Render every template in memory and compare it with its output
without writing anything. Prints one row per template and exits non-zero
when any output is missing or stale, which makes it suitable for CI.

Examples:
  verstamp check
  verstamp check -C path/to/repo`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	result, err := app.Check(cmd.Context(), app.CheckOptions{
		Root:       globalRoot,
		ConfigPath: globalConfig,
	})
	if err != nil {
		return err
	}

	if len(result.Plans) == 0 {
		printWarning(fmt.Sprintf("No templates found under %s", globalRoot))
		return nil
	}

	if !globalQuiet {
		renderPlanTable(result.Plans)
	}

	stale := result.Stale()
	if len(stale) > 0 {
		return fmt.Errorf("%d of %d outputs are out of date; run 'verstamp render'", len(stale), len(result.Plans))
	}
	printSuccess(fmt.Sprintf("All %d outputs are up to date", len(result.Plans)))
	return nil
}

// renderPlanTable prints template status as a table.
func renderPlanTable(plans []render.Plan) {
	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.AppendHeader(table.Row{"Template", "Output", "Status"})
	for _, p := range plans {
		t.AppendRow(table.Row{
			relToRoot(p.Template.Path),
			relToRoot(p.Template.OutputPath),
			colorStatus(p.Status),
		})
	}
	if globalNoColor {
		t.SetStyle(table.StyleDefault)
	} else {
		t.SetStyle(table.StyleRounded)
	}
	t.Render()
}

func colorStatus(status render.Status) string {
	if globalNoColor {
		return string(status)
	}
	switch status {
	case render.StatusUpToDate:
		return colorGreen + string(status) + colorReset
	case render.StatusStale:
		return colorYellow + string(status) + colorReset
	default:
		return colorRed + string(status) + colorReset
	}
}

func relToRoot(path string) string {
	rel, err := filepath.Rel(globalRoot, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

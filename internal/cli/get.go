package cli

import (
	"fmt"

	"github.com/pqrs-org/verstamp/internal/app"
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a value from version.json",
	Long: `Print the value stored under key in version.json. The key defaults
to package_version. Exits non-zero when the file or key is missing.

Examples:
  verstamp get
  verstamp get driver_version
  verstamp get client_protocol_version`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	key := ""
	if len(args) > 0 {
		key = args[0]
	}

	value, err := app.Get(app.GetOptions{
		Root:       globalRoot,
		ConfigPath: globalConfig,
		Key:        key,
	})
	if err != nil {
		return err
	}

	// The value is the command's output, so --quiet does not suppress it.
	fmt.Fprintln(stdout, value)
	return nil
}

package cli

import (
	"fmt"

	"github.com/pqrs-org/verstamp/internal/build"
	"github.com/pqrs-org/verstamp/internal/debug"
	"github.com/spf13/cobra"
)

// Build metadata, set from main via ldflags.
var (
	Version   = build.Version()
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalRoot    string
	globalConfig  string
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "verstamp",
	Short: "Stamp version numbers into template files",
	Long: `verstamp reads the version descriptor at a repository root and
substitutes version placeholders into *.hpp.in, *.plist.in and *.xml.in
templates, writing each output (the template path without ".in") only
when its content changes.

Descriptor:
  version.json with package_version, driver_version and
  client_protocol_version, or the flat files "version" and
  "driver-version" holding one dotted version each.

Placeholders:
  @VERSION@                  package version
  @VERSION_NUMBER@           package version packed in base 100
  @DRIVER_VERSION@           driver version
  @DRIVER_VERSION_NUMBER@    driver version packed in base 100
  @CLIENT_PROTOCOL_VERSION@  client protocol version (version.json only)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
		return ValidateRoot(globalRoot)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	rootCmd.PersistentFlags().StringVarP(&globalRoot, FlagRoot, "C", ".", DescRoot)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

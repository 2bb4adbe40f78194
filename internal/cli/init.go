package cli

import (
	"fmt"

	"github.com/pqrs-org/verstamp/internal/app"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create version.json",
	Long: `Create version.json at the root. Values not given as flags are
asked for interactively.

Examples:
  verstamp init
  verstamp init --package-version 1.0.0 --driver-version 1.0.0 --client-protocol-version 1
  verstamp init --package-version 1.1.0 --driver-version 1.0.0 --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// Init command flags
var (
	initPackageVersion        string
	initDriverVersion         string
	initClientProtocolVersion string
	initForce                 bool
)

func init() {
	initCmd.Flags().StringVar(&initPackageVersion, "package-version", "", "Dotted package version")
	initCmd.Flags().StringVar(&initDriverVersion, "driver-version", "", "Dotted driver version")
	initCmd.Flags().StringVar(&initClientProtocolVersion, "client-protocol-version", "", "Integer client protocol version")
	initCmd.Flags().BoolVarP(&initForce, FlagForce, "f", false, DescForce)
}

func runInit(cmd *cobra.Command, args []string) error {
	values, err := promptForVersions(versionValues{
		PackageVersion:        initPackageVersion,
		DriverVersion:         initDriverVersion,
		ClientProtocolVersion: initClientProtocolVersion,
	})
	if err != nil {
		return err
	}

	path, err := app.InitDescriptor(app.InitOptions{
		Root:                  globalRoot,
		ConfigPath:            globalConfig,
		PackageVersion:        values.PackageVersion,
		DriverVersion:         values.DriverVersion,
		ClientProtocolVersion: values.ClientProtocolVersion,
		Force:                 initForce,
	})
	if err != nil {
		printErrorMsg(fmt.Sprintf("Init failed: %v", err))
		return err
	}

	printSuccess(fmt.Sprintf("Created %s", path))
	printInfo("Run 'verstamp render' to update the templates.")
	return nil
}

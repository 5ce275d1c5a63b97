package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem content is read from and exports are written to.
var appFs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "landing-cli",
	Short: "Gamma landing site CLI",
	Long: `landing-cli serves, exports and checks the Gamma restaurant landing site.

Available commands:
  serve       Run the HTTP server
  export      Render the site to a directory of static files
  validate    Check a content file without serving it
  defaults    Print the built-in content as YAML

Use "landing-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

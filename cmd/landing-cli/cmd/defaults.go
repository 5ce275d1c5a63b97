package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/gamma/internal/content"
)

var defaultsOut string

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in content as YAML",
	Long: `Defaults writes the built-in landing copy as a content YAML document,
a starting point for CONTENT_PATH. Without --out it is printed to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := content.Encode(content.Default())
		if err != nil {
			return err
		}

		if defaultsOut == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := appFs.MkdirAll(filepath.Dir(defaultsOut), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", defaultsOut, err)
		}
		if err := afero.WriteFile(appFs, defaultsOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", defaultsOut, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), defaultsOut)
		return nil
	},
}

func init() {
	defaultsCmd.Flags().StringVarP(&defaultsOut, "out", "o", "", "File to write instead of stdout")
	rootCmd.AddCommand(defaultsCmd)
}

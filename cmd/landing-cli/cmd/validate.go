package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/icons"
)

var validateContent string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a content file",
	Long:  `Validate parses a content file strictly and reports every field that breaks a rule.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateContent == "" {
			return errors.New("--content is required")
		}

		ok, err := afero.Exists(appFs, validateContent)
		if err != nil {
			return fmt.Errorf("stat %s: %w", validateContent, err)
		}
		if !ok {
			return fmt.Errorf("content file %s does not exist", validateContent)
		}

		if _, err := content.Load(appFs, validateContent); err != nil {
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				unknownIcon := false
				for _, f := range verr.Fields {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f.Field, f.Rule)
					unknownIcon = unknownIcon || f.Rule == "icon"
				}
				if unknownIcon {
					fmt.Fprintf(cmd.ErrOrStderr(), "known icons: %s\n", strings.Join(icons.Names(), ", "))
				}
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", validateContent)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateContent, "content", "", "Content YAML file to check")
	rootCmd.AddCommand(validateCmd)
}

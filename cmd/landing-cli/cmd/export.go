package cmd

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/export"
	"github.com/nfrund/gamma/internal/rendering"
	"github.com/nfrund/gamma/web"
)

var (
	exportOut          string
	exportContent      string
	exportBusinessName string
	exportBaseURL      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the landing site to static files",
	Long: `Export renders the landing page, one fragment per section and the static
assets into the output directory. The result can be served by any file server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := content.NewStore(appFs, exportContent,
			content.WithBusinessName(exportBusinessName),
			content.WithBaseURL(exportBaseURL),
		)
		if err != nil {
			return err
		}

		assets, err := fs.Sub(web.FS, "static")
		if err != nil {
			return fmt.Errorf("open embedded assets: %w", err)
		}

		site := export.NewSite(appFs, assets, rendering.NewUniversalRenderer())
		written, err := site.Write(cmd.Context(), exportOut, store.Page())
		if err != nil {
			return err
		}

		for _, p := range written {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "Directory to write the site to")
	exportCmd.Flags().StringVar(&exportContent, "content", "", "Content YAML file (built-in copy when empty)")
	exportCmd.Flags().StringVar(&exportBusinessName, "business-name", "", "Override the business name shown in the hero")
	exportCmd.Flags().StringVar(&exportBaseURL, "base-url", "", "Public site URL for canonical links")
	rootCmd.AddCommand(exportCmd)
}

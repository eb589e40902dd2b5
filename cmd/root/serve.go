package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"segue/pkg/server"
	"segue/pkg/site"
)

func newServeCmd() *cobra.Command {
	var (
		siteDir string
		addr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site directory over HTTP",
		Long:  "Start the development server for the site content and footer partials",
		Example: `  segue serve
  segue serve --listen 127.0.0.1:3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := site.Load(siteDir)
			if err != nil {
				return err
			}

			ln, err := server.Listen(cmd.Context(), addr)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s\n", siteDir, ln.Addr())
			return server.New(s).Serve(cmd.Context(), ln)
		},
	}

	cmd.Flags().StringVar(&siteDir, "site", "site", "Site content directory")
	cmd.Flags().StringVar(&addr, "listen", "127.0.0.1:8080", "Listen address")

	return cmd
}

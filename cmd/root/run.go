package root

import (
	"cmp"

	"github.com/spf13/cobra"

	"segue/pkg/prefs"
	"segue/pkg/site"
	"segue/pkg/tui"
	"segue/pkg/userconfig"
)

func newRunCmd() *cobra.Command {
	var (
		siteDir   string
		locale    string
		footerURL string
	)

	cmd := &cobra.Command{
		Use:   "run [page]",
		Short: "Render a site page",
		Long:  "Render a page of the site with theme and page transitions",
		Example: `  segue run
  segue run pricing
  segue run --locale ja index`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := "index"
			if len(args) == 1 {
				slug = args[0]
			}

			s, err := site.Load(siteDir)
			if err != nil {
				return err
			}

			cfg, err := userconfig.Load()
			if err != nil {
				return err
			}

			var settings userconfig.Settings
			if cfg.Settings != nil {
				settings = *cfg.Settings
			}

			// Each window gets its own transient channel.
			prefs.SessionID()

			return tui.Run(cmd.Context(), tui.Options{
				Site:      s,
				Store:     prefs.Open(),
				Config:    cfg,
				Slug:      slug,
				Locale:    cmp.Or(locale, settings.Locale),
				FooterURL: cmp.Or(footerURL, settings.FooterURL),
			})
		},
	}

	cmd.Flags().StringVar(&siteDir, "site", "site", "Site content directory")
	cmd.Flags().StringVar(&locale, "locale", "", "Content locale (default: from user config, then \"en\")")
	cmd.Flags().StringVar(&footerURL, "footer-url", "", "URL of the footer partial")

	return cmd
}

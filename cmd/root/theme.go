package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"segue/pkg/prefs"
	"segue/pkg/theme"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect or change the theme preference",
	}

	cmd.AddCommand(newThemeListCmd())
	cmd.AddCommand(newThemeSetCmd())

	return cmd
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List theme preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored, _ := prefs.Open().ReadPreference()
			active := theme.Normalize(stored)

			for _, pref := range []theme.Preference{theme.System, theme.Light, theme.Dark} {
				marker := " "
				if pref == active {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, pref)
			}
			return nil
		},
	}
}

func newThemeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <light|dark|system>",
		Short: "Set the theme preference",
		Long:  "Persist the theme preference. Running windows pick the change up through the preference watcher.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pref := theme.Normalize(args[0])
			if string(pref) != args[0] {
				return fmt.Errorf("unknown theme %q (valid: light, dark, system)", args[0])
			}

			if !prefs.Open().WritePreference(string(pref)) {
				return fmt.Errorf("could not persist theme preference")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", pref)
			return nil
		},
	}
}

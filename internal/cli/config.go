package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppgen-labs/cppgen/internal/branding"
	"github.com/cppgen-labs/cppgen/internal/config"
	"github.com/cppgen-labs/cppgen/internal/profile"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write cppgen settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys: author_name, company_name, banner_width, fill_order. Each can also be
set through the environment, e.g. ` + branding.EnvVar("AUTHOR_NAME") + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnown(args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the settings in effect for a file or folder",
	Long: `Show the effective settings after merging defaults, user settings, and
the nearest ` + profile.FileName + ` project profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		dir, err := dirOf(path)
		if err != nil {
			return err
		}
		s, err := settingsFor(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s\n", config.KeyAuthorName, s.Author)
		fmt.Fprintf(out, "%s: %s\n", config.KeyCompanyName, s.Company)
		fmt.Fprintf(out, "%s: %d\n", config.KeyBannerWidth, s.BannerWidth)
		fmt.Fprintf(out, "%s: %s\n", config.KeyFillOrder, s.FillOrder)
		return nil
	},
}

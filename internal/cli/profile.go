package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppgen-labs/cppgen/internal/profile"
)

func init() {
	profileCmd.AddCommand(profileValidateCmd)
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Work with project profiles",
	Long: `A project profile is a ` + profile.FileName + ` file that pins author, company,
and banner settings for every file below it.`,
}

var profileValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a project profile",
	Long: `Validate a project profile against the profile schema.

With no path, the profile governing the current folder is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			dir, err := dirOf(".")
			if err != nil {
				return err
			}
			found, ok := profile.Discover(appFS, dir)
			if !ok {
				return fmt.Errorf("no %s found above %s", profile.FileName, dir)
			}
			path = found
		}

		result, err := profile.ValidateFile(appFS, path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !result.Valid {
			for _, issue := range result.Issues {
				if issue.Path != "" {
					fmt.Fprintf(out, "  %s: %s\n", issue.Path, issue.Message)
				} else {
					fmt.Fprintf(out, "  %s\n", issue.Message)
				}
			}
			return fmt.Errorf("%w %s", profile.ErrInvalidProfile, path)
		}

		p, err := profile.Load(appFS, path)
		if err != nil {
			return err
		}
		if err := p.CheckVersion(buildVersion); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s is valid\n", path)
		return nil
	},
}

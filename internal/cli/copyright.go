package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppgen-labs/cppgen/internal/copyright"
)

func init() {
	rootCmd.AddCommand(copyrightCmd)
}

var copyrightCmd = &cobra.Command{
	Use:   "copyright <file>...",
	Short: "Insert or update the copyright block of files",
	Long: `Credit the configured author in each file's copyright block.

A file without a copyright block gets a fresh notice at the top. A file
whose block does not yet credit the author for the current month gets an
"Updated by" line before the closing */. Other comments are left alone.

Examples:
  cppgen copyright widget.h widget.cpp`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, path := range args {
			buf, err := openBuffer(path)
			if err != nil {
				return err
			}
			gen, err := generatorFor(path)
			if err != nil {
				return err
			}
			status, err := gen.ApplyCopyright(buf)
			if err != nil {
				return err
			}
			if buf.Modified() {
				if err := buf.Save(); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "%s: %s\n", path, copyrightMessage(status))
		}
		return nil
	},
}

func copyrightMessage(s copyright.Status) string {
	switch s {
	case copyright.Inserted:
		return "Copyright header created!"
	case copyright.Updated:
		return "Copyright header updated!"
	default:
		return "Copyright header already exists and is up to date!"
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppgen-labs/cppgen/internal/editor"
)

var newDir string

func init() {
	newCmd.Flags().StringVarP(&newDir, "dir", "d", ".", "Folder to create the class in")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a header and source file pair for a class",
	Long: `Create <name>.h and <name>.cpp for a new C++ class.

When the folder sits in an include/ or source/ style directory with a
matching sibling (include/src, inc/source, ...), the header goes to the
include side and the source to the source side. Otherwise both files are
written to the folder itself. Existing files are never overwritten.

Examples:
  cppgen new Widget
  cppgen new Widget --dir project/include
  cppgen new ui::Widget`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dirOf(newDir)
		if err != nil {
			return err
		}

		name, err := editor.PromptName(prompterFor(cmd, args, 0))
		if err != nil {
			return err
		}

		gen, err := generatorFor(dir)
		if err != nil {
			return err
		}
		result, err := gen.CreateClassFiles(dir, name)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "C++ class %s successfully created!\n", name)
		fmt.Fprintf(out, "  %s\n", result.HeaderPath)
		fmt.Fprintf(out, "  %s\n", result.SourcePath)
		return nil
	},
}

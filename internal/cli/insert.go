package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppgen-labs/cppgen/internal/editor"
	"github.com/cppgen-labs/cppgen/internal/generator"
	"github.com/cppgen-labs/cppgen/internal/naming"
)

// Shared flags for the buffer editing commands.
var (
	insertAt     string
	insertIndent string
	bannerSelect string
)

func init() {
	for _, c := range []*cobra.Command{declareCmd, defineCmd, bannerCmd} {
		c.Flags().StringVar(&insertAt, "at", "", "Cursor position as LINE or LINE:COL, 1-based (default: end of file)")
		c.Flags().StringVar(&insertIndent, "indent", "", "Whitespace prepended to every inserted line")
		rootCmd.AddCommand(c)
	}
	bannerCmd.Flags().StringVar(&bannerSelect, "select", "", "Selected text range as LINE:COL-LINE:COL, 1-based")
}

// insertFunc is the generator operation a block command runs.
type insertFunc func(g *generator.Generator, v *editor.View, name naming.ClassName, indent string) error

var declareCmd = &cobra.Command{
	Use:   "declare <file> [name]",
	Short: "Insert a class declaration into a file",
	Long: `Insert a bannered class declaration with a constructor and destructor.

A cursor at column 1 inserts on that line; any other column inserts on the
line after it.

Examples:
  cppgen declare widget.h Widget --at 12
  cppgen declare widget.h Widget --at 20:5 --indent "    "`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInsert(cmd, args, (*generator.Generator).InsertDeclaration, "declaration")
	},
}

var defineCmd = &cobra.Command{
	Use:   "define <file> [name]",
	Short: "Insert class constructor and destructor definitions into a file",
	Long: `Insert bannered constructor and destructor definitions for a class.

Examples:
  cppgen define widget.cpp Widget
  cppgen define widget.cpp ui::Widget --at 8`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInsert(cmd, args, (*generator.Generator).InsertDefinition, "definition")
	},
}

var bannerCmd = &cobra.Command{
	Use:   "banner <file> [name]",
	Short: "Insert or rename the class banner around a line",
	Long: `Bracket the cursor line with class banner comments.

When banner lines already enclose the cursor they are rewritten with the
new name. The name is the argument when given, otherwise the selected
text, otherwise the word under the cursor, otherwise it is prompted for.

Examples:
  cppgen banner widget.h Widget --at 14
  cppgen banner widget.h --at 14:7
  cppgen banner widget.h --at 14 --select 14:7-14:13`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := openBuffer(args[0])
		if err != nil {
			return err
		}
		if insertAt == "" {
			return fmt.Errorf("--at is required for banner")
		}
		view, err := newView(buf)
		if err != nil {
			return err
		}
		if bannerSelect != "" {
			sel, err := parseSelection(bannerSelect)
			if err != nil {
				return err
			}
			view.Selection = sel
		}

		var name naming.ClassName
		if len(args) > 1 {
			name, err = editor.PromptName(editor.Answer(args[1]))
		} else {
			name, err = editor.ResolveName(view, prompterFor(cmd, args, 1))
		}
		if err != nil {
			return err
		}

		gen, err := generatorFor(buf.Path())
		if err != nil {
			return err
		}
		outcome, err := gen.InsertBanner(view, name, insertIndent)
		if err != nil {
			return err
		}
		if err := buf.Save(); err != nil {
			return err
		}

		if outcome == generator.BannerRenamed {
			fmt.Fprintln(cmd.OutOrStdout(), "Class header was updated")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Class header for %s inserted\n", name)
		}
		return nil
	},
}

func runInsert(cmd *cobra.Command, args []string, insert insertFunc, what string) error {
	buf, err := openBuffer(args[0])
	if err != nil {
		return err
	}
	view, err := newView(buf)
	if err != nil {
		return err
	}
	name, err := editor.PromptName(prompterFor(cmd, args, 1))
	if err != nil {
		return err
	}

	gen, err := generatorFor(buf.Path())
	if err != nil {
		return err
	}
	if err := insert(gen, view, name, insertIndent); err != nil {
		return err
	}
	if err := buf.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %s of %s into %s\n", what, name, buf.Path())
	return nil
}

// newView places the cursor from --at, or past the last line when unset.
func newView(buf *editor.Buffer) (*editor.View, error) {
	view := &editor.View{Buffer: buf, Cursor: editor.Cursor{Line: buf.LineCount()}}
	if insertAt == "" {
		return view, nil
	}
	c, err := parsePosition(insertAt)
	if err != nil {
		return nil, err
	}
	view.Cursor = c
	view.Selection = editor.Selection{Start: c, End: c}
	return view, nil
}

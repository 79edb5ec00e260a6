package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/grid"
)

// justifyCommand creates the justify command, which prints a single
// justified line.
func (c *CLI) justifyCommand() *cobra.Command {
	var fill string

	cmd := &cobra.Command{
		Use:   "justify <width> [left] [middle] [right]",
		Short: "Justify a single line to a fixed width",
		Long: `Justify a single line to a fixed width.

Left is flush left, right is flush right and middle is centered in the
remaining space. Gaps are padded with --fill. When the gap around middle is
odd, the extra character goes to the right.`,
		Example: `  cardgrid justify 20 web-01 up 12ms
  cardgrid justify 11 "" title "" --fill -`,
		Args: cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "width %q is not a number", args[0])
			}
			parts := make([]string, 3)
			copy(parts, args[1:])

			line, err := grid.Justify(width, parts[0], parts[1], parts[2], fill)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}

	cmd.Flags().StringVar(&fill, "fill", grid.DefaultFill, "padding character")
	return cmd
}

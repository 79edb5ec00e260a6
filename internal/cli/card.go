package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgrid/pkg/pipeline"
)

// cardCommand creates the card command, which shows the configured card
// template with its placeholders unresolved.
func (c *CLI) cardCommand() *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "card",
		Short: "Show the card template",
		Long: `Show the card template as a single card.

Placeholders such as {name} are printed verbatim, so the card is as wide as
its widest template line. The available fields are listed on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			lines := cfg.Card.Lines
			if detail {
				lines = cfg.Detail.Lines
			}

			ctx := cmd.Context()
			result, err := newRunner(loggerFromContext(ctx), cmd.OutOrStdout()).Preview(ctx, lines, cfg.Grid)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write([]byte(result.Output)); err != nil {
				return err
			}

			card, err := pipeline.CompileCard(lines)
			if err != nil {
				return err
			}
			for _, field := range card.Fields() {
				printKeyValue("field", field)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detail, "detail", "d", false, "show the detail card template")
	return cmd
}

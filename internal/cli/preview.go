package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgrid/pkg/pipeline"
	"github.com/matzehuels/cardgrid/pkg/records"
)

// previewCommand creates the preview command, an interactive grid that
// repacks whenever the terminal is resized.
func (c *CLI) previewCommand() *cobra.Command {
	opts := renderOpts{format: string(records.FormatJSON)}

	cmd := &cobra.Command{
		Use:   "preview <records>",
		Short: "Interactively preview the grid",
		Long: `Interactively preview the grid.

The grid is repacked for the terminal width on every resize. Press s to
switch between the exact and fast packing strategies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			popts := renderPipelineOptions(cmd, cfg, &opts)
			if err := popts.Validate(); err != nil {
				return err
			}

			recs, err := readRecords(cmd, args[0], records.Format(opts.format))
			if err != nil {
				return err
			}
			card, err := pipeline.CompileCard(popts.Card)
			if err != nil {
				return err
			}

			// The TUI owns the screen, so logging would corrupt it.
			runner := pipeline.NewRunner(nil, nil)
			g, err := runner.Build(card, recs, popts.Index)
			if err != nil {
				return err
			}
			logger.Debug("starting preview", "cards", g.Len())

			progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
			if args[0] == stdinPath {
				// Stdin held the records; keys come from the terminal.
				progOpts = append(progOpts, tea.WithInputTTY())
			}
			model := NewGridModel(ctx, runner, g, popts.Grid)
			_, err = tea.NewProgram(model, progOpts...).Run()
			return err
		},
	}

	opts.grid.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "record format for stdin: json, toml")
	cmd.Flags().BoolVarP(&opts.detail, "detail", "d", false, "use the detail card template")
	cmd.Flags().BoolVar(&opts.noIndex, "no-index", false, "do not add the {index} field")

	return cmd
}

package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgrid/pkg/config"
	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/pipeline"
	"github.com/matzehuels/cardgrid/pkg/records"
	"github.com/matzehuels/cardgrid/pkg/template"
)

// stdinPath selects standard input as the record source.
const stdinPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	grid    gridFlags
	output  string // output file (default: stdout)
	format  string // record format when reading stdin
	detail  bool   // use the detail card template
	noIndex bool   // do not add the index field
}

// renderCommand creates the render command that packs a record file into
// a grid of cards.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: string(records.FormatJSON)}

	cmd := &cobra.Command{
		Use:   "render <records>",
		Short: "Render records as a grid of cards",
		Long: `Render records as a grid of cards.

The records file is a JSON array of objects or a TOML file with [[record]]
tables. Use "-" to read records from stdin (see --format). Each record fills
the card template from the config file; the cards are packed into as many
columns as fit the width budget.`,
		Example: `  cardgrid render servers.json
  cardgrid render servers.toml --width 120 --strategy fast
  curl -s api/servers | cardgrid render - --detail`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.grid.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "record format for stdin: json, toml")
	cmd.Flags().BoolVarP(&opts.detail, "detail", "d", false, "use the detail card template")
	cmd.Flags().BoolVar(&opts.noIndex, "no-index", false, "do not add the {index} field")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	popts := renderPipelineOptions(cmd, cfg, opts)

	recs, err := readRecords(cmd, path, records.Format(opts.format))
	if err != nil {
		return err
	}
	logger.Debug("loaded records", "source", path, "count", len(recs))

	prog := newProgress(logger)
	result, err := newRunner(logger, cmd.OutOrStdout()).Execute(ctx, recs, popts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write([]byte(result.Output))
		return err
	}
	if err := writeOutput(ctx, opts.output, result.Output); err != nil {
		return err
	}
	prog.done("Rendered grid")
	printSuccess("Rendered %d cards", result.Stats.Elements)
	printStats(result.Stats.Elements, result.Stats.Columns, result.Stats.Rows, result.Stats.Width)
	printFile(opts.output)
	return nil
}

// renderPipelineOptions merges the config file with command-line overrides.
func renderPipelineOptions(cmd *cobra.Command, cfg config.Config, opts *renderOpts) pipeline.Options {
	opts.grid.apply(cmd, &cfg.Grid)
	card := cfg.Card.Lines
	if opts.detail {
		card = cfg.Detail.Lines
	}
	return pipeline.Options{
		Grid:  cfg.Grid,
		Card:  card,
		Index: !opts.noIndex,
	}
}

// readRecords loads records from path, or from stdin when path is "-".
func readRecords(cmd *cobra.Command, path string, format records.Format) ([]template.Values, error) {
	if path != stdinPath {
		return records.Load(path)
	}
	switch format {
	case records.FormatJSON, records.FormatTOML:
		return records.Decode(cmd.InOrStdin(), format)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported record format %q (must be json or toml)", format)
	}
}

// writeOutput writes the rendered grid to path.
func writeOutput(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := errors.ValidateFilePath(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

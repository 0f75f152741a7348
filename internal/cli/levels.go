package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargograph/pkg/buildinfo"
	"github.com/matzehuels/cargograph/pkg/errors"
	"github.com/matzehuels/cargograph/pkg/levels"
	"github.com/matzehuels/cargograph/pkg/mermaid"
)

// LevelsCommand creates the mermaidlevels root command.
func (c *CLI) LevelsCommand() *cobra.Command {
	opts := levelsOpts{format: string(levels.FormatText)}
	var configFile string

	cmd := &cobra.Command{
		Use:   "mermaidlevels",
		Short: "List the packages at a given depth of a Mermaid dependency graph",
		Long: `List the packages at a given depth of a Mermaid dependency graph.

Levels are shortest distances from the graph's sources. With --up the
sources are the packages nothing depends on and distance grows along
dependency edges; with --down the sources are the packages without
dependencies and distance grows towards their dependents. Each listed
package is printed with its direct dependencies.

Examples:
  mermaidlevels -i deps.mmd -n 0 --down          # leaf crates
  mermaidlevels -i deps.mmd -n 1 --up -o top.txt
  mermaidlevels -i deps.mmd -n 2 --down -f json`,
		Args:         cobra.NoArgs,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reject bad levels before touching any file.
			if err := errors.ValidateLevel(opts.level); err != nil {
				return err
			}
			cfg, source, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if source != "" {
				c.Logger.Debugf("Loaded config from %s", source)
			}
			if cfg.Levels.Format != "" && !cmd.Flags().Changed("format") {
				opts.format = cfg.Levels.Format
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runLevels(withLogger(cmd.Context(), c.Logger), opts)
		},
	}
	cmd.SetVersionTemplate(buildinfo.Template())

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Mermaid graph to read")
	cmd.Flags().IntVarP(&opts.level, "level", "n", 0, "level to list (0 = sources)")
	cmd.Flags().BoolVarP(&opts.up, "up", "u", false, "measure levels from the top-level packages")
	cmd.Flags().BoolVarP(&opts.down, "down", "d", false, "measure levels from the leaf packages")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <input>.<up|down>.level<N>.<ext>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, yaml")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/cargograph/config.toml)")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("level")
	cmd.MarkFlagsMutuallyExclusive("up", "down")
	cmd.MarkFlagsOneRequired("up", "down")

	return cmd
}

func (c *CLI) runLevels(ctx context.Context, opts levelsOpts) error {
	logger := loggerFromContext(ctx)

	dir, err := levels.ParseDirection(opts.direction())
	if err != nil {
		return err
	}
	format, err := levels.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if err := errors.ValidateInputFile(opts.input); err != nil {
		return err
	}

	logger.Infof("Reading %s", opts.input)
	prog := newProgress(logger)
	g, err := mermaid.Import(opts.input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read graph")
	}
	prog.done(fmt.Sprintf("Loaded %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))

	lv := levels.Compute(g, dir)
	if lv.Cyclic() {
		logger.Warn("Graph has no sources; every node is treated as level 0")
	}
	if unreached := lv.Unreached(); len(unreached) > 0 {
		logger.Warnf("%d nodes are unreachable from any source", len(unreached))
	}
	logger.Debugf("Levels 0..%d computed from %d roots", lv.Max(), len(lv.Roots()))

	report := lv.Report(opts.level)
	if len(report.Nodes) == 0 {
		logger.Warnf("No nodes at level %d (max level is %d)", opts.level, lv.Max())
	}

	path := opts.output
	if path == "" {
		path = levels.DefaultOutputPath(opts.input, opts.level, dir, format)
	}
	if err := writeReport(path, format, report); err != nil {
		return err
	}

	c.printSaved(fmt.Sprintf("Wrote %d nodes at level %d (%s) to", len(report.Nodes), opts.level, dir), path)
	return nil
}

func writeReport(path string, format levels.Format, r levels.Report) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInternal, cerr, "close output")
		}
	}()
	if err := levels.Write(out, format, r); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write levels")
	}
	return nil
}

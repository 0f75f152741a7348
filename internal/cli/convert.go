package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargograph/pkg/buildinfo"
	"github.com/matzehuels/cargograph/pkg/cargotree"
	"github.com/matzehuels/cargograph/pkg/errors"
	"github.com/matzehuels/cargograph/pkg/graph"
	"github.com/matzehuels/cargograph/pkg/mermaid"
	"github.com/matzehuels/cargograph/pkg/render/nodelink"
)

// Graph output formats for cargotree2mermaid.
const (
	formatMermaid = "mermaid"
	formatDOT     = "dot"
	formatSVG     = "svg"
)

// ConvertCommand creates the cargotree2mermaid root command.
func (c *CLI) ConvertCommand() *cobra.Command {
	opts := convertOpts{
		input:     defaultInput,
		direction: string(mermaid.DefaultDirection),
		format:    formatMermaid,
	}
	var configFile string

	cmd := &cobra.Command{
		Use:   "cargotree2mermaid",
		Short: "Convert cargo tree output into a Mermaid dependency graph",
		Long: `Convert the output of "cargo tree" into a Mermaid flowchart.

Blacklisted packages are dropped from the graph and their dependencies are
attached to the nearest remaining ancestor. Names match both their hyphen and
underscore spellings.

Examples:
  cargo tree > crates-dep.txt && cargotree2mermaid -o deps.mmd
  cargotree2mermaid -i tree.txt -b blacklist.txt -w whitelist.txt -o deps.mmd
  cargotree2mermaid -i tree.txt -f svg -o deps.svg --direction LR
  cargotree2mermaid -i tree.txt -o deps.mmd --watch`,
		Args:         cobra.NoArgs,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if source != "" {
				c.Logger.Debugf("Loaded config from %s", source)
			}
			opts.applyConfig(cfg.Convert, cmd)
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runConvert(withLogger(cmd.Context(), c.Logger), opts)
		},
	}
	cmd.SetVersionTemplate(buildinfo.Template())

	cmd.Flags().StringVarP(&opts.input, "input", "i", opts.input, "cargo tree output to read")
	cmd.Flags().StringVarP(&opts.blacklist, "blacklist", "b", "", "file of package names to drop (comma or whitespace separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.white, "white", "w", "", "write the sorted non-blacklisted package names to this file")
	cmd.Flags().StringVar(&opts.direction, "direction", opts.direction, "graph direction: "+strings.Join(mermaid.DirectionNames(), ", "))
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: mermaid, dot, svg")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "regenerate the output whenever the input changes (requires --output)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/cargograph/config.toml)")

	return cmd
}

// applyConfig fills options the user did not set on the command line.
func (o *convertOpts) applyConfig(cfg ConvertConfig, cmd *cobra.Command) {
	if cfg.Direction != "" && !cmd.Flags().Changed("direction") {
		o.direction = cfg.Direction
	}
	if cfg.Format != "" && !cmd.Flags().Changed("format") {
		o.format = cfg.Format
	}
	o.extra = cfg.Blacklist
}

func (c *CLI) runConvert(ctx context.Context, opts convertOpts) error {
	if err := c.convertOnce(ctx, opts); err != nil || !opts.watch {
		return err
	}
	logger := loggerFromContext(ctx)
	w, err := newInputWatcher(opts.input, logger)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "watch input")
	}
	logger.Infof("Watching %s for changes (Ctrl+C to stop)", opts.input)
	return w.run(ctx, watchDebounce, func() error { return c.convertOnce(ctx, opts) })
}

// convertOnce parses the input and writes every requested output.
func (c *CLI) convertOnce(ctx context.Context, opts convertOpts) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateInputFile(opts.input); err != nil {
		return err
	}

	var loaded []string
	if opts.blacklist != "" {
		if err := errors.ValidateInputFile(opts.blacklist); err != nil {
			return err
		}
		var err error
		if loaded, err = cargotree.LoadNames(opts.blacklist); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "load blacklist")
		}
	}
	names := slices.Concat(opts.extra, loaded)
	blacklist := cargotree.ExpandNames(names...)
	logger.Debugf("Blacklist: %d names (%d with spelling variants)", len(names), len(blacklist))

	logger.Infof("Parsing %s", opts.input)
	prog := newProgress(logger)
	res, err := cargotree.ParseFile(opts.input, blacklist)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", opts.input)
	}
	prog.done(fmt.Sprintf("Parsed %d packages, %d edges", len(res.Names), res.Graph.EdgeCount()))
	if res.Skipped > 0 {
		logger.Debugf("Skipped %d unrecognized lines", res.Skipped)
	}

	if err := c.writeGraph(ctx, res.Graph, opts); err != nil {
		return err
	}

	if opts.white != "" {
		white := res.Whitelist(blacklist)
		if err := writeNames(opts.white, white); err != nil {
			return err
		}
		logger.Infof("Wrote %d whitelisted names to %s", len(white), opts.white)
	}

	if opts.output != "" {
		c.printSaved("Done! Dependency graph saved to", opts.output)
	}
	return nil
}

// writeGraph renders g in the requested format to the output file or stdout.
func (c *CLI) writeGraph(ctx context.Context, g *graph.Graph, opts convertOpts) (err error) {
	dir, err := mermaid.ParseDirection(opts.direction)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(nodelink.ToDOT(g, nodelink.Options{Direction: dir}))
	case formatSVG:
		prog := newProgress(loggerFromContext(ctx))
		data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{Direction: dir}))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		prog.done("Rendered SVG")
	}

	out, err := c.openOutput(opts.output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInternal, cerr, "close output")
		}
	}()

	if data == nil {
		if err := mermaid.Write(out, dir, g); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write mermaid")
		}
		return nil
	}
	if _, err := out.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.format)
	}
	return nil
}

// writeNames writes one name per line.
func writeNames(path string, names []string) error {
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write whitelist")
	}
	return nil
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgewalk/edgewalk/pkg/coloring"
	"github.com/edgewalk/edgewalk/pkg/errors"
	"github.com/edgewalk/edgewalk/pkg/graph"
	"github.com/edgewalk/edgewalk/pkg/mst"
	"github.com/edgewalk/edgewalk/pkg/render"
)

// Render output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderCommand creates the render command for drawing graphs.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format      string
		output      string
		highlight   bool
		colorize    bool
		showWeights bool
	)

	cmd := &cobra.Command{
		Use:   "render [graph-file]",
		Short: "Render the graph as DOT, SVG, or PNG",
		Long: `Render the graph as a drawing.

By default the plain graph is drawn. With --mst the minimum spanning tree
edges are highlighted; with --color nodes are filled according to a DSatur
coloring. DOT output goes to stdout unless --output is given; image formats
default to the input filename with the format's extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != formatDOT && format != formatSVG && format != formatPNG {
				return errors.New(errors.ErrCodeInvalidFormat,
					"unknown format %q (expected dot, svg, or png)", format)
			}
			return c.runRender(cmd, args[0], renderParams{
				format:      format,
				output:      output,
				highlight:   highlight,
				colorize:    colorize,
				showWeights: showWeights,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().BoolVar(&highlight, "mst", false, "highlight minimum spanning tree edges")
	cmd.Flags().BoolVar(&colorize, "color", false, "fill nodes with a DSatur coloring")
	cmd.Flags().BoolVar(&showWeights, "weights", false, "label edges with their weights")

	return cmd
}

type renderParams struct {
	format      string
	output      string
	highlight   bool
	colorize    bool
	showWeights bool
}

// runRender parses the graph, computes any requested overlays, and writes
// the drawing.
func (c *CLI) runRender(cmd *cobra.Command, file string, p renderParams) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	g, err := graph.ParseFileWith(file, graph.ParseOptions{DefaultWeight: cfg.DefaultWeight})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	opts := render.Options{Weights: p.showWeights}
	if p.highlight {
		res, err := mst.Prim(g)
		if err != nil {
			return fmt.Errorf("compute spanning tree: %w", err)
		}
		opts.MST = &res
	}
	if p.colorize {
		res := coloring.DSatur(g)
		opts.Coloring = &res
	}

	tracker := newProgress(c.Logger)
	dot := render.ToDOT(g, opts)

	if p.format == formatDOT {
		if p.output == "" {
			fmt.Fprint(cmd.OutOrStdout(), dot)
			return nil
		}
		if err := os.WriteFile(p.output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p.output, err)
		}
		printSuccess("Wrote DOT")
		printFile(p.output)
		return nil
	}

	var data []byte
	switch p.format {
	case formatSVG:
		data, err = render.RenderSVG(cmd.Context(), dot)
	case formatPNG:
		data, err = render.RenderPNG(cmd.Context(), dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", p.format, err)
	}
	tracker.done(fmt.Sprintf("Rendered %d nodes", g.Len()))

	out := p.output
	if out == "" {
		out = strings.TrimSuffix(file, ".txt") + "." + p.format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Rendered %s", strings.ToUpper(p.format))
	printFile(out)
	return nil
}

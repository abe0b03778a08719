package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgewalk/edgewalk/pkg/engine"
	"github.com/edgewalk/edgewalk/pkg/errors"
	"github.com/edgewalk/edgewalk/pkg/graph"
)

// runFlags are the flags shared by every algorithm command.
type runFlags struct {
	start   int
	noCache bool
}

func (f *runFlags) register(cmd *cobra.Command, needsStart bool) {
	if needsStart {
		cmd.Flags().IntVarP(&f.start, "start", "s", 1, "start node ID")
	}
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable result caching")
}

// bfsCommand creates the breadth-first traversal command.
func (c *CLI) bfsCommand() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "bfs [graph-file]",
		Short: "Traverse the graph breadth-first from a start node",
		Long: `Traverse the graph breadth-first from a start node.

The traversal visits each reachable node once and prints the visit order as
"1 -> 2 -> 3". Neighbors are visited in the order their edges appear in the
input file, so the output is deterministic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAlgorithm(cmd, args[0], engine.Request{
				Operation: engine.OpBFS,
				Start:     flags.start,
				NoCache:   flags.noCache,
			})
		},
	}
	flags.register(cmd, true)
	return cmd
}

// dfsCommand creates the depth-first traversal command.
func (c *CLI) dfsCommand() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "dfs [graph-file]",
		Short: "Traverse the graph depth-first from a start node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAlgorithm(cmd, args[0], engine.Request{
				Operation: engine.OpDFS,
				Start:     flags.start,
				NoCache:   flags.noCache,
			})
		},
	}
	flags.register(cmd, true)
	return cmd
}

// misCommand creates the maximal-independent-sets command.
func (c *CLI) misCommand() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "mis [graph-file]",
		Short: "Enumerate maximal independent sets (Bron-Kerbosch)",
		Long: `Enumerate maximal independent sets with the Bron-Kerbosch algorithm.

An independent set contains no two adjacent nodes; a maximal one cannot be
grown further. Enumeration is exponential in the worst case, so results are
cached per graph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAlgorithm(cmd, args[0], engine.Request{
				Operation: engine.OpBK,
				NoCache:   flags.noCache,
			})
		},
	}
	flags.register(cmd, false)
	return cmd
}

// mstCommand creates the minimum-spanning-tree command.
func (c *CLI) mstCommand() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "mst [graph-file]",
		Short: "Compute a minimum spanning tree (Prim)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAlgorithm(cmd, args[0], engine.Request{
				Operation: engine.OpPrim,
				NoCache:   flags.noCache,
			})
		},
	}
	flags.register(cmd, false)
	return cmd
}

// colorCommand creates the graph-coloring command.
func (c *CLI) colorCommand() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "color [graph-file]",
		Short: "Color the graph with the DSatur heuristic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAlgorithm(cmd, args[0], engine.Request{
				Operation: engine.OpDSatur,
				NoCache:   flags.noCache,
			})
		},
	}
	flags.register(cmd, false)
	return cmd
}

// runAlgorithm is the shared path behind every algorithm command: load the
// config, parse the graph file, execute through the runner, print the result.
func (c *CLI) runAlgorithm(cmd *cobra.Command, file string, req engine.Request) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	g, err := graph.ParseFileWith(file, graph.ParseOptions{DefaultWeight: cfg.DefaultWeight})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	c.Logger.Debug("parsed graph", "file", file, "nodes", g.Len())

	runner, err := c.newRunner(cfg, req.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Running %s...", req.Operation))
	stop := spinner.Start(cmd.Context())
	result, err := runner.Execute(cmd.Context(), g, req)
	stop()
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), colorizeResult(req.Operation, result))
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderritik/hase/internal/candidate"
	"github.com/alexanderritik/hase/internal/engine"
	"github.com/alexanderritik/hase/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "hase <graph.json>",
	Short: "Recommends which instructions to record to maximize concretization coverage on replay",
	Long: `hase loads a symbolic-execution constraint graph, enumerates the
instructions worth recording during trace capture, and ranks them by how
much of the graph they let a replayer concretize.`,
	Args: cobra.ExactArgs(1),
	RunE: runBase,
}

// Execute executes the root command.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags would go here; there are none, per the base CLI contract.
}

func loadEngine(path string) (*engine.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph file: %w", err)
	}
	defer f.Close()
	return engine.Load(f)
}

func runBase(cmd *cobra.Command, args []string) error {
	e, err := loadEngine(args[0])
	if err != nil {
		return err
	}
	fmt.Println(e.GraphStats())

	seqs, err := e.Analyze(nil)
	if err != nil {
		return err
	}

	if qs := e.QueryNodes(); len(qs) > 0 {
		for _, nodeID := range qs {
			covering := e.Covering(seqs, nodeID)
			fmt.Printf("\nquery node %s: covered by %d candidate(s)\n", nodeID, len(covering))
			if err := printSequences(e, covering); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Println("\ntop-5 by coverage score")
	if err := printSequences(e, topN(e.RankByCoverage(seqs), 5)); err != nil {
		return err
	}
	fmt.Println("\ntop-5 by coverage/frequency score")
	return printSequences(e, topN(e.RankByCoverageFreq(seqs), 5))
}

// topN returns the highest-scoring n entries from an ascending-sorted
// slice (its tail), highest first.
func topN(ranked []candidate.Sequence, n int) []candidate.Sequence {
	start := len(ranked) - n
	if start < 0 {
		start = 0
	}
	tail := ranked[start:]
	out := make([]candidate.Sequence, len(tail))
	for i, seq := range tail {
		out[len(tail)-1-i] = seq
	}
	return out
}

func printSequences(e *engine.Engine, seqs []candidate.Sequence) error {
	for i, seq := range seqs {
		rep, err := report.Build(e.Graph, seq)
		if err != nil {
			return err
		}
		fmt.Printf("%d. ", i+1)
		for j, entry := range rep.Entries {
			if j > 0 {
				fmt.Print("  ")
			}
			fmt.Println(entry.String())
		}
	}
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderritik/hase/internal/report"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <graph.json>",
	Short: "Print the full narrative report: topology, candidates, and coverage",
	Long:  `Loads the constraint graph and walks through every eligible recording candidate, reporting how much of the graph each one would let a replayer concretize.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("🔍 %s\n", e.GraphStats())
		fmt.Println(strings.Repeat("-", 80))

		seqs, err := e.Analyze(nil)
		if err != nil {
			return err
		}

		fmt.Printf("\n📦 CANDIDATE INSTRUCTIONS (%d found)\n", len(seqs))
		for i, seq := range seqs {
			rep, err := report.Build(e.Graph, seq)
			if err != nil {
				return err
			}
			for _, entry := range rep.Entries {
				fmt.Printf("%d. %s\n", i+1, entry.String())
			}
			csf := "undefined"
			if rep.CoverageFreqDefined {
				csf = fmt.Sprintf("%.4f", rep.CoverageFreqScore)
			}
			fmt.Printf("   CS(R)=%.1f CSF(R)=%s\n", rep.CoverageScore, csf)
			fmt.Printf("   concretizes %d/%d nodes (%.1f%%), residual max idep ", rep.TotalConcretized, rep.TotalNodes, rep.CoveragePercent)
			if rep.ResidualMaxIDepKnown {
				fmt.Printf("%d\n", rep.ResidualMaxIDep)
			} else {
				fmt.Println("undefined (nothing left unconcretized)")
			}
		}

		if qs := e.QueryNodes(); len(qs) > 0 {
			fmt.Println("\n🎯 QUERY COVERAGE")
			for _, nodeID := range qs {
				covering := e.Covering(seqs, nodeID)
				fmt.Printf("%s: %d candidate(s) cover this node\n", nodeID, len(covering))
			}
		}

		fmt.Println(strings.Repeat("-", 80))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

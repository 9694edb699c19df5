package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexanderritik/hase/internal/candidate"
	"github.com/alexanderritik/hase/internal/scoring"
)

var (
	rankSort  string
	rankLimit int
	rankAll   bool
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank <graph.json>",
	Short: "Print a ranked table of candidate recording instructions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine(args[0])
		if err != nil {
			return err
		}

		seqs, err := e.Analyze(nil)
		if err != nil {
			return err
		}

		var ranked []candidate.Sequence
		switch rankSort {
		case "coverage", "":
			ranked = e.RankByCoverage(seqs)
		case "csf":
			ranked = e.RankByCoverageFreq(seqs)
		default:
			return fmt.Errorf("unknown --sort value %q, want coverage or csf", rankSort)
		}

		limit := rankLimit
		if rankAll || limit <= 0 || limit > len(ranked) {
			limit = len(ranked)
		}
		top := topN(ranked, limit)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "RANK\tKINST\tWIDTH\tFREQ\tREC\tHIDDEN\tCONCRETIZED\tCS\tCSF")
		for i, seq := range top {
			last := seq[len(seq)-1]
			cs := scoring.CoverageScore(e.Graph, seq)
			csf, ok := scoring.CoverageFreqScore(e.Graph, seq)
			csfStr := "undefined"
			if ok {
				csfStr = fmt.Sprintf("%.4f", csf)
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%.1f\t%s\n",
				i+1, last.Kinst, last.Width, last.Freq, len(last.RecNodes), len(last.HiddenNodes), len(last.ConcretizedNodes), cs, csfStr)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().StringVar(&rankSort, "sort", "coverage", "Ranking metric: coverage or csf")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 5, "Number of rows to show")
	rankCmd.Flags().BoolVar(&rankAll, "all", false, "Show every candidate")
}

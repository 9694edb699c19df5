package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderritik/hase/internal/report"
)

// annotateCmd represents the annotate command
var annotateCmd = &cobra.Command{
	Use:   "annotate <graph.json> <candidate-index>",
	Short: "Emit the red/green/white colour-class annotation for one candidate sequence",
	Long:  `Writes the annotation sink's JSON contract for the candidate at the given index (in analyze_recordable's emission order), for an external visualizer to load.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine(args[0])
		if err != nil {
			return err
		}
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("candidate index must be an integer: %w", err)
		}

		seqs, err := e.Analyze(nil)
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(seqs) {
			return fmt.Errorf("candidate index %d out of range [0,%d)", idx, len(seqs))
		}

		// Headless CLI run: no live visualizer is attached, so the sink
		// gets the no-op capability rather than a nil Visualizer.
		sink, err := report.NewSink("json", os.Stdout, report.NoopVisualizer{})
		if err != nil {
			return err
		}
		return sink.Annotate(seqs[idx])
	},
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}

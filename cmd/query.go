package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <graph.json> <node-id>",
	Short: "Show which recording choices cover a given node",
	Long:  `Filters the candidate list down to the sequences whose concretized set contains the given node, and prints them as a tree of covering kinsts.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEngine(args[0])
		if err != nil {
			return err
		}
		nodeID := args[1]
		if _, ok := e.Graph.Nodes[nodeID]; !ok {
			return fmt.Errorf("unknown node %q", nodeID)
		}

		seqs, err := e.Analyze(nil)
		if err != nil {
			return err
		}

		covering := e.Covering(seqs, nodeID)
		fmt.Printf("%s\n", nodeID)
		if len(covering) == 0 {
			fmt.Println("└── (no candidate covers this node)")
			return nil
		}
		for i, seq := range covering {
			marker := "├──"
			if i == len(covering)-1 {
				marker = "└──"
			}
			last := seq[len(seq)-1]
			fmt.Printf("%s %s (rec=%d, hidden=%d, concretized=%d)\n",
				marker, last.Kinst, len(last.RecNodes), len(last.HiddenNodes), len(last.ConcretizedNodes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

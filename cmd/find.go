package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sak-codes/biopython/internal/meme"
	"github.com/spf13/cobra"
)

// findCmd looks up a single motif in a minimal MEME report
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find one motif in a minimal MEME report by name or index",
	Run:                        runFind,
	SuggestionsMinimumDistance: 2,
	Long: `
Parse a minimal MEME report and print a single motif as JSON. Motifs are
found by the name following their MOTIF marker or, with --index, by
their position in the report. Negative indexes count back from the last
motif.`,
}

// set flags
func init() {
	RootCmd.AddCommand(findCmd)

	findCmd.Flags().StringP("in", "i", "", "input minimal MEME report")
	findCmd.Flags().StringP("name", "n", "", "name of the motif to find")
	findCmd.Flags().IntP("index", "x", 0, "index of the motif to find")
}

// runFind executes the find command: parse the input, print one motif
func runFind(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("no input path")
	}

	rec, err := meme.ReadFile(in)
	if err != nil {
		stderr.Fatal(err)
	}

	var motif *meme.Motif
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		m, ok := rec.FindByName(name)
		if !ok {
			stderr.Fatalf("no motif named %s in %s", name, in)
		}
		motif = m
	} else {
		index, _ := cmd.Flags().GetInt("index")
		if motif, err = rec.At(index); err != nil {
			stderr.Fatal(err)
		}
	}

	output, err := json.MarshalIndent(motif, "", "  ")
	if err != nil {
		stderr.Fatalf("failed to serialize the motif: %v", err)
	}
	fmt.Println(string(output))
}

package cmd

import (
	"path/filepath"
	"strings"

	"github.com/sak-codes/biopython/config"
	"github.com/sak-codes/biopython/internal/meme"
	"github.com/spf13/cobra"
)

// readCmd parses a minimal MEME report into a JSON record
var readCmd = &cobra.Command{
	Use:                        "read",
	Short:                      "Read a minimal MEME report into a JSON record",
	Run:                        runRead,
	SuggestionsMinimumDistance: 2,
	Long: `
Parse the motifs in a minimal MEME report: the format version, the
declared alphabet, the background letter frequencies, and one count
matrix with summary statistics per MOTIF block.

The record is written as indented JSON. When no output path is passed,
one is guessed from the input path.`,
}

// set flags
func init() {
	RootCmd.AddCommand(readCmd)

	readCmd.Flags().StringP("in", "i", "", "input minimal MEME report")
	readCmd.Flags().StringP("out", "o", "", "output file name for the JSON record")
}

// runRead executes the read command: parse the input, write the record
func runRead(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("no input path")
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = guessOutput(in)
	}

	rec, err := meme.ReadFile(in)
	if err != nil {
		stderr.Fatal(err)
	}

	if _, err = meme.Write(out, in, rec); err != nil {
		stderr.Fatal(err)
	}
	stderr.Printf("wrote %d motifs to %s", rec.Len(), out)
}

// guessOutput creates an output path from the input's, swapping in the
// record extension from settings
func guessOutput(in string) string {
	c := config.New()
	return strings.TrimSuffix(in, filepath.Ext(in)) + c.Output.Extension
}

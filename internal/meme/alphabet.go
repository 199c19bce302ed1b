package meme

// Alphabet is the symbol set a motif is defined over. The minimal MEME
// format only distinguishes two: the unambiguous DNA nucleotides, or the
// IUPAC amino acids for any other ALPHABET= value.
type Alphabet string

const (
	// UnambiguousDNA is the four nucleotide symbols
	UnambiguousDNA Alphabet = "ACGT"

	// Protein is the 20 IUPAC amino acid symbols
	Protein Alphabet = "ACDEFGHIKLMNPQRSTVWY"
)

// Letters returns the alphabet's symbols in their canonical order.
func (a Alphabet) Letters() []string {
	letters := make([]string, 0, len(a))
	for _, r := range string(a) {
		letters = append(letters, string(r))
	}
	return letters
}

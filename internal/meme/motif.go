package meme

// Motif is one discovered pattern: a per-position, per-symbol matrix of
// integer pseudo-counts plus the summary statistics MEME reports for it.
type Motif struct {
	// Name is the label following the MOTIF marker. In "MOTIF LEXA" its "LEXA"
	Name string `json:"name"`

	// Alphabet the motif is defined over, inherited from its record
	Alphabet Alphabet `json:"alphabet"`

	// Counts maps each symbol to one integer count per matrix column
	Counts map[string][]int `json:"counts"`

	// Length is the number of columns in the count matrix
	Length int `json:"length"`

	// NumOccurrences is the number of sites supporting the motif
	NumOccurrences int `json:"numOccurrences"`

	// EValue is the motif's significance score. Smaller is more significant
	EValue float64 `json:"evalue"`

	// Background is the null model the motif was discovered against
	Background map[string]float64 `json:"background"`
}

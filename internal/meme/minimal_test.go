package meme

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// a small but complete minimal MEME report with two motifs
const minDNA = `MEME version 4

ALPHABET= ACGT

strands: + -

Background letter frequencies
A 0.303 C 0.183 G 0.209 T 0.306

MOTIF LEXA
letter-probability matrix: alength= 4 w= 4 nsites= 14 E= 3.2e-035
 0.214286  0.000000  0.000000  0.785714
 0.857143  0.000000  0.071429  0.071429
 0.000000  1.000000  0.000000  0.000000
 0.000000  0.000000  0.000000  1.000000

MOTIF CRP
letter-probability matrix: alength= 4 w= 3 nsites= 17 E= 4.1e-009
 0.500000  0.250000  0.250000  0.000000
 0.000000  0.750000  0.125000  0.125000
 1.000000  0.000000  0.000000  0.000000
`

func Test_Read(t *testing.T) {
	rec, err := Read(strings.NewReader(minDNA))
	if err != nil {
		t.Fatal(err)
	}

	if rec.Version != "4" {
		t.Errorf("version = %q, want %q", rec.Version, "4")
	}
	if rec.Alphabet != UnambiguousDNA {
		t.Errorf("alphabet = %q, want %q", rec.Alphabet, UnambiguousDNA)
	}

	wantBackground := map[string]float64{"A": 0.303, "C": 0.183, "G": 0.209, "T": 0.306}
	if !reflect.DeepEqual(rec.Background, wantBackground) {
		t.Errorf("background = %v, want %v", rec.Background, wantBackground)
	}

	if rec.Len() != 2 {
		t.Fatalf("record has %d motifs, want 2", rec.Len())
	}

	lexa := rec.Motifs[0]
	if lexa.Name != "LEXA" {
		t.Errorf("first motif name = %q, want LEXA", lexa.Name)
	}
	if lexa.Length != 4 || lexa.NumOccurrences != 14 || lexa.EValue != 3.2e-035 {
		t.Errorf("LEXA statistics = (%d, %d, %g), want (4, 14, 3.2e-035)",
			lexa.Length, lexa.NumOccurrences, lexa.EValue)
	}
	for _, letter := range []string{"A", "C", "G", "T"} {
		if got := len(lexa.Counts[letter]); got != lexa.Length {
			t.Errorf("LEXA counts[%s] has %d columns, want %d", letter, got, lexa.Length)
		}
	}
	if !reflect.DeepEqual(lexa.Background, rec.Background) {
		t.Errorf("motif background = %v, want the record's %v", lexa.Background, rec.Background)
	}

	// all of CRP's probabilities have exact float64 forms, so the
	// truncating count conversion is exact
	crp := rec.Motifs[1]
	wantCounts := map[string][]int{
		"A": {500000, 0, 1000000},
		"C": {250000, 750000, 0},
		"G": {250000, 125000, 0},
		"T": {0, 125000, 0},
	}
	if !reflect.DeepEqual(crp.Counts, wantCounts) {
		t.Errorf("CRP counts = %v, want %v", crp.Counts, wantCounts)
	}
	if crp.Length != 3 || crp.NumOccurrences != 17 || crp.EValue != 4.1e-009 {
		t.Errorf("CRP statistics = (%d, %d, %g), want (3, 17, 4.1e-009)",
			crp.Length, crp.NumOccurrences, crp.EValue)
	}
}

// the line ending a count matrix is not consumed: a MOTIF marker
// directly after the last matrix row still starts the next block
func Test_Read_adjacentMotifs(t *testing.T) {
	input := `MEME version 4
ALPHABET= ACGT
Background letter frequencies
A 0.25 C 0.25 G 0.25 T 0.25
MOTIF first
letter-probability matrix: alength= 4 w= 1 nsites= 5 E= 1e-002
 0.250000  0.250000  0.250000  0.250000
MOTIF second
letter-probability matrix: alength= 4 w= 1 nsites= 6 E= 2e-003
 1.000000  0.000000  0.000000  0.000000
`

	rec, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 2 {
		t.Fatalf("record has %d motifs, want 2", rec.Len())
	}
	if rec.Motifs[1].Name != "second" {
		t.Errorf("second motif name = %q, want %q", rec.Motifs[1].Name, "second")
	}
}

func Test_Read_emptyMotifSection(t *testing.T) {
	input := `MEME version 4
ALPHABET= ACGT
Background letter frequencies
A 0.25 C 0.25 G 0.25 T 0.25
`

	rec, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 0 {
		t.Errorf("record has %d motifs, want 0", rec.Len())
	}
}

// any ALPHABET= value other than the literal ACGT selects the protein
// alphabet, and the background is still read as four A/C/G/T positions
func Test_Read_proteinAlphabet(t *testing.T) {
	input := `MEME version 4
ALPHABET= ACDEFGHIKLMNPQRSTVWY
Background letter frequencies
A 0.073 C 0.018 D 0.052 E 0.062 F 0.040 G 0.069
`

	rec, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Alphabet != Protein {
		t.Errorf("alphabet = %q, want %q", rec.Alphabet, Protein)
	}
	// positions 1, 3, 5, 7 regardless of the declared alphabet
	wantBackground := map[string]float64{"A": 0.073, "C": 0.018, "G": 0.052, "T": 0.062}
	if !reflect.DeepEqual(rec.Background, wantBackground) {
		t.Errorf("background = %v, want %v", rec.Background, wantBackground)
	}
}

func Test_Read_formatErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{
			"empty input",
			"",
			"missing MEME version",
		},
		{
			"missing alphabet",
			"MEME version 4\n",
			"missing ALPHABET",
		},
		{
			"malformed alphabet line",
			"MEME version 4\nALPHABET=ACGT\n",
			"does not start with 'ALPHABET= '",
		},
		{
			"missing background",
			"MEME version 4\nALPHABET= ACGT\n",
			"missing background letter frequencies",
		},
		{
			"end of input after background marker",
			"MEME version 4\nALPHABET= ACGT\nBackground letter frequencies",
			"unexpected end of input",
		},
		{
			"short background line",
			"MEME version 4\nALPHABET= ACGT\nBackground letter frequencies\nA 0.25 C 0.25\n",
			"malformed background",
		},
		{
			"missing matrix header",
			"MEME version 4\nALPHABET= ACGT\nBackground letter frequencies\nA 0.25 C 0.25 G 0.25 T 0.25\nMOTIF LEXA\n",
			"missing letter-probability matrix line for motif LEXA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Read() did not fail")
			}

			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("Read() error = %v, want a *FormatError", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("Read() error = %q, want it to mention %q", err, tt.reason)
			}
		})
	}
}

// a MOTIF line without a name token is a structural failure, not a
// grammar one, and stays outside the FormatError taxonomy
func Test_Read_motifWithoutName(t *testing.T) {
	input := `MEME version 4
ALPHABET= ACGT
Background letter frequencies
A 0.25 C 0.25 G 0.25 T 0.25
MOTIF
`

	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatal("Read() did not fail")
	}

	var ferr *FormatError
	if errors.As(err, &ferr) {
		t.Errorf("Read() error = %v, want a plain error, not a *FormatError", err)
	}
	if !strings.Contains(err.Error(), "missing name") {
		t.Errorf("Read() error = %q, want it to mention the missing name", err)
	}
}

func Test_Read_malformedMatrixRow(t *testing.T) {
	input := `MEME version 4
ALPHABET= ACGT
Background letter frequencies
A 0.25 C 0.25 G 0.25 T 0.25
MOTIF LEXA
letter-probability matrix: alength= 4 w= 1 nsites= 5 E= 1e-002
 0.250000  x  0.250000  0.250000
`

	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatal("Read() did not fail")
	}
	if !strings.Contains(err.Error(), "malformed letter-probability matrix row") {
		t.Errorf("Read() error = %q, want a malformed matrix row error", err)
	}
}

func Test_fieldAfter(t *testing.T) {
	line := "letter-probability matrix: alength= 4 w= 19 nsites= 17 E= 4.1e-009"

	tests := []struct {
		key  string
		want string
	}{
		{"w=", "19"},
		{"nsites=", "17"},
		{"E=", "4.1e-009"},
		{"alength=", "4"},
	}

	for _, tt := range tests {
		got, err := fieldAfter(line, tt.key)
		if err != nil {
			t.Fatalf("fieldAfter(%q) error: %v", tt.key, err)
		}
		if got != tt.want {
			t.Errorf("fieldAfter(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if _, err := fieldAfter(line, "llr="); err == nil {
		t.Error("fieldAfter() with an absent key did not fail")
	}
}

package meme

import "fmt"

// Record holds the results of one minimal MEME run: the report header
// plus the discovered motifs in file order. A record exclusively owns
// its motifs; they are created during parsing and appended once.
type Record struct {
	// Version of MEME that wrote the report
	Version string `json:"version"`

	// Datafile is unused, the minimal format does not carry it
	Datafile string `json:"datafile,omitempty"`

	// Command is unused, the minimal format does not carry it
	Command string `json:"command,omitempty"`

	// Alphabet declared in the report header
	Alphabet Alphabet `json:"alphabet"`

	// Background letter frequencies from the report header
	Background map[string]float64 `json:"background"`

	// Sequences is unused, the minimal format has no instance listing
	Sequences []string `json:"sequences,omitempty"`

	// Motifs in the order their MOTIF blocks appear in the report
	Motifs []*Motif `json:"motifs"`
}

// NewRecord creates an empty Record ready to accumulate motifs.
func NewRecord() *Record {
	return &Record{
		Background: map[string]float64{},
		Sequences:  []string{},
		Motifs:     []*Motif{},
	}
}

// Len is the number of motifs in the record.
func (r *Record) Len() int {
	return len(r.Motifs)
}

// FindByName returns the first motif whose name matches name exactly.
// Names are not required to be unique; the first match wins. The bool
// is false when no motif has the name.
func (r *Record) FindByName(name string) (*Motif, bool) {
	for _, m := range r.Motifs {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// At returns the motif at index i. Negative indexes count back from the
// end of the record, so At(-1) is the last motif.
func (r *Record) At(i int) (*Motif, error) {
	index := i
	if index < 0 {
		index += len(r.Motifs)
	}
	if index < 0 || index >= len(r.Motifs) {
		return nil, fmt.Errorf("motif index %d out of range [%d:%d)", i, -len(r.Motifs), len(r.Motifs))
	}
	return r.Motifs[index], nil
}

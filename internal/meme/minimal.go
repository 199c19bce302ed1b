// Package meme reads the minimal MEME motif report format into an
// in-memory Record of count matrices and summary statistics.
package meme

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"
)

// countScale converts a matrix column probability to an integer
// pseudo-count, truncating toward zero.
const countScale = 1000000

// FormatError reports input that does not follow the minimal MEME grammar:
// a section marker missing before the input ran out, or a marker line
// failing its shape check.
type FormatError struct {
	// Reason names the missing or malformed section
	Reason string

	// Line is the offending line, empty when the input was exhausted instead
	Line string
}

func (e *FormatError) Error() string {
	if e.Line == "" {
		return "minimal meme: " + e.Reason
	}
	return fmt.Sprintf("minimal meme: %s: %q", e.Reason, e.Line)
}

// cursor is a forward-only reader over the input's lines with one line
// of pushback, so a scan can stop at the first line of the next section
// without consuming it.
type cursor struct {
	lines []string
	pos   int
}

// next returns the line under the cursor and advances. The bool is
// false once the input is exhausted.
func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// backup rewinds the cursor by one line. Only valid directly after next.
func (c *cursor) backup() {
	if c.pos > 0 {
		c.pos--
	}
}

// seek advances to the first line starting with prefix and returns it,
// consuming everything before it. The bool is false on exhaustion.
func (c *cursor) seek(prefix string) (string, bool) {
	for {
		line, ok := c.next()
		if !ok {
			return "", false
		}
		if strings.HasPrefix(line, prefix) {
			return line, true
		}
	}
}

// Read parses minimal MEME text from r into a Record: the format
// version, the declared alphabet, the background letter frequencies,
// then one motif per MOTIF block until the input runs out. A header
// with zero MOTIF blocks parses to an empty record.
//
// The background line is always read as four A/C/G/T frequencies, even
// when the declared alphabet is protein. That narrowing matches the
// original Biopython reader and is kept as-is.
func Read(r io.Reader) (*Record, error) {
	dat, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read minimal meme input: %v", err)
	}

	cur := &cursor{lines: strings.Split(string(dat), "\n")}
	rec := NewRecord()

	if rec.Version, err = readVersion(cur); err != nil {
		return nil, err
	}
	if rec.Alphabet, err = readAlphabet(cur); err != nil {
		return nil, err
	}
	if rec.Background, err = readBackground(cur); err != nil {
		return nil, err
	}

	for {
		line, ok := cur.seek("MOTIF")
		if !ok {
			// no further MOTIF blocks: the normal end of a record
			return rec, nil
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("motif line %q: missing name", line)
		}
		name := fields[1]

		length, nsites, evalue, err := readMotifStatistics(cur, name)
		if err != nil {
			return nil, err
		}
		counts, err := readCounts(cur)
		if err != nil {
			return nil, err
		}

		rec.Motifs = append(rec.Motifs, &Motif{
			Name:           name,
			Alphabet:       rec.Alphabet,
			Counts:         counts,
			Length:         length,
			NumOccurrences: nsites,
			EValue:         evalue,
			Background:     rec.Background,
		})
	}
}

// ReadFile parses the minimal MEME report at path.
func ReadFile(path string) (*Record, error) {
	var err error
	if !filepath.IsAbs(path) {
		if path, err = filepath.Abs(path); err != nil {
			return nil, fmt.Errorf("failed to create path to minimal meme file: %v", err)
		}
	}

	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input minimal meme path: %v", err)
	}

	return Read(bytes.NewReader(dat))
}

// readVersion scans for the "MEME version" line and returns its third
// token. The version's shape is not validated.
func readVersion(cur *cursor) (string, error) {
	line, ok := cur.seek("MEME version")
	if !ok {
		return "", &FormatError{Reason: "missing MEME version line"}
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", &FormatError{Reason: "malformed MEME version line", Line: line}
	}
	return fields[2], nil
}

// readAlphabet scans for the ALPHABET line. The literal payload "ACGT"
// selects the DNA alphabet; anything else is read as protein. The
// minimal format makes no finer distinction.
func readAlphabet(cur *cursor) (Alphabet, error) {
	line, ok := cur.seek("ALPHABET")
	if !ok {
		return "", &FormatError{Reason: "missing ALPHABET line"}
	}
	if !strings.HasPrefix(line, "ALPHABET= ") {
		return "", &FormatError{Reason: "line does not start with 'ALPHABET= '", Line: line}
	}

	if strings.TrimSpace(strings.TrimPrefix(line, "ALPHABET= ")) == "ACGT" {
		return UnambiguousDNA, nil
	}
	return Protein, nil
}

// readBackground scans for the background frequencies marker and reads
// the interleaved letter/frequency line that follows it, ex:
//	A 0.303 C 0.183 G 0.209 T 0.306
func readBackground(cur *cursor) (map[string]float64, error) {
	if _, ok := cur.seek("Background letter frequencies"); !ok {
		return nil, &FormatError{Reason: "missing background letter frequencies line"}
	}

	line, ok := cur.next()
	if !ok {
		return nil, &FormatError{Reason: "unexpected end of input after background letter frequencies line"}
	}

	fields := strings.Fields(line)
	if len(fields) < 8 {
		return nil, &FormatError{Reason: "malformed background letter frequencies line", Line: line}
	}

	background := make(map[string]float64, 4)
	for i, letter := range []string{"A", "C", "G", "T"} {
		freq, err := strconv.ParseFloat(fields[i*2+1], 64)
		if err != nil {
			return nil, &FormatError{Reason: "malformed background letter frequencies line", Line: line}
		}
		background[letter] = freq
	}
	return background, nil
}

// readMotifStatistics scans for the statistics line of a MOTIF block, ex:
//	letter-probability matrix: alength= 4 w= 19 nsites= 17 E= 4.1e-009
// and extracts the motif's width, site count and E-value. Extraction is
// substring based, so the order of the keys on the line does not matter.
func readMotifStatistics(cur *cursor, name string) (length, nsites int, evalue float64, err error) {
	line, ok := cur.seek("letter-probability matrix:")
	if !ok {
		err = &FormatError{Reason: "missing letter-probability matrix line for motif " + name}
		return
	}

	var field string
	if field, err = fieldAfter(line, "w="); err == nil {
		length, err = strconv.Atoi(field)
	}
	if err != nil {
		return
	}
	if field, err = fieldAfter(line, "nsites="); err == nil {
		nsites, err = strconv.Atoi(field)
	}
	if err != nil {
		return
	}
	if field, err = fieldAfter(line, "E="); err == nil {
		evalue, err = strconv.ParseFloat(field, 64)
	}
	return
}

// fieldAfter returns the whitespace-delimited token directly after the
// first occurrence of key in line.
func fieldAfter(line, key string) (string, error) {
	parts := strings.SplitN(line, key, 2)
	if len(parts) < 2 {
		return "", &FormatError{Reason: "statistics line is missing '" + key + "'", Line: line}
	}

	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return "", &FormatError{Reason: "statistics line has no value after '" + key + "'", Line: line}
	}
	return fields[0], nil
}

// readCounts consumes matrix rows of exactly four columns, in fixed
// A C G T order, converting each probability to an integer pseudo-count.
// The first line that is not a four-column row ends the matrix and is
// pushed back for the caller's next scan.
func readCounts(cur *cursor) (map[string][]int, error) {
	letters := []string{"A", "C", "G", "T"}
	counts := map[string][]int{"A": {}, "C": {}, "G": {}, "T": {}}

	for {
		line, ok := cur.next()
		if !ok {
			return counts, nil
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			cur.backup()
			return counts, nil
		}

		var column [4]int
		for i, field := range fields {
			freq, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &FormatError{Reason: "malformed letter-probability matrix row", Line: line}
			}
			column[i] = int(freq * countScale)
		}
		for i, letter := range letters {
			counts[letter] = append(counts[letter], column[i])
		}
	}
}

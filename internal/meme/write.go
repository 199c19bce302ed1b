package meme

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/sak-codes/biopython/config"
)

// Report is the JSON document written for a parsed record.
type Report struct {
	// Source is the path of the parsed minimal MEME report
	Source string `json:"source"`

	// Time the report was written, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Record holds the header and motifs read from Source
	Record *Record `json:"record"`
}

// Write marshals a parsed record to an indented JSON report at filename
// and returns the written bytes.
func Write(filename, source string, rec *Record) ([]byte, error) {
	c := config.New()

	// same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	report := Report{
		Source: source,
		Time:   stamp,
		Record: rec,
	}

	output, err := json.MarshalIndent(report, "", c.Output.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize the record: %v", err)
	}

	if err = ioutil.WriteFile(filename, output, 0666); err != nil {
		return nil, fmt.Errorf("failed to write the record to %s: %v", filename, err)
	}
	return output, nil
}

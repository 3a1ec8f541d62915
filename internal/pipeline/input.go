package pipeline

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
)

// Input yields source records one at a time and returns io.EOF when done.
type Input interface {
	Next() ([]string, error)
}

type lineInput struct {
	scanner *bufio.Scanner
}

// NewLineInput reads a list file. Each non-blank line is one single-field
// record, trimmed of surrounding whitespace.
func NewLineInput(r io.Reader) Input {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	return &lineInput{scanner: scanner}
}

func (in *lineInput) Next() ([]string, error) {
	for in.scanner.Scan() {
		line := strings.TrimSpace(in.scanner.Text())
		if line == "" {
			continue
		}
		return []string{line}, nil
	}
	if err := in.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

type csvInput struct {
	reader *csv.Reader
}

// NewCSVInput reads a CSV file without a header row. Rows may have any number
// of columns; short rows are rejected later by the resolver.
func NewCSVInput(r io.Reader) Input {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &csvInput{reader: reader}
}

func (in *csvInput) Next() ([]string, error) {
	return in.reader.Read()
}

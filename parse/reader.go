package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// StdinSource is the source label used for records read from standard input.
const StdinSource = "<stdin>"

// maxLineSize bounds a single input line; string tables can carry long
// translated paragraphs on one line.
const maxLineSize = 1 << 20

// ReadRecords reads every line of r and returns the records in input order.
// Malformed lines are handed to report and skipped. Only read errors are
// returned.
func ReadRecords(r io.Reader, source string, report func(*Diagnostic)) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := InterpretLine(source, lineNo, scanner.Text())
		if err != nil {
			var diag *Diagnostic
			if errors.As(err, &diag) && report != nil {
				report(diag)
			}
			continue
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}

	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("read %s: %w", source, err)
	}
	return records, nil
}

package randsource

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadDraws loads a fixed sequence of uniform draws from a text file.
func ReadDraws(filename string) (*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open draws file")
	}
	defer file.Close()

	values, err := ParseDraws(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	return NewSequence(values...), nil
}

// ParseDraws reads whitespace separated numbers, any number per line.
// Blank lines and lines starting with '#' are skipped, as is a leading
// line without a single number in it (a column header). Every value has
// to lie in [0, 1); NaN is rejected.
func ParseDraws(r io.Reader) ([]float64, error) {
	var values []float64
	scanner := bufio.NewScanner(r)
	lineNo := 0
	seenData := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if !seenData {
			seenData = true
			if noneNumeric(fields) {
				continue
			}
		}

		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse draw at line %d, column %d", lineNo, i+1)
			}
			if !(v >= 0 && v < 1) {
				return nil, errors.Errorf("draw %v at line %d, column %d is outside [0, 1)", v, lineNo, i+1)
			}
			values = append(values, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading draws")
	}
	return values, nil
}

func noneNumeric(fields []string) bool {
	for _, field := range fields {
		if _, err := strconv.ParseFloat(field, 64); err == nil {
			return false
		}
	}
	return true
}

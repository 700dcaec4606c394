// Package console holds the optional interactive prompt.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NoValue is returned by ReadInt when nothing usable was entered.
const NoValue = -1

// ReadInt reads a single line and parses it as a base 10 integer. A read
// error, an empty stream or a malformed number all give NoValue.
func ReadInt(r io.Reader) int {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return NoValue
	}
	n, err := strconv.Atoi(strings.TrimRight(line, "\r\n"))
	if err != nil {
		return NoValue
	}
	return n
}

// Ask prints prompt to w and reads the answer from r. If the prompt
// cannot be shown nothing is read and NoValue is returned.
func Ask(w io.Writer, r io.Reader, prompt string) int {
	if _, err := fmt.Fprintln(w, prompt); err != nil {
		return NoValue
	}
	return ReadInt(r)
}

package lotto

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is a line-based LineReader and LinePrinter over a reader/writer pair
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console reading from in and writing to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine writes prompt as is and returns the next input line without its
// line terminator. A final line without a newline is still returned; io.EOF
// follows once nothing is left.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return "", err
		}
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PrintLine writes text followed by a newline
func (c *Console) PrintLine(text string) {
	fmt.Fprintln(c.out, text)
}

package admin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalPasswordReader reads passwords from stdin without echo when it
// is a terminal, and line by line otherwise so the binary can be scripted.
type TerminalPasswordReader struct {
	in     *os.File
	prompt io.Writer
	lines  *bufio.Reader
}

func NewTerminalPasswordReader() *TerminalPasswordReader {
	return &TerminalPasswordReader{in: os.Stdin, prompt: os.Stderr}
}

func (r *TerminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(r.prompt, prompt)

	fd := int(r.in.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(r.prompt)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}

	if r.lines == nil {
		r.lines = bufio.NewReader(r.in)
	}
	line, err := r.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

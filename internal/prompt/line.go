package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Line prompts by reading whole lines. Passwords are read without echo when
// the input is a terminal.
type Line struct {
	file   *os.File
	reader *bufio.Reader
	out    io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	line := &Line{
		reader: bufio.NewReader(in),
		out:    out,
	}
	if file, ok := in.(*os.File); ok {
		line.file = file
	}
	return line
}

func (l *Line) Input(title string) (string, error) {
	fmt.Fprint(l.out, title)
	return l.readLine()
}

func (l *Line) Password(title string) (string, error) {
	fmt.Fprint(l.out, title)

	if l.file == nil || l.reader.Buffered() > 0 || !term.IsTerminal(int(l.file.Fd())) {
		return l.readLine()
	}

	password, err := term.ReadPassword(int(l.file.Fd()))
	fmt.Fprintln(l.out) // New line after hidden input
	if err != nil {
		if isEOF(err) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}

func (l *Line) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if isEOF(err) && len(line) == 0 {
			return "", ErrAborted
		}
		if !isEOF(err) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

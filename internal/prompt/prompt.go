package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels a prompt (Ctrl-C, EOF)
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user a single question at a time
type Prompter interface {
	Input(title string) (string, error)
	// Password reads a value without echoing it back
	Password(title string) (string, error)
}

// New picks the form prompter for interactive terminals and falls back to
// plain line reads for pipes or when plain is requested.
func New(in *os.File, out *os.File, plain bool) Prompter {
	if plain || !isatty.IsTerminal(in.Fd()) || !isatty.IsTerminal(out.Fd()) {
		return NewLine(in, out)
	}
	return NewForm(in, out)
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

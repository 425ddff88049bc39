package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

// Form prompts with huh input fields
type Form struct {
	in  io.Reader
	out io.Writer
}

func NewForm(in io.Reader, out io.Writer) *Form {
	return &Form{in: in, out: out}
}

func (f *Form) Input(title string) (string, error) {
	return f.run(title, huh.EchoModeNormal)
}

func (f *Form) Password(title string) (string, error) {
	return f.run(title, huh.EchoModePassword)
}

func (f *Form) run(title string, mode huh.EchoMode) (string, error) {
	var value string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Inline(true).
				EchoMode(mode).
				Value(&value),
		),
	).
		WithInput(f.in).
		WithOutput(f.out).
		WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return value, nil
}

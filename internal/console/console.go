package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Console is the output sink for everything the user sees. Styles are bound
// to the writer's renderer so non-terminal writers get plain text.
type Console struct {
	out    io.Writer
	styles Styles
}

func New(out io.Writer) *Console {
	return &Console{
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

func Stdout() *Console {
	return New(os.Stdout)
}

func (c *Console) Writer() io.Writer {
	return c.out
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Menu(text string) {
	c.Println(c.styles.Menu.Render(text))
}

func (c *Console) Info(text string) {
	c.Println(c.styles.Info.Render(text))
}

func (c *Console) Success(text string) {
	c.Println(c.styles.Success.Render(text))
}

func (c *Console) Warning(text string) {
	c.Println(c.styles.Warning.Render(text))
}

func (c *Console) Error(text string) {
	c.Println(c.styles.Error.Render(text))
}

// Link prints a "label : url" line with the url highlighted
func (c *Console) Link(label string, url string) {
	c.Printf("%s: %s\n", label, c.styles.Cmds.Render(url))
}

package terminal

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thand-io/terminal/internal/console"
	"github.com/thand-io/terminal/internal/models"
	"github.com/thand-io/terminal/internal/prompt"
)

const PROMPT = "terminal > "

// Logouter revokes a session, both remotely and locally
type Logouter interface {
	Logout(ctx context.Context, session models.Session) error
}

// Terminal is the command loop entered after login or in guest mode
type Terminal struct {
	console  *console.Console
	prompter prompt.Prompter
	hub      Logouter

	session models.Session
	done    bool
}

func New(out *console.Console, prompter prompt.Prompter, hub Logouter) *Terminal {
	return &Terminal{
		console:  out,
		prompter: prompter,
		hub:      hub,
	}
}

// Launch runs the command loop until the user exits, logs out or aborts
// the prompt.
func (t *Terminal) Launch(ctx context.Context, session models.Session) error {

	t.session = session
	t.done = false

	logrus.WithFields(logrus.Fields{
		"guest": !session.IsValid(),
	}).Debugln("Terminal launched")

	if t.IsGuest() {
		t.console.Info("Running in guest mode. Type 'help' to list the available commands.")
	} else {
		t.console.Info("Type 'help' to list the available commands.")
	}

	for !t.done {

		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := t.prompter.Input(PROMPT)
		if errors.Is(err, prompt.ErrAborted) {
			t.console.Println()
			return nil
		}
		if err != nil {
			return err
		}

		if err := t.Execute(ctx, line); err != nil {
			t.console.Error(err.Error())
		}
	}

	return nil
}

func (t *Terminal) IsGuest() bool {
	return !t.session.IsValid()
}

// Execute runs a single command line
func (t *Terminal) Execute(ctx context.Context, line string) error {

	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	root := t.commands()
	root.SetArgs(args)
	root.SetOut(t.console.Writer())
	root.SetErr(t.console.Writer())

	return root.ExecuteContext(ctx)
}

func (t *Terminal) commands() *cobra.Command {

	root := &cobra.Command{
		Use:           "terminal",
		Short:         "Terminal commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the current login state",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				if t.IsGuest() {
					t.console.Println("Guest mode")
					return
				}
				if uuid := t.session.UUID(); len(uuid) > 0 {
					t.console.Printf("Logged in (session %s)\n", uuid)
					return
				}
				t.console.Println("Logged in")
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Log out and forget the remembered session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if t.IsGuest() {
					t.console.Warning("You are not logged in.")
					return nil
				}
				if err := t.hub.Logout(cmd.Context(), t.session); err != nil {
					return err
				}
				t.console.Success("Logged out.")
				t.session = nil
				t.done = true
				return nil
			},
		},
		&cobra.Command{
			Use:     "exit",
			Aliases: []string{"quit", "q"},
			Short:   "Leave the terminal",
			Args:    cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				t.done = true
			},
		},
	)

	return root
}

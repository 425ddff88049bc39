package login

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/thand-io/terminal/internal/banner"
	"github.com/thand-io/terminal/internal/console"
	"github.com/thand-io/terminal/internal/models"
	"github.com/thand-io/terminal/internal/prompt"
)

const (
	DEFAULT_REGISTER_URL = "https://my.openbb.co/register"
	DEFAULT_SUPPORT_URL  = "https://openbb.co/support"
)

// SessionService exchanges credentials for sessions and validates them
type SessionService interface {
	CreateSession(ctx context.Context, email string, password string, save bool) (models.Session, error)
	Login(ctx context.Context, session models.Session) (models.LoginStatus, error)
}

// SessionStore holds the session remembered from a previous run
type SessionStore interface {
	GetSession() (models.Session, error)
}

// Launcher runs the terminal. A nil session means guest mode.
type Launcher interface {
	Launch(ctx context.Context, session models.Session) error
}

type Options struct {
	GuestAllowed bool
	BannerPath   string
	RegisterUrl  string
	SupportUrl   string
}

// Flow walks the user from the welcome banner to a running terminal
type Flow struct {
	console  *console.Console
	prompter prompt.Prompter
	service  SessionService
	store    SessionStore
	launcher Launcher
	options  Options
}

func NewFlow(
	out *console.Console,
	prompter prompt.Prompter,
	service SessionService,
	store SessionStore,
	launcher Launcher,
	options Options,
) *Flow {

	if len(options.RegisterUrl) == 0 {
		options.RegisterUrl = DEFAULT_REGISTER_URL
	}
	if len(options.SupportUrl) == 0 {
		options.SupportUrl = DEFAULT_SUPPORT_URL
	}

	return &Flow{
		console:  out,
		prompter: prompter,
		service:  service,
		store:    store,
		launcher: launcher,
		options:  options,
	}
}

// Main logs in with the remembered session if there is one, otherwise it
// starts the interactive prompt with the welcome banner.
func (f *Flow) Main(ctx context.Context) error {

	session, err := f.store.GetSession()
	if err != nil {
		return fmt.Errorf("failed to read local session: %w", err)
	}

	if !session.IsValid() {
		return f.Prompt(ctx, true)
	}

	logrus.Debugln("Found local session, skipping prompt")

	return f.LoginAndLaunch(ctx, session)
}

// Prompt asks for credentials until the terminal is launched
func (f *Flow) Prompt(ctx context.Context, welcome bool) error {
	if welcome {
		return f.run(ctx, stateWelcome, nil)
	}
	return f.run(ctx, statePrompting, nil)
}

// LoginAndLaunch validates the session and launches the terminal, falling
// back to the prompt when the hub does not accept it.
func (f *Flow) LoginAndLaunch(ctx context.Context, session models.Session) error {
	return f.run(ctx, stateAuthenticating, session)
}

func (f *Flow) run(ctx context.Context, current state, session models.Session) error {

	for {

		if err := ctx.Err(); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"state": current,
		}).Debugln("Login flow")

		switch current {

		case stateWelcome:

			if err := f.DisplayWelcomeMessage(); err != nil {
				return err
			}
			current = statePrompting

		case statePrompting:

			credentials, err := f.GetUserInput()
			if err != nil {
				return err
			}

			if credentials.IsEmpty() {
				if f.options.GuestAllowed {
					session = nil
					current = stateLaunched
				}
				continue
			}

			session, err = f.service.CreateSession(
				ctx, credentials.Email, credentials.Password, credentials.Save)
			if err != nil {
				return err
			}

			if !session.IsValid() {
				f.console.Warning("Could not create a session with those credentials.")
				continue
			}

			current = stateAuthenticating

		case stateAuthenticating:

			status, err := f.service.Login(ctx, session)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"status": status,
			}).Debugln("Login attempt finished")

			switch status {
			case models.LoginStatusSuccess:
				current = stateLaunched
			case models.LoginStatusFailed:
				f.console.Warning("Login failed, please try again.")
				current = statePrompting
			default:
				f.console.Warning("Could not reach the hub, please try again.")
				current = stateWelcome
			}

		case stateLaunched:

			if session.IsValid() {
				f.console.Success("Login successful!")
			} else {
				logrus.Debugln("Launching terminal in guest mode")
			}

			return f.launcher.Launch(ctx, session)

		default:
			return fmt.Errorf("unknown login state: %d", current)
		}
	}
}

// GetUserInput reads email, password and the remember me choice. An empty
// email returns empty credentials straight away, which is the guest signal.
func (f *Flow) GetUserInput() (models.Credentials, error) {

	f.console.Println()
	f.console.Info("Please enter your credentials or press enter for guest mode:")

	email, err := f.prompter.Input("> Email: ")
	if err != nil {
		return models.Credentials{}, err
	}

	if len(email) == 0 {
		return models.Credentials{}, nil
	}

	password, err := f.prompter.Password("> Password: ")
	if err != nil {
		return models.Credentials{}, err
	}

	saveStr, err := f.prompter.Input("> Remember me? (y/n): ")
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{
		Email:    email,
		Password: password,
		Save:     strings.ToLower(saveStr) == "y",
	}, nil
}

func (f *Flow) DisplayWelcomeMessage() error {

	text, err := banner.Load(f.options.BannerPath)
	if err != nil {
		return err
	}

	f.console.Menu(strings.TrimRight(text, "\n"))
	f.console.Println()
	f.console.Link("Register     ", f.options.RegisterUrl)
	f.console.Link("Ask support  ", f.options.SupportUrl)

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thand-io/terminal/internal/config"
	"github.com/thand-io/terminal/internal/console"
	"github.com/thand-io/terminal/internal/hub"
	"github.com/thand-io/terminal/internal/login"
	"github.com/thand-io/terminal/internal/prompt"
	"github.com/thand-io/terminal/internal/sessions"
	"github.com/thand-io/terminal/internal/terminal"
)

// Global configuration instance
var cfg *config.Config
var sessionManager *sessions.SessionManager
var hubClient *hub.Client

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func preRunConfigE(cmd *cobra.Command, _ []string) error {
	// Load configuration before any command runs
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Get the login server override from the flag
	loginServer, err := cmd.Flags().GetString("login-server")
	if err == nil && len(loginServer) > 0 {
		if err := cfg.SetLoginServer(loginServer); err != nil {
			return fmt.Errorf("failed to set login server: %w", err)
		}
	}

	noGuest, err := cmd.Flags().GetBool("no-guest")
	if err == nil && noGuest {
		cfg.Session.GuestAllowed = false
	}

	plain, err := cmd.Flags().GetBool("plain")
	if err == nil && plain {
		cfg.Terminal.Plain = true
	}

	// Load the users session state before any command runs
	sessionManager, err = sessions.NewSessionManager(
		cfg.Session.Path,
		cfg.GetLoginServerHostname(),
	)
	if err != nil {
		return fmt.Errorf("failed to load session state: %w", err)
	}

	hubClient = hub.NewClient(
		cfg.GetLoginServerUrl(),
		cfg.Login.Timeout,
		sessionManager,
	)

	logrus.WithFields(logrus.Fields{
		"loginServer":  cfg.GetLoginServerUrl(),
		"sessionFile":  sessionManager.GetFile(),
		"guestAllowed": cfg.IsGuestAllowed(),
	}).Debugln("Configuration loaded")

	return nil
}

// newLoginFlow wires the prompt, hub, local session store and terminal
func newLoginFlow(out *console.Console) *login.Flow {

	// The terminal shares the prompter so both read stdin through one reader
	prompter := prompt.New(os.Stdin, os.Stdout, cfg.Terminal.Plain)

	return login.NewFlow(
		out,
		prompter,
		hubClient,
		sessionManager,
		terminal.New(out, prompter, hubClient),
		login.Options{
			GuestAllowed: cfg.IsGuestAllowed(),
			BannerPath:   cfg.Terminal.Banner,
			RegisterUrl:  cfg.Terminal.RegisterUrl,
			SupportUrl:   cfg.Terminal.SupportUrl,
		},
	)
}

// runLoginFlow runs fn with the wired login flow. Aborting a prompt is a
// normal way to leave and is not reported as an error. SIGINT keeps its
// default behaviour here so a blocked line read is interrupted too.
func runLoginFlow(fn func(ctx context.Context, flow *login.Flow) error) error {

	out := console.Stdout()

	err := fn(context.Background(), newLoginFlow(out))

	if errors.Is(err, prompt.ErrAborted) {
		out.Println()
		logrus.Debugln("Login cancelled by user")
		return nil
	}

	return err
}

var rootCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Terminal - log in to the hub and start the terminal",
	Long: `Terminal starts with the session remembered from a previous login.
Without one you are asked for your hub credentials, or you can press
enter at the email prompt to continue in guest mode.`,
	PersistentPreRunE: preRunConfigE,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoginFlow(func(ctx context.Context, flow *login.Flow) error {
			return flow.Main(ctx)
		})
	},
}

func init() {

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.config/terminal/config.yaml)")
	rootCmd.PersistentFlags().String("login-server", "", "Override the hub URL (e.g., http://localhost:8080)")
	rootCmd.PersistentFlags().Bool("no-guest", false, "Do not allow guest mode")
	rootCmd.PersistentFlags().Bool("plain", false, "Use plain line prompts instead of interactive forms")

}

func GetCommandOptions() *cobra.Command {
	return rootCmd
}

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const annotationNoApp = "walletvault/no-app"

// reportedError marks an error whose outcome was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// CLI is the walletvault command line.
type CLI struct {
	buildInfo models.AppBuildInfo
	out       io.Writer
	printer   *printer

	// app is built on demand from configuration unless set beforehand.
	app     *App
	ownsApp bool
	cancel  context.CancelFunc
}

// NewCLI returns the command line printing to stdout.
func NewCLI(buildInfo models.AppBuildInfo) *CLI {
	return &CLI{
		buildInfo: buildInfo,
		out:       os.Stdout,
		printer:   newPrinter(os.Stdout),
	}
}

// newCLIWithApp runs commands against an already built app.
func newCLIWithApp(a *App, out io.Writer) *CLI {
	return &CLI{
		buildInfo: models.NewAppBuildInfo("", "", ""),
		out:       out,
		printer:   newPrinter(out),
		app:       a,
	}
}

// Run implements [Client].
func (c *CLI) Run(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(c.out)
	root.SetErr(c.out)

	err := root.ExecuteContext(ctx)
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		c.printer.Notify(app.Failure(err.Error(), ""))
	}
	return errors.Join(err, c.teardown())
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "walletvault",
		Short: "Keep platform credentials in a vault keyed by your wallet address",
		Long: `walletvault stores login credentials for Instagram, Discord and LinkedIn,
encrypted with a key derived from your wallet address.

The web-app commands (connect, save, list) write the vault; the ext commands
read it the way the browser extension does, through storage only.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.connectCommand(),
		c.disconnectCommand(),
		c.whoamiCommand(),
		c.saveCommand(),
		c.listCommand(),
		c.hasCommand(),
		c.extCommand(),
		c.versionCommand(),
	)
	return root
}

// setup loads configuration and builds the app before any command that
// needs storage.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if !needsApp(cmd) {
		return nil
	}

	if c.app == nil {
		cfg, err := config.GetStructuredConfig(cmd.Flags())
		if err != nil {
			return err
		}
		if err = logger.SetLevel(cfg.Log.Level); err != nil {
			return err
		}
		log := logger.NewFileLogger("walletvault", cfg.Log.File)

		a, err := NewApp(cmd.Context(), cfg, log)
		if err != nil {
			log.Err(err).Msg("init app error")
			return err
		}
		c.app = a
		c.ownsApp = true
	}

	ctx := c.app.log.WithContext(cmd.Context())
	if c.app.timeout > 0 {
		ctx, c.cancel = context.WithTimeout(ctx, c.app.timeout)
	}
	cmd.SetContext(ctx)
	return nil
}

func needsApp(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		if cmd.Annotations[annotationNoApp] == "true" {
			return false
		}
		switch cmd.Name() {
		case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd, "completion":
			return false
		}
	}
	return true
}

// teardown cancels the command context and closes an app built by setup.
func (c *CLI) teardown() error {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.ownsApp && c.app != nil {
		err := c.app.Close()
		c.app = nil
		c.ownsApp = false
		return err
	}
	return nil
}

// report shows the outcome of err and returns it marked as reported.
// notFound is the message used for a not-found outcome.
func (c *CLI) report(ctx context.Context, err error, notFound string) error {
	outcome := outcomeFromError(err, notFound)
	if outcome.Kind == app.OutcomeError {
		logger.FromContext(ctx).Err(err).Str("func", "*CLI.report").Msg(outcome.Message)
	}
	c.printer.Notify(outcome)
	return &reportedError{err: fmt.Errorf("%s: %w", outcome.Message, err)}
}

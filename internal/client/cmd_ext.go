package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// extCommand groups the extension's read path. Its subcommands use the
// extension domain and the shared substrate only, never the web app's
// session.
func (c *CLI) extCommand() *cobra.Command {
	ext := &cobra.Command{
		Use:   "ext",
		Short: "Read the vault the way the browser extension does",
	}
	ext.AddCommand(c.extResolveCommand(), c.extStatusCommand(), c.extLookupCommand())
	return ext
}

func (c *CLI) extResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the wallet published to the extension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := c.app.services.Sync.Resolve(cmd.Context())
			if err != nil {
				return c.report(cmd.Context(), err, app.MsgNoWalletPublished)
			}
			c.printer.Printf("%s\n", wallet)
			return nil
		},
	}
}

func (c *CLI) extStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which platforms have credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.services.Extension.PlatformStatuses(cmd.Context())
			if err != nil {
				return c.report(cmd.Context(), err, app.MsgNoWalletPublished)
			}

			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				state := warningText.Sprint("not registered")
				if s.Registered {
					state = successText.Sprint("registered")
				}
				rows = append(rows, []string{s.Platform.DisplayName(), state})
			}
			c.printer.Table([]string{"PLATFORM", "STATUS"}, rows)
			return nil
		},
	}
}

func (c *CLI) extLookupCommand() *cobra.Command {
	var (
		pageURL      string
		platformName string
		copyPassword bool
	)

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find the credentials for a page or platform",
		Long:  `Lookup returns the credentials of the published wallet for the platform a page belongs to, or for the named platform.`,
		Example: `  walletvault ext lookup --url https://www.instagram.com/accounts/login/
  walletvault ext lookup --platform discord --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var platform models.Platform
			switch {
			case platformName != "":
				p, err := models.ParsePlatform(platformName)
				if err != nil {
					return c.report(ctx, err, app.MsgUnknownPlatform)
				}
				platform = p
			case pageURL != "":
				p, ok := models.DetectPlatform(pageURL)
				if !ok {
					return c.report(ctx, fmt.Errorf("%w: %s", errUnknownSite, pageURL), app.MsgUnknownSite)
				}
				platform = p
			default:
				return errNoLookupTarget
			}

			entry, err := c.app.services.Extension.Lookup(ctx, platform)
			if err != nil {
				return c.report(ctx, err, app.MsgCredentialNotFound)
			}
			if entry.DecryptionError() {
				return c.report(ctx, entry.Err, app.MsgCredentialNotFound)
			}

			c.printer.Printf("Platform: %s\n", accentText.Sprint(entry.Platform.DisplayName()))
			c.printer.Printf("Username: %s\n", entry.Username)
			if copyPassword {
				if err = c.app.clipboard.WriteAll(entry.Password); err != nil {
					return c.report(ctx, err, app.MsgCredentialNotFound)
				}
				c.printer.Notify(app.Success(app.MsgCopiedToClipboard))
				return nil
			}
			c.printer.Printf("Password: %s\n", secretText.Sprint(entry.Password))
			return nil
		},
	}

	cmd.Flags().StringVar(&pageURL, "url", "", "Page URL to detect the platform from")
	cmd.Flags().StringVarP(&platformName, "platform", "p", "", "Platform (instagram, discord, linkedin)")
	cmd.Flags().BoolVar(&copyPassword, "copy", false, "Copy the password to the clipboard instead of printing it")
	cmd.MarkFlagsMutuallyExclusive("url", "platform")
	return cmd
}

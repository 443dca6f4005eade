package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func (c *CLI) saveCommand() *cobra.Command {
	var (
		platformName string
		username     string
		password     string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save credentials for a platform",
		Long: fmt.Sprintf(`Save adds credentials for one platform to the wallet's vault. Each platform
can be saved once; existing entries are never replaced.

Usernames need at least %d characters and passwords at least %d. Without
--password the password is asked for without echo.`, validators.MinUsernameLength, validators.MinPasswordLength),
		Example: `  walletvault save --platform instagram --username alice
  walletvault save -p discord -u bob --password hunter22`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			wallet, err := c.walletFor(cmd)
			if err != nil {
				return c.report(ctx, err, app.MsgNoWalletConnected)
			}

			platform, err := models.ParsePlatform(platformName)
			if err != nil {
				return c.report(ctx, err, app.MsgUnknownPlatform)
			}

			if password == "" {
				if password, err = readSecret(c.app.in, c.out, "Password: "); err != nil {
					return c.report(ctx, err, app.MsgInvalidDataProvided)
				}
			}

			credential := models.Credential{Platform: platform, Username: username, Password: password}
			if err = validators.NewFormValidator().Validate(ctx, credential); err != nil {
				return c.report(ctx, err, app.MsgInvalidDataProvided)
			}

			entry, err := c.app.services.Vault.Save(ctx, wallet, credential)
			if err != nil {
				return c.report(ctx, err, app.MsgNoWalletConnected)
			}

			c.printer.Notify(app.Success(app.MsgCredentialSaved))
			c.printer.Printf("%s  %s  %s\n",
				accentText.Sprint(entry.Platform.DisplayName()), entry.Username, mutedText.Sprint(entry.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&platformName, "platform", "p", "", "Platform (instagram, discord, linkedin)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username on the platform")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("username")
	addWalletFlag(cmd)
	return cmd
}

func (c *CLI) listCommand() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved credentials",
		Long:  `List shows the wallet's saved credentials. Passwords stay hidden unless --reveal is given; an entry whose password cannot be decrypted is marked instead.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			wallet, err := c.walletFor(cmd)
			if err != nil {
				return c.report(ctx, err, app.MsgNoWalletConnected)
			}

			listing, err := c.app.services.Vault.GetAll(ctx, wallet)
			if err != nil {
				return c.report(ctx, err, app.MsgNoCredentials)
			}
			switch listing.Status {
			case models.VaultAbsent:
				c.printer.Notify(app.Warning(app.MsgNoCredentials))
				return nil
			case models.VaultUnreadable:
				return c.report(ctx, fmt.Errorf("%w: %w", service.ErrVaultUnreadable, listing.Err), app.MsgNoCredentials)
			}

			if !reveal {
				rows := make([][]string, 0, len(listing.Entries))
				for _, e := range listing.Entries {
					rows = append(rows, []string{e.Platform.DisplayName(), e.Username, mutedText.Sprint(e.ID)})
				}
				c.printer.Table([]string{"PLATFORM", "USERNAME", "ID"}, rows)
				return nil
			}

			revealed, err := c.app.services.Vault.RevealAll(ctx, wallet)
			if err != nil {
				return c.report(ctx, err, app.MsgNoCredentials)
			}
			rows := make([][]string, 0, len(revealed))
			for _, e := range revealed {
				password := secretText.Sprint(e.Password)
				if e.DecryptionError() {
					password = errorText.Sprint(app.MsgDecryptionError)
				}
				rows = append(rows, []string{e.Platform.DisplayName(), e.Username, password})
			}
			c.printer.Table([]string{"PLATFORM", "USERNAME", "PASSWORD"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show decrypted passwords")
	addWalletFlag(cmd)
	return cmd
}

func (c *CLI) hasCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "has <platform>",
		Short:   "Tell whether credentials are saved for a platform",
		Example: `  walletvault has instagram`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			wallet, err := c.walletFor(cmd)
			if err != nil {
				return c.report(ctx, err, app.MsgNoWalletConnected)
			}

			platform, err := models.ParsePlatform(args[0])
			if err != nil {
				return c.report(ctx, err, app.MsgUnknownPlatform)
			}

			if c.app.services.Vault.HasCredential(ctx, wallet, platform) {
				c.printer.Printf("%s\n", successText.Sprint("yes"))
			} else {
				c.printer.Printf("%s\n", warningText.Sprint("no"))
			}
			return nil
		},
	}
	addWalletFlag(cmd)
	return cmd
}

package client

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func (c *CLI) connectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "connect [address]",
		Short: "Connect a wallet and publish it to the extension",
		Long: `Connect remembers the wallet address for later commands and publishes it to
the extension. Without an argument the address is asked for interactively;
an empty answer cancels.`,
		Example: `  walletvault connect 0xAbC0000000000000000000000000000000000123
  walletvault connect`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider service.WalletProvider
			if len(args) == 1 {
				provider = service.NewStaticProvider(args[0])
			} else {
				provider = service.NewPromptProvider(c.app.in, c.out)
			}

			wallet, err := c.app.services.Session.Connect(cmd.Context(), provider)
			if err != nil {
				return c.report(cmd.Context(), err, app.MsgNoWalletConnected)
			}

			c.printer.Notify(app.Success(app.MsgWalletConnected))
			c.printer.Printf("Wallet: %s\n", accentText.Sprint(models.ShortAddress(wallet)))
			return nil
		},
	}
}

func (c *CLI) disconnectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Forget the connected wallet",
		Long:  `Disconnect forgets the connected wallet and the extension pointer. Saved credentials stay in the vault.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.services.Session.Disconnect(cmd.Context(), nil); err != nil {
				return c.report(cmd.Context(), err, app.MsgNoWalletConnected)
			}
			c.printer.Notify(app.Success(app.MsgWalletDisconnected))
			return nil
		},
	}
}

func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the connected wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallet, err := c.app.services.Session.Current(cmd.Context())
			if err != nil {
				return c.report(cmd.Context(), err, app.MsgNoWalletConnected)
			}
			c.printer.Printf("%s\n", wallet)
			return nil
		},
	}
}

// walletFor returns the --wallet flag value or the connected wallet.
func (c *CLI) walletFor(cmd *cobra.Command) (string, error) {
	if w, _ := cmd.Flags().GetString("wallet"); w != "" {
		return w, nil
	}
	return c.app.services.Session.Current(cmd.Context())
}

func addWalletFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("wallet", "w", "", "Wallet address (defaults to the connected wallet)")
}

package client

import "github.com/spf13/cobra"

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: "true"},
		Run: func(*cobra.Command, []string) {
			c.printer.Printf("%s", c.buildInfo.String())
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhradilek/check-links/internal/ui/pretty"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of check-links.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			colorMode, _ := cmd.Flags().GetString("color")
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

			fmt.Fprintf(out, "%s %s\n", styles.Bold.Render("check-links"), info.Version)
			fmt.Fprintf(out, "%s %s, built %s\n",
				styles.Dim.Render("commit"), info.Commit, info.Date)
		},
	}

	return cmd
}

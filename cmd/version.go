package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X greeting-server/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

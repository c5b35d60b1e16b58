package cmd

import (
	"fmt"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the emulator version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chyp8 %s\n", buildinfo.Version(version, commit, date))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

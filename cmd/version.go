package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const vcsRevisionSetting = "vcs.revision"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, VCS revision and Go version used to build mutanalysis.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("mutanalysis version\t", info.Main.Version)

			for _, setting := range info.Settings {
				if setting.Key == vcsRevisionSetting && setting.Value != "" {
					cmd.Println("revision\t", setting.Value)
				}
			}

			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

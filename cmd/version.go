package cmd

import (
	cmdutil "github.com/qianniaoge/watchman/cmd/util"
	"github.com/qianniaoge/watchman/cmd/version"
	"github.com/spf13/cobra"
)

func versionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print watchman version",
		RunE:  toRunE(versionMain),
	}
	return versionCmd
}

func versionMain(cmd *cobra.Command, args []string) exitCode {
	cmdutil.Println(version.BuildVersion)
	return exitCode{0}
}

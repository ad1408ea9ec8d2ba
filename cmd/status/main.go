package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jobforge/status-board/internal/cli"
)

func main() {
	command := NewStatusCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewStatusCtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [flags] [options]",
		Short: "status controls the job-type status board service.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdGet())

	return cmd
}

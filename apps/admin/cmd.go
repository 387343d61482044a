package main

import (
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	appName    string
	replyDelay time.Duration
	now        func() time.Time
	intN       func(int) int

	in      io.Reader
	out     io.Writer
	stdinFd int
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecoadmin",
		Short:         cli.appName + " operator tools",
		Long:          "ecoadmin runs the " + cli.appName + " chatbot and roster import offline, against the seeded mock data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return errHelp
		},
	}
	root.SetIn(cli.in)
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	root.AddCommand(
		cli.classifyCmd(),
		cli.importCmd(),
		cli.chatCmd(),
	)
	return root
}

// run executes the command line; args include the program name.
func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	return root.Execute()
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trezcool/ecoquest/core/chat"
)

func (cli *commandLine) classifyCmd() *cobra.Command {
	var showTopic bool

	cmd := &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Print the assistant's answer to a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, response := chat.Match(strings.Join(args, " "))
			if showTopic {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] ", topic)
			}
			fmt.Fprintln(cmd.OutOrStdout(), response)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showTopic, "topic", "t", false, "prefix the answer with the matched rule topic")
	return cmd
}

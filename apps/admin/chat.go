package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trezcool/ecoquest/core/chat"
)

const (
	userPrompt      = "you> "
	assistantPrompt = "eco> "
)

// lineReader yields one line of user input per call until io.EOF.
type lineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct{ *bufio.Scanner }

func (s scannerReader) ReadLine() (string, error) {
	if s.Scan() {
		return s.Text(), nil
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (cli *commandLine) chatCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the environmental assistant",
		Long:  `chat starts an offline conversation with the assistant. Type "exit" or "quit" to leave.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.chat(cmd.InOrStdin(), cmd.OutOrStdout(), name)
		},
	}
	cmd.Flags().StringVar(&name, "name", "Explorer", "name the assistant greets you with")
	return cmd
}

func (cli *commandLine) chat(in io.Reader, out io.Writer, name string) error {
	var lines lineReader
	if isTerminalFunc(cli.stdinFd) {
		oldState, err := term.MakeRaw(cli.stdinFd)
		if err != nil {
			return errors.Wrap(err, "switching terminal to raw mode")
		}
		defer func() { _ = term.Restore(cli.stdinFd, oldState) }()

		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{in, out}, userPrompt)
		lines, out = t, t
	} else {
		lines = scannerReader{bufio.NewScanner(in)}
	}

	var mu sync.Mutex
	say := func(text string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, "%s%s\r\n", assistantPrompt, text)
	}

	conv := chat.NewConversation(
		chat.WithReplyDelay(cli.replyDelay),
		chat.WithClock(cli.now),
		chat.WithOnReply(func(msg chat.Message) { say(msg.Text) }),
	)
	defer conv.Close()

	greeting, err := conv.Append(chat.SenderAssistant, chat.Greeting(name))
	if err != nil {
		return err
	}
	say(greeting.Text)

	for {
		line, err := lines.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}

		text := strings.TrimSpace(line)
		switch strings.ToLower(text) {
		case "":
			continue
		case "exit", "quit":
			say("Goodbye! Keep making a difference for our planet.")
			return nil
		}

		if _, err := conv.Send(text); err != nil {
			return err
		}
		conv.Wait()
	}
}

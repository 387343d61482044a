package main

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/trezcool/ecoquest/core"
)

func main() {
	zl, _ := zap.NewDevelopment()
	defer func() { _ = zl.Sync() }()
	logger := zl.Named("admin").Sugar()

	conf := core.NewConfig()
	cli := commandLine{
		appName:    conf.AppName,
		replyDelay: conf.Chat.ReplyDelay,
		now:        time.Now,
		in:         os.Stdin,
		out:        os.Stdout,
		stdinFd:    int(os.Stdin.Fd()),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Errorw("command failed", "error", err)
		}
		_ = zl.Sync()
		os.Exit(1)
	}
}

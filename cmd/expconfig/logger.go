package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/expconfig/internal/logging"
)

// logSetup installs the default logger from the global flags and releases
// the log output when the command finishes
type logSetup struct {
	closeFn func() error
}

func (l *logSetup) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	closeFn, err := logging.Setup(
		cmd.String("log-format"),
		cmd.String("log-level"),
		cmd.String("log-output"),
	)
	if err != nil {
		return ctx, err
	}
	l.closeFn = closeFn
	return ctx, nil
}

func (l *logSetup) after(_ context.Context, _ *cli.Command) error {
	if l.closeFn == nil {
		return nil
	}
	err := l.closeFn()
	l.closeFn = nil
	return err
}

package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/reusee/tapeworm/cmds"
	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+l.String()))
	}
}

type Logger = *slog.Logger

type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	// terminal, unless systemd collects stderr anyway
	var terminalHandler slog.Handler
	if !isSystemdService() {
		terminalHandler = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	journalHandler, err := newJournalHandler()
	if err != nil {
		if terminalHandler != nil {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(&spanHandler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

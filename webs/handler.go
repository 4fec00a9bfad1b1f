package webs

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/programs"
	"github.com/reusee/tapeworm/syncs"
	"github.com/reusee/tapeworm/wormconfigs"
	"golang.org/x/net/websocket"
)

//go:embed index.html
var indexHTML []byte

type Options struct {
	TapeLength int
	MaxSteps   int
	// Cells is the number of tape cells sent in each frame
	Cells int
	Delay time.Duration
	// MaxStreams bounds concurrent websocket streams
	MaxStreams int
	// QueueTimeout is how long a connection waits for a free stream before the busy frame
	QueueTimeout time.Duration
	Logger       *slog.Logger
}

const (
	DefaultMaxStreams   = 16
	DefaultQueueTimeout = 10 * time.Second
)

// HaltBusy is the halt of the only frame sent to connections that waited QueueTimeout in vain.
const HaltBusy = "busy"

// Handler serves a page at / and a step stream at /ws.
// Every websocket connection runs its own engine from the start.
func Handler(program *programs.Program, input []byte, options Options) http.Handler {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if options.TapeLength <= 0 {
		options.TapeLength = wormconfigs.DefaultTapeLength
	}
	if options.MaxSteps <= 0 {
		options.MaxSteps = wormconfigs.DefaultMaxSteps
	}
	if options.MaxStreams <= 0 {
		options.MaxStreams = DefaultMaxStreams
	}
	if options.QueueTimeout <= 0 {
		options.QueueTimeout = DefaultQueueTimeout
	}
	streams := syncs.NewSemaphore(options.MaxStreams)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	mux.Handle("GET /ws", websocket.Handler(func(conn *websocket.Conn) {
		defer conn.Close()
		ctx := conn.Request().Context()
		queueCtx, cancel := context.WithTimeout(ctx, options.QueueTimeout)
		err := streams.Acquire(queueCtx)
		cancel()
		if err != nil {
			logger.WarnContext(ctx, "too many streams",
				"remote", conn.Request().RemoteAddr,
				"error", err,
			)
			websocket.JSON.Send(conn, Frame{
				Position: -1,
				Halt:     HaltBusy,
			})
			return
		}
		defer streams.Release()

		engine := engines.New(program, options.TapeLength, input)

		logger.InfoContext(ctx, "stream started",
			"remote", conn.Request().RemoteAddr,
		)

		summary, err := engine.RunObserved(ctx, options.MaxSteps, func(step int, res *engines.StepResult) error {
			if err := websocket.JSON.Send(conn, stepFrame(step, res, options.Cells)); err != nil {
				return err
			}
			return sleep(ctx, options.Delay)
		})
		if err != nil {
			logger.InfoContext(ctx, "stream stopped",
				"steps", summary.StepsExecuted,
				"error", err,
			)
			return
		}

		if err := websocket.JSON.Send(conn, haltFrame(engine.Snapshot(options.Cells), summary)); err != nil {
			logger.InfoContext(ctx, "send halt frame", "error", err)
			return
		}
		logger.InfoContext(ctx, "stream ended",
			"steps", summary.StepsExecuted,
			"reason", summary.HaltReason.String(),
		)
	}))

	return mux
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package webs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/nets"
	"github.com/reusee/tapeworm/programs"
	"github.com/reusee/tapeworm/wormconfigs"
)

// Serve listens on addr until ctx is done.
type Serve func(ctx context.Context, addr string, program *programs.Program, input []byte) error

func (Module) Serve(
	tapeLength wormconfigs.TapeLength,
	maxSteps wormconfigs.MaxSteps,
	cells wormconfigs.PreviewCells,
	delay wormconfigs.StepDelay,
	isLocalAddr nets.IsLocalAddr,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Serve {
	return func(ctx context.Context, addr string, program *programs.Program, input []byte) error {
		ctx, _ = newSpan(ctx, "serve")

		local, err := isLocalAddr(ctx, addr)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if !local {
			logger.WarnContext(ctx, "serving on a public address", "addr", addr)
		}

		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return logs.WrapSpan(ctx, fmt.Errorf("listen %s: %w", addr, err))
		}

		server := &http.Server{
			Handler: Handler(program, input, Options{
				TapeLength: int(tapeLength),
				MaxSteps:   int(maxSteps),
				Cells:      int(cells),
				Delay:      time.Duration(delay),
				Logger:     logger,
			}),
			BaseContext: func(net.Listener) context.Context {
				return ctx
			},
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()

		logger.InfoContext(ctx, "serving", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return logs.WrapSpan(ctx, fmt.Errorf("serve: %w", err))
		}
		return nil
	}
}

package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/programs"
	"github.com/reusee/tapeworm/runs"
	"github.com/reusee/tapeworm/wormconfigs"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("viewer needs a terminal")

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Show runs the interactive viewer until the user quits.
// It returns the engine fault, if any.
type Show func(ctx context.Context, program *programs.Program, input []byte) error

func (Module) Show(
	newEngine runs.NewEngine,
	cells wormconfigs.PreviewCells,
	delay wormconfigs.StepDelay,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Show {
	return func(ctx context.Context, program *programs.Program, input []byte) error {
		if !isTerminal() {
			return ErrNotTerminal
		}
		ctx, _ = newSpan(ctx, "viewer")

		model := NewModel(newEngine(program, input), int(cells), time.Duration(delay))
		logger.InfoContext(ctx, "viewer started", "commands", program.Len())
		if _, err := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		).Run(); err != nil {
			return logs.WrapSpan(ctx, fmt.Errorf("viewer: %w", err))
		}

		snapshot := model.Engine().Snapshot(1)
		logger.InfoContext(ctx, "viewer quit",
			"steps", snapshot.Steps,
			"done", snapshot.Done,
		)
		if snapshot.Fault != nil {
			return logs.WrapSpan(ctx, fmt.Errorf("viewer: %w", snapshot.Fault))
		}
		return nil
	}
}

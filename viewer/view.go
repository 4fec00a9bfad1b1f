package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/tapeworm/renders"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// programWindow is the number of commands shown around the program counter.
const programWindow = 64

func (m *Model) View() string {
	snapshot := m.engine.Snapshot(0)
	var b strings.Builder

	state := "paused"
	if m.playing {
		state = "playing"
	}
	fmt.Fprintf(&b, "%s  step %d  %s  delay %s\n\n",
		titleStyle.Render("tapeworm"),
		snapshot.Steps,
		state,
		m.delay,
	)

	// program
	program := m.engine.Program()
	start := max(snapshot.ProgramCounter-programWindow/2, 0)
	end := min(start+programWindow, program.Len())
	b.WriteString(labelStyle.Render("program "))
	if start > 0 {
		b.WriteString(dimStyle.Render("…"))
	}
	for i := start; i < end; i++ {
		cmd := program.At(i).String()
		if i == snapshot.ProgramCounter {
			b.WriteString(selectedStyle.Render(cmd))
		} else {
			b.WriteString(cmd)
		}
	}
	if end < program.Len() {
		b.WriteString(dimStyle.Render("…"))
	}
	b.WriteString("\n\n")

	// tape
	first, last := m.tapeWindow(snapshot.Pointer, len(snapshot.Tape))
	var values, chars, indexes strings.Builder
	for i := first; i < last; i++ {
		if i > first {
			values.WriteByte(' ')
			chars.WriteByte(' ')
			indexes.WriteByte(' ')
		}
		value := fmt.Sprintf("%3d", snapshot.Tape[i])
		char := fmt.Sprintf("%3c", renders.CellChar(snapshot.Tape[i]))
		if i == snapshot.Pointer {
			value = selectedStyle.Render(value)
			char = selectedStyle.Render(char)
		}
		values.WriteString(value)
		chars.WriteString(char)
		indexes.WriteString(dimStyle.Render(fmt.Sprintf("%3d", i%1000)))
	}
	b.WriteString(labelStyle.Render("tape    "))
	b.WriteString(values.String())
	b.WriteString("\n        ")
	b.WriteString(chars.String())
	b.WriteString("\n        ")
	b.WriteString(indexes.String())
	b.WriteString("\n\n")

	// output
	b.WriteString(labelStyle.Render("output  "))
	b.WriteString(outputStyle.Render(renders.Output(snapshot.Output)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%d byte(s)\n\n", labelStyle.Render("pending "), m.engine.Pending())

	// status
	switch {
	case snapshot.Fault != nil:
		b.WriteString(errorStyle.Render("faulted: " + snapshot.Fault.Error()))
		b.WriteString("\n\n")
	case snapshot.Done:
		b.WriteString(outputStyle.Render("program ended"))
		b.WriteString("\n\n")
	case m.last != nil:
		fmt.Fprintf(&b, "%s\n\n", dimStyle.Render(fmt.Sprintf("last: [%s] at %d", m.last.Command, m.last.Position)))
	}

	if m.inputting {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.inputErr != nil {
			b.WriteString(errorStyle.Render(m.inputErr.Error()))
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render("enter feed • esc cancel"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.help.View(keys))
		b.WriteString("\n")
	}

	return b.String()
}

// tapeWindow returns the cell range shown, keeping the pointer in view.
func (m *Model) tapeWindow(pointer int, length int) (first, last int) {
	cells := m.cells
	if cells <= 0 || cells > length {
		cells = length
	}
	if pointer >= cells {
		first = pointer - cells + 1
	}
	return first, first + cells
}

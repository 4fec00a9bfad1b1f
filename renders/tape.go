package renders

import (
	"fmt"
	"strings"

	"github.com/reusee/tapeworm/engines"
)

const cellWidth = 4

// TapeLine renders the first cells values, three columns each.
func TapeLine(tape []byte, cells int) string {
	if cells > len(tape) || cells <= 0 {
		cells = len(tape)
	}
	var b strings.Builder
	for i, value := range tape[:cells] {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%3d", value)
	}
	return b.String()
}

// CaretLine puts a caret under the pointer's column of a TapeLine.
func CaretLine(pointer int) string {
	return strings.Repeat(" ", pointer*cellWidth+2) + "^"
}

// CharLine renders CellChar of each cell, aligned with TapeLine.
func CharLine(tape []byte, cells int) string {
	if cells > len(tape) || cells <= 0 {
		cells = len(tape)
	}
	var b strings.Builder
	for i, value := range tape[:cells] {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("  ")
		b.WriteRune(CellChar(value))
	}
	return b.String()
}

func CellChar(b byte) rune {
	if b >= 32 && b <= 126 {
		return rune(b)
	}
	return '·'
}

// Output renders output bytes as text, escaping what a terminal would not print.
func Output(out []byte) string {
	var b strings.Builder
	for _, c := range out {
		switch {
		case c == '\n' || c == '\t':
			b.WriteByte(c)
		case c >= 32 && c <= 126:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "\\x%02x", c)
		}
	}
	return b.String()
}

// StepLine is the one-line log of a step in the plain driver.
func StepLine(n int, res *engines.StepResult, cells int) string {
	return stepPrefix(n, res) + TapeLine(res.After.Tape, cells)
}

func stepPrefix(n int, res *engines.StepResult) string {
	return fmt.Sprintf("step %4d: [%s] | tape: ", n, res.Command)
}

// StepCaret aligns a caret under the pointer in the StepLine of step n, if it is in view.
func StepCaret(n int, res *engines.StepResult, cells int) string {
	if res.After.Pointer >= cells {
		return ""
	}
	return strings.Repeat(" ", len(stepPrefix(n, res))) + CaretLine(res.After.Pointer)
}

package engines

import "fmt"

// NegativePointer is raised by '<' with the pointer on cell 0. It ends the run.
type NegativePointer struct {
	Position int
}

func (n *NegativePointer) Error() string {
	return fmt.Sprintf("pointer moved below cell 0 at position %d", n.Position)
}

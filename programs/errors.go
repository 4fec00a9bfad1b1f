package programs

import (
	"errors"
	"fmt"
)

var ErrUnmatchedBracket = errors.New("unmatched bracket")

// UnmatchedOpenBracket reports the oldest '[' left without a partner.
type UnmatchedOpenBracket struct {
	Position int // index into the program
	Offset   int // byte offset in the source text
}

func (e *UnmatchedOpenBracket) Error() string {
	return fmt.Sprintf("unmatched '[' at position %d (offset %d)", e.Position, e.Offset)
}

func (e *UnmatchedOpenBracket) Unwrap() error {
	return ErrUnmatchedBracket
}

// UnmatchedCloseBracket reports a ']' seen while no '[' was pending.
type UnmatchedCloseBracket struct {
	Position int
	Offset   int
}

func (e *UnmatchedCloseBracket) Error() string {
	return fmt.Sprintf("unmatched ']' at position %d (offset %d)", e.Position, e.Offset)
}

func (e *UnmatchedCloseBracket) Unwrap() error {
	return ErrUnmatchedBracket
}

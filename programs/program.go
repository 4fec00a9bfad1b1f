package programs

import "strings"

// Program is a validated command sequence with its resolved jump table.
// It is never mutated after Load returns it.
type Program struct {
	commands []Command
	offsets  []int
	// jumps[i] is the partner of the bracket at i, -1 for other commands
	jumps []int
}

func Load(src string) (*Program, error) {
	program := &Program{
		commands: make([]Command, 0, len(src)),
		offsets:  make([]int, 0, len(src)),
	}
	for i := 0; i < len(src); i++ {
		if !IsCommand(src[i]) {
			continue
		}
		program.commands = append(program.commands, Command(src[i]))
		program.offsets = append(program.offsets, i)
	}

	jumps := make([]int, len(program.commands))
	var pending []int
	for pos, cmd := range program.commands {
		jumps[pos] = -1
		switch cmd {
		case Open:
			pending = append(pending, pos)
		case Close:
			if len(pending) == 0 {
				return nil, &UnmatchedCloseBracket{
					Position: pos,
					Offset:   program.offsets[pos],
				}
			}
			open := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			jumps[open] = pos
			jumps[pos] = open
		}
	}
	if len(pending) > 0 {
		return nil, &UnmatchedOpenBracket{
			Position: pending[0],
			Offset:   program.offsets[pending[0]],
		}
	}

	program.jumps = jumps
	return program, nil
}

func (p *Program) Len() int {
	return len(p.commands)
}

func (p *Program) At(pos int) Command {
	return p.commands[pos]
}

// Partner returns the matching bracket of the bracket at pos.
func (p *Program) Partner(pos int) (int, bool) {
	if pos < 0 || pos >= len(p.jumps) || p.jumps[pos] < 0 {
		return 0, false
	}
	return p.jumps[pos], true
}

// Offset returns the byte offset of the command at pos in the loaded source.
func (p *Program) Offset(pos int) int {
	return p.offsets[pos]
}

func (p *Program) JumpTable() map[int]int {
	ret := make(map[int]int)
	for pos, partner := range p.jumps {
		if partner >= 0 {
			ret[pos] = partner
		}
	}
	return ret
}

func (p *Program) String() string {
	var b strings.Builder
	b.Grow(len(p.commands))
	for _, cmd := range p.commands {
		b.WriteByte(byte(cmd))
	}
	return b.String()
}

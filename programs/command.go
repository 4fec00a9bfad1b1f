package programs

type Command byte

const (
	Right  Command = '>'
	Left   Command = '<'
	Inc    Command = '+'
	Dec    Command = '-'
	Output Command = '.'
	Input  Command = ','
	Open   Command = '['
	Close  Command = ']'
)

func IsCommand(b byte) bool {
	switch Command(b) {
	case Right, Left, Inc, Dec, Output, Input, Open, Close:
		return true
	}
	return false
}

func (c Command) String() string {
	return string(rune(c))
}

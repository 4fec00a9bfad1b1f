package vars

import (
	"fmt"
	"strconv"
)

// DecodeEscapes turns a command-line string with Go escapes (\n, \x41, \000) into raw bytes.
func DecodeEscapes(str string) ([]byte, error) {
	var ret []byte
	for len(str) > 0 {
		r, multibyte, tail, err := strconv.UnquoteChar(str, 0)
		if err != nil {
			return nil, fmt.Errorf("decode escapes in %q: %w", str, err)
		}
		if multibyte {
			ret = append(ret, string(r)...)
		} else {
			ret = append(ret, byte(r))
		}
		str = tail
	}
	return ret, nil
}

package cmds

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/tapeworm/vars"
)

var errorType = reflect.TypeFor[error]()

// parseArg converts the next word to t. A pointer type makes the argument optional.
func parseArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		ptr := reflect.New(t.Elem())
		if len(args) == 0 {
			return ptr, nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting argument, got nothing")
	}
	word := args[0]
	ret := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Bool:
		ret.SetBool(vars.StrToBool(word))
	case reflect.String:
		ret.SetString(word)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(word, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", word, err)
		}
		ret.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(word, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", word, err)
		}
		ret.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(word, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", word, err)
		}
		ret.SetFloat(v)
	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, nil
}

package configs

import (
	"errors"
	"fmt"
)

// Lookup decodes the value at path from the first loaded file that defines it.
// ok is false when no file defines path.
func Lookup[T any](loader Loader, path string) (value T, ok bool, err error) {
	err = loader.AssignFirst(path, &value)
	switch {
	case errors.Is(err, ErrValueNotFound):
		return value, false, nil
	case err != nil:
		return value, false, fmt.Errorf("config %s: %w", path, err)
	}
	return value, true, nil
}

// First is Lookup for providers. A missing value is zero, other errors panic.
func First[T any](loader Loader, path string) T {
	value, _, err := Lookup[T](loader, path)
	if err != nil {
		panic(err)
	}
	return value
}

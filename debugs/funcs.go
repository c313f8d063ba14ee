package debugs

import (
	"fmt"

	"go.starlark.net/starlark"
)

// UintFunc exposes fn as a builtin of one non-negative int argument. The result goes through toStarlarkValue.
func UintFunc[T any](name string, fn func(n uint64) T) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(
		thread *starlark.Thread,
		b *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var i starlark.Int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &i); err != nil {
			return nil, err
		}
		n, ok := i.Uint64()
		if !ok {
			return nil, fmt.Errorf("%s: %v out of uint64 range", b.Name(), i)
		}
		return toStarlarkValue(fn(n)), nil
	})
}

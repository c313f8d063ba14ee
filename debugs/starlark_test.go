package debugs

import (
	"testing"

	"github.com/reusee/rulegen/programs"
	"github.com/reusee/rulegen/rules"
	"go.starlark.net/starlark"
)

func dict(kvs ...starlark.Value) *starlark.Dict {
	d := starlark.NewDict(len(kvs) / 2)
	for i := 0; i < len(kvs); i += 2 {
		d.SetKey(kvs[i], kvs[i+1])
	}
	return d
}

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"uint64", uint64(1155), starlark.MakeUint64(1155)},
		{"float64", 1.5, starlark.Float(1.5)},
		{"[]string", []string{"a", "b"}, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
		{"map", map[string]int{"a": 1}, dict(starlark.String("a"), starlark.MakeInt(1))},
		{"struct", testStruct{Exported: "x", unexported: 1}, dict(starlark.String("Exported"), starlark.String("x"))},
		{"pointer", &testStruct{Exported: "y"}, dict(starlark.String("Exported"), starlark.String("y"))},
		{"nil pointer", (*testStruct)(nil), starlark.None},
		{"instruction", programs.PrintText("Fizz"), dict(
			starlark.String("op"), starlark.String("print_text"),
			starlark.String("text"), starlark.String("Fizz"),
		)},
		{"program", programs.Of(programs.PrintNumber(7), programs.Halt()), starlark.NewList([]starlark.Value{
			dict(
				starlark.String("op"), starlark.String("print_number"),
				starlark.String("number"), starlark.MakeInt(7),
			),
			dict(starlark.String("op"), starlark.String("halt")),
		})},
		{"rule", rules.Factor(3, "Fizz"), dict(
			starlark.String("Condition"), starlark.String("has_factor(3)"),
			starlark.String("Text"), starlark.String("Fizz"),
		)},
		{"starlark value", starlark.String("raw"), starlark.String("raw")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func(n int) string {
			return rules.Say(rules.FizzBuzz(), uint64(n))
		})
		if v == nil {
			t.Fatal("nil value")
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/rulegen/conds"
	"github.com/reusee/rulegen/programs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func instructionValue(inst programs.Instruction) starlark.Value {
	d := starlark.NewDict(3)
	d.SetKey(starlark.String("op"), starlark.String(inst.Op.String()))
	switch inst.Op {
	case programs.OpPrintText:
		d.SetKey(starlark.String("text"), starlark.String(inst.Text))
	case programs.OpPrintNumber:
		d.SetKey(starlark.String("number"), starlark.MakeUint64(inst.Number))
	}
	return d
}

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case programs.Instruction:
		return instructionValue(v)

	case programs.Program:
		elems := make([]starlark.Value, 0, v.Len())
		for inst := range v.Instructions() {
			elems = append(elems, instructionValue(inst))
		}
		return starlark.NewList(elems)

	case conds.Condition:
		return starlark.String(v.String())

	case []byte:
		return starlark.Bytes(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range value.Len() {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

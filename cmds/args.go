package cmds

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/moneytech/wrenalyzer/vars"
)

// convertArg converts args[0] to a value of type t. A pointer type marks an
// optional argument: with nothing left to consume it converts to a pointer
// at the zero value instead of failing.
func convertArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			return reflect.New(t.Elem()), nil
		}
		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elem, err := convertArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		return elem.Addr(), nil
	}

	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported argument type: %v", t)
}

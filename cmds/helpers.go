package cmds

// Var declares a flag-like command holding one value of type T: "name v"
// sets it, "name." resets it to the zero value.
func Var[T any](name string) *T {
	value := new(T)

	Define(name, Func(func(v T) {
		*value = v
	}))

	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))

	return value
}

// Switch declares a boolean command: "name" turns it on, "!name" off.
func Switch(name string) *bool {
	value := new(bool)

	Define(name, Func(func() {
		*value = true
	}))

	Define("!"+name, Func(func() {
		*value = false
	}))

	return value
}

// Collect declares a repeatable command appending every given value.
func Collect[T any](name string) *[]T {
	values := new([]T)

	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}))

	return values
}

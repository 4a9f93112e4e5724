package boxing

// BoxBool boxes a boolean. Truthiness follows the value.
func BoxBool(v bool) Box {
	return New(WithValue(v), WithBool(v))
}

// BoxInt boxes an integer. Zero is falsy.
func BoxInt(v int64) Box {
	return New(WithValue(v), WithBool(v != 0))
}

// BoxFloat boxes a floating-point number. Zero is falsy.
func BoxFloat(v float64) Box {
	return New(WithValue(v), WithBool(v != 0))
}

// BoxString boxes a string. The empty string is falsy.
func BoxString(v string) Box {
	return New(WithValue(v), WithBool(len(v) > 0))
}

// BoxNull boxes the explicit null sentinel: falsy, carries a value but
// exposes no string view.
func BoxNull() Box {
	return New(WithValue(nullPayload{}), WithBool(false))
}

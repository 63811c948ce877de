package value

func True(val Value) bool {
	b, ok := val.(Boolean)
	if ok {
		return bool(b)
	}
	return false
}

// CastToFloat converts blanks and booleans to their numeric reading.
// Text never converts: mixing text into arithmetic is a type error at
// the caller, not a silent coercion.
func CastToFloat(val Value) (Float, error) {
	switch v := val.(type) {
	case Float:
		return v, nil
	case Blank:
		return 0, nil
	case Boolean:
		x, _ := v.ToFloat()
		return x.(Float), nil
	default:
		return 0, ErrCast
	}
}

func CastToText(val Value) (Text, error) {
	switch v := val.(type) {
	case Text:
		return v, nil
	case Float, Boolean:
		return Text(v.String()), nil
	case Blank:
		return "", nil
	default:
		return "", ErrCast
	}
}

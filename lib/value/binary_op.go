package value

import (
	"fmt"
)

func route(l Value, opt string, other Value) (Value, error) {
	switch opt {
	case "+":
		return add(l, other)
	case "-":
		return sub(l, other)
	case "*":
		return mul(l, other)
	case "/":
		return div(l, other)
	}
	return Nil, fmt.Errorf("%w: '%s'", ErrUnsupportedOperator, opt)
}

func add(left Value, right Value) (Value, error) {
	switch left := left.(type) {
	case Int:
		switch right := right.(type) {
		case Int:
			return Int(int64(left) + int64(right)), nil
		case Double:
			return Double(float64(left) + float64(right)), nil
		}
	case Double:
		switch right := right.(type) {
		case Int:
			return Double(float64(left) + float64(right)), nil
		case Double:
			return Double(float64(left) + float64(right)), nil
		}
	}
	return Nil, fmt.Errorf("%w: '+' only supported between numbers. Got '%s' and '%s'", ErrTypeMismatch, left.String(), right.String())
}

func sub(left Value, right Value) (Value, error) {
	switch left := left.(type) {
	case Int:
		switch right := right.(type) {
		case Int:
			return Int(int64(left) - int64(right)), nil
		case Double:
			return Double(float64(left) - float64(right)), nil
		}
	case Double:
		switch right := right.(type) {
		case Int:
			return Double(float64(left) - float64(right)), nil
		case Double:
			return Double(float64(left) - float64(right)), nil
		}
	}
	return Nil, fmt.Errorf("%w: '-' only supported between numbers. Got '%s' and '%s'", ErrTypeMismatch, left.String(), right.String())
}

func mul(left Value, right Value) (Value, error) {
	switch left := left.(type) {
	case Int:
		switch right := right.(type) {
		case Int:
			return Int(int64(left) * int64(right)), nil
		case Double:
			return Double(float64(left) * float64(right)), nil
		}
	case Double:
		switch right := right.(type) {
		case Int:
			return Double(float64(left) * float64(right)), nil
		case Double:
			return Double(float64(left) * float64(right)), nil
		}
	}
	return Nil, fmt.Errorf("%w: '*' only supported between numbers. Got '%s' and '%s'", ErrTypeMismatch, left.String(), right.String())
}

// div always produces a Double, even for two evenly divisible ints.
func div(left Value, right Value) (Value, error) {
	if !IsNumber(left) || !IsNumber(right) {
		return Nil, fmt.Errorf("%w: '/' only supported between numbers. Got '%s' and '%s'", ErrTypeMismatch, left.String(), right.String())
	}
	if right.Equal(Int(0)) || right.Equal(Double(0)) {
		return Nil, fmt.Errorf("%w while using '/'", ErrDivisionByZero)
	}

	switch left := left.(type) {
	case Int:
		switch right := right.(type) {
		case Int:
			return Double(float64(left) / float64(right)), nil
		case Double:
			return Double(float64(left) / float64(right)), nil
		}
	case Double:
		switch right := right.(type) {
		case Int:
			return Double(float64(left) / float64(right)), nil
		case Double:
			return Double(float64(left) / float64(right)), nil
		}
	}
	return Nil, fmt.Errorf("%w: '/' only supported between numbers. Got '%s' and '%s'", ErrTypeMismatch, left.String(), right.String())
}

package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func verifyOp(t *testing.T, left, right, expected Value, op string) {
	ret, err := left.Op(op, right)
	assert.NoError(t, err)
	assert.Equal(t, expected, ret)
}

func verifyError(t *testing.T, left, right Value, ops []string) {
	for _, op := range ops {
		_, err := left.Op(op, right)
		assert.Error(t, err)
	}
}

func TestInvalid(t *testing.T) {
	i := Int(2)
	d := Double(3.0)
	id := Identifier("x")
	n := Nil
	ops := []string{"+", "-", "*", "/"}

	verifyError(t, i, id, ops)
	verifyError(t, i, n, ops)
	verifyError(t, i, PlusOperation, ops)
	verifyError(t, d, id, ops)
	verifyError(t, d, n, ops)
	verifyError(t, id, i, ops)
	verifyError(t, id, id, ops)
	verifyError(t, n, i, ops)
	verifyError(t, n, n, ops)
	verifyError(t, Assign, i, ops)

	// and div throws an error when denominator is zero
	verifyError(t, i, Int(0), []string{"/"})
	verifyError(t, i, Double(0), []string{"/"})
	verifyError(t, d, Int(0), []string{"/"})
	verifyError(t, d, Double(0), []string{"/"})

	// operators outside + - * / are not routed
	verifyError(t, i, i, []string{"%", "//", "==", "and", ""})
}

func TestErrorKinds(t *testing.T) {
	_, err := Int(1).Op("/", Int(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Double(1).Op("/", Double(math.Copysign(0, -1)))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Int(1).Op("+", Identifier("x"))
	assert.ErrorIs(t, err, ErrTypeMismatch)
	// a non-numeric operand is a type error even with a zero divisor
	_, err = Nil.Op("/", Int(0))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Int(1).Op("%", Int(1))
	assert.ErrorIs(t, err, ErrUnsupportedOperator)
}

func TestValidArithmetic(t *testing.T) {
	// Add
	var base Value
	base = Int(1)
	verifyOp(t, base, Int(2), Int(3), "+")
	verifyOp(t, base, Double(2.0), Double(3.0), "+")
	base = Double(1.0)
	verifyOp(t, base, Int(2), Double(3.0), "+")
	verifyOp(t, base, Double(2.0), Double(3.0), "+")

	// Sub
	base = Int(1)
	verifyOp(t, base, Int(2), Int(-1), "-")
	verifyOp(t, base, Double(2.0), Double(-1.0), "-")
	base = Double(1.0)
	verifyOp(t, base, Int(2), Double(-1.0), "-")
	verifyOp(t, base, Double(2.0), Double(-1.0), "-")

	// Mul
	base = Int(2)
	verifyOp(t, base, Int(2), Int(4), "*")
	verifyOp(t, base, Double(2.0), Double(4.0), "*")
	base = Double(2.0)
	verifyOp(t, base, Int(2), Double(4.0), "*")
	verifyOp(t, base, Double(2.0), Double(4.0), "*")

	// Div always promotes, even when evenly divisible
	base = Int(4)
	verifyOp(t, base, Int(2), Double(2.0), "/")
	verifyOp(t, base, Double(2.0), Double(2.0), "/")
	verifyOp(t, Int(1), Int(4), Double(0.25), "/")
	base = Double(4.0)
	verifyOp(t, base, Int(2), Double(2.0), "/")
	verifyOp(t, base, Double(2.0), Double(2.0), "/")
}

func TestIntOverflowWraps(t *testing.T) {
	verifyOp(t, Int(math.MaxInt64), Int(1), Int(math.MinInt64), "+")
	verifyOp(t, Int(math.MinInt64), Int(1), Int(math.MaxInt64), "-")
}

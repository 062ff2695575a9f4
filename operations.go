package tracker

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the arithmetic guard. All downstream math that accepts
// caller-provided numbers goes through these checked operations.
var (
	// ErrNonFiniteOperand reports an operand that is NaN or infinite.
	ErrNonFiniteOperand = errors.New("operand is not a finite number")
	// ErrDivisionByZero reports a division whose divisor is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
)

func checkFinite(op string, a, b float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return fmt.Errorf("%s(%v, %v): %w", op, a, b, ErrNonFiniteOperand)
	}
	return nil
}

// Add returns a+b, rejecting non-finite operands.
func Add(a, b float64) (float64, error) {
	if err := checkFinite("add", a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// Multiply returns a*b, rejecting non-finite operands.
func Multiply(a, b float64) (float64, error) {
	if err := checkFinite("multiply", a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// Divide returns a/b, rejecting non-finite operands and a zero divisor.
func Divide(a, b float64) (float64, error) {
	if err := checkFinite("divide", a, b); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, fmt.Errorf("divide(%v, %v): %w", a, b, ErrDivisionByZero)
	}
	return a / b, nil
}

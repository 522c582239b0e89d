package kernel

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
)

var errOverflow = errors.New("int64 overflow")

// Money is an amount in minor currency units (cents).
type Money int64

// Validate rejects negative amounts.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsOutOfRangeError("money", int64(m), 0, "unbounded")
	}
	return nil
}

// Add returns m + other, or an out-of-range error when the sum does not fit in int64.
func (m Money) Add(other Money) (Money, error) {
	sum := m + other
	if (other > 0 && sum < m) || (other < 0 && sum > m) {
		return 0, errs.NewValueIsOutOfRangeErrorWithCause("amount",
			fmt.Sprintf("%d + %d", int64(m), int64(other)), int64(math.MinInt64), int64(math.MaxInt64), errOverflow)
	}
	return sum, nil
}

// Times returns the amount multiplied by quantity, or an out-of-range error when
// the product does not fit in int64.
func (m Money) Times(quantity int) (Money, error) {
	q := int64(quantity)
	if q == 0 || m == 0 {
		return 0, nil
	}
	product := int64(m) * q
	if product/q != int64(m) || (q == -1 && m == math.MinInt64) {
		return 0, errs.NewValueIsOutOfRangeErrorWithCause("amount",
			fmt.Sprintf("%d x %d", int64(m), q), int64(math.MinInt64), int64(math.MaxInt64), errOverflow)
	}
	return Money(product), nil
}

// Cents returns the raw minor-unit amount.
func (m Money) Cents() int64 {
	return int64(m)
}

// String renders the amount with two decimals, e.g. 2500 -> "25.00".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Sum adds up amounts and fails as soon as a partial sum overflows.
func Sum(amounts ...Money) (Money, error) {
	var total Money
	for _, a := range amounts {
		next, err := total.Add(a)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}

package model

import (
	"fmt"
	"math"
	"strconv"
)

// Item is a single inventory record. IDs are allocated by the repository,
// start at 1 and are never reused.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    Cents  `json:"price"`
	Supplier string `json:"supplier"`
}

// Cents is a fixed-point monetary amount with exactly two fractional
// digits, stored as an integer number of cents. It marshals to a plain
// JSON number with two decimals (e.g. 2.50).
type Cents int64

// CentsFromFloat converts a float amount (in currency units) to Cents,
// rounding half away from zero.
func CentsFromFloat(f float64) Cents {
	return Cents(math.Round(f * 100))
}

// Float64 returns the amount in currency units.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// String formats the amount with two decimals using integer math, so large
// amounts do not lose precision through float formatting.
func (c Cents) String() string {
	n := int64(c)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts any JSON number and rounds it to the cent. Quoted
// values are rejected, keeping the wire type unambiguous. Amounts whose
// cent count does not fit in an int64 are rejected rather than converted,
// since float-to-int conversion is undefined on overflow.
func (c *Cents) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse price: %w", err)
	}

	cents := math.Round(f * 100)
	if math.Abs(cents) >= float64(math.MaxInt64) {
		return fmt.Errorf("price %s is out of range", data)
	}

	*c = Cents(cents)
	return nil
}

// Package coins carries native-coin and token amounts as arbitrary-precision
// non-negative integers, with decimal strings on the wire and in storage.
package coins

import (
	"fmt"
	"math/big"
	"strings"
)

// Coin pairs a denomination with an amount.
type Coin struct {
	Denom  string
	Amount *big.Int
}

// Zero returns a fresh zero amount.
func Zero() *big.Int {
	return new(big.Int)
}

// Parse converts a decimal string into a non-negative amount. Signs,
// whitespace, and non-digit characters are rejected.
func Parse(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("amount is required")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("amount %q is not a non-negative integer", value)
		}
	}
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("amount %q is not a non-negative integer", value)
	}
	return amount, nil
}

// Format renders an amount as its canonical decimal string.
func Format(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}

// IsZero reports whether the amount is nil or zero.
func IsZero(amount *big.Int) bool {
	return amount == nil || amount.Sign() == 0
}

// Sum adds the amounts of all coins. Denominations are not inspected.
func Sum(funds []Coin) *big.Int {
	total := new(big.Int)
	for _, coin := range funds {
		if coin.Amount != nil {
			total.Add(total, coin.Amount)
		}
	}
	return total
}

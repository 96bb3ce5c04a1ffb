package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a monetary value in minor units (hundredths).
type Amount int64

// Parse converts a decimal string into minor units. Inputs with more than
// two fractional digits are rounded half away from zero, once, here at the
// input boundary.
func Parse(input string) (Amount, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, ErrInvalidAmount
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return Amount(value.Round(2).Shift(2).IntPart()), nil
}

func (a Amount) String() string {
	value := int64(a)
	negative := value < 0
	if negative {
		value = -value
	}
	formatted := fmt.Sprintf("%d.%02d", value/100, value%100)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// MarshalJSON writes the amount as a plain two-decimal JSON number so the
// persisted blob matches what the previous frontend stored (`amount: 100.5`
// style numbers).
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := Parse(raw)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	*a = parsed
	return nil
}

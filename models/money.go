package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Money is a monetary amount in dollars. The backend is inconsistent about
// whether price fields arrive as JSON numbers or decimal strings, so every
// monetary field is normalized here, once, at the decode boundary.
type Money float64

// UnmarshalJSON accepts both `12.5` and `"12.50"`. A malformed string fails
// the decode instead of silently becoming zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("malformed price %q: %w", s, err)
		}
		*m = Money(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("malformed price %s: %w", string(data), err)
	}
	*m = Money(f)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

func (m Money) Float64() float64 {
	return float64(m)
}

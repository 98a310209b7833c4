package fpl

import (
	"bytes"
	"strconv"
)

// Stat is a float64 that survives the FPL API's loose typing. Fields like
// form, ict_index and the element-summary influence/creativity/threat columns
// arrive as quoted decimal strings, sometimes as bare numbers, sometimes as
// null. Anything that does not parse coerces to 0 rather than failing the
// whole payload.
type Stat float64

func (s *Stat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = 0
		return nil
	}
	if b[0] == '"' {
		unquoted, err := strconv.Unquote(string(b))
		if err != nil {
			*s = 0
			return nil
		}
		b = []byte(unquoted)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*s = 0
		return nil
	}
	*s = Stat(f)
	return nil
}

func (s Stat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(s), 'f', -1, 64)), nil
}

// Float returns the underlying value.
func (s Stat) Float() float64 { return float64(s) }

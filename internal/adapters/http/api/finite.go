package api

import (
	"math"
	"strconv"

	"github.com/okian/tradecalc/internal/domain/costofliving"
)

// number is a float64 that encodes NaN and the infinities as JSON null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// amount decodes a form amount given either as a JSON number or a string.
// Blank or unparsable strings decode as 0.
type amount float64

func (a *amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*a = amount(costofliving.ParseAmount(s))
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*a = amount(f)
	return nil
}

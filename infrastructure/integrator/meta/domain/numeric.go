package metadomain

import (
	"math"
	"strconv"
	"strings"
)

// Numeric aceita número ou string numérica no JSON da Graph API.
// Valores ausentes, inválidos ou negativos viram 0.
type Numeric float64

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		*n = 0
		return nil
	}

	*n = Numeric(f)
	return nil
}

func (n Numeric) Float() float64 {
	return float64(n)
}

func (n Numeric) Int() int64 {
	return int64(math.Round(float64(n)))
}

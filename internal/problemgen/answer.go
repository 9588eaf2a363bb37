package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer reports whether submitted equals the question's product.
//
// The input is parsed as a real number, so "42", "42.0" and "042" are all
// accepted for 42. Equality is exact; the product of two integers needs
// no tolerance. Unparseable or empty input is never correct.
func CheckAnswer(q Question, submitted string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}
	v, err := strconv.ParseFloat(submitted, 64)
	if err != nil {
		return false
	}
	return v == float64(q.Answer())
}

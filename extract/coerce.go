package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/ogmeta"
)

// decimalPattern matches a signed decimal with optional fraction and exponent.
var decimalPattern = regexp.MustCompile(`^([+-]?)([0-9]*)(?:\.([0-9]*))?(?:[eE]([+-]?[0-9]+))?$`)

// ParseInteger reads s as an arbitrary-precision decimal and truncates it
// toward zero. It fails when s is not a decimal or the truncated value does
// not fit in a signed 32-bit integer.
func ParseInteger(s string) (int, bool) {
	m := decimalPattern.FindStringSubmatch(s)
	if m == nil || m[2]+m[3] == "" {
		return 0, false
	}
	sign, whole, frac := m[1], m[2], m[3]

	exp := 0
	if m[4] != "" {
		e, err := strconv.Atoi(m[4])
		if err != nil {
			return 0, false
		}
		exp = e
	}

	all := whole + frac
	digits := strings.TrimLeft(all, "0")
	if digits == "" {
		return 0, true
	}

	// point is the number of digits left of the decimal point once leading
	// zeros are dropped and the exponent is applied.
	point := len(whole) - (len(all) - len(digits))
	if exp > 0 && point > math.MaxInt-exp {
		return 0, false
	}
	if exp < 0 && point <= 0 {
		return 0, true
	}
	point += exp
	if point <= 0 {
		return 0, true
	}
	if point > 10 {
		return 0, false
	}

	var integer string
	if point <= len(digits) {
		integer = digits[:point]
	} else {
		integer = digits + strings.Repeat("0", point-len(digits))
	}
	v, err := strconv.ParseInt(sign+integer, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ParseTimestamp reads s as an ISO-8601 instant such as
// 2022-02-19T03:54:34Z or 2022-02-18T22:54:34.5-05:00. The result is in UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// ParseURI reads s as a URI reference.
func ParseURI(s string) (ogmeta.URI, bool) {
	u, err := ogmeta.ParseURI(s)
	if err != nil {
		return ogmeta.URI{}, false
	}
	return u, true
}

package utils

import (
	"strconv"
	"strings"
)

// GroupDigits inserts thousand separators into a non-negative amount, e.g.
// 37500 -> "37,500". Negative input clamps to zero; the engine never
// displays negative currency.
func GroupDigits(n int64) string {
	if n < 0 {
		n = 0
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

package colorspace

import (
	"fmt"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`^#?([[:xdigit:]]{2})([[:xdigit:]]{2})([[:xdigit:]]{2})$`)

// HexToRGB parses "#rrggbb" or "rrggbb", case-insensitively. Anything
// else, including the 3 digit shorthand, reports ok == false.
func HexToRGB(s string) (c RGB8, ok bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB8{}, false
	}
	for i := range c {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB8{}, false
		}
		c[i] = uint8(v)
	}
	return c, true
}

// RGBToHex formats c as "#rrggbb" with lowercase digits.
func RGBToHex(c RGB8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Hex is shorthand for RGBToHex(c).
func (c RGB8) Hex() string {
	return RGBToHex(c)
}

package markup

import (
	"strconv"
	"strings"

	"github.com/npillmayer/richtext/styled"
	"golang.org/x/image/colornames"
)

// ParseColor interprets the argument of a color tag. Accepted forms are
//
//	#RRGGBB
//	#RGB
//	rgb(r, g, b)    with integer channels 0…255
//	name            a web color name, case-insensitive
//
// Anything else is rejected.
func ParseColor(arg string) (styled.Color, bool) {
	arg = strings.TrimSpace(arg)
	switch {
	case arg == "":
		return styled.NoColor, false
	case strings.HasPrefix(arg, "#"):
		return parseHexColor(arg[1:])
	case len(arg) > 4 && strings.EqualFold(arg[:4], "rgb("):
		return parseRGBFunction(arg[4:])
	}
	if c, ok := colornames.Map[strings.ToLower(arg)]; ok {
		return styled.RGB(c.R, c.G, c.B), true
	}
	return styled.NoColor, false
}

func parseHexColor(hex string) (styled.Color, bool) {
	if len(hex) != 3 && len(hex) != 6 {
		return styled.NoColor, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return styled.NoColor, false
	}
	if len(hex) == 3 { // #RGB is shorthand for #RRGGBB
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return styled.RGB(r<<4|r, g<<4|g, b<<4|b), true
	}
	return styled.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

func parseRGBFunction(args string) (styled.Color, bool) {
	if !strings.HasSuffix(args, ")") {
		return styled.NoColor, false
	}
	parts := strings.Split(args[:len(args)-1], ",")
	if len(parts) != 3 {
		return styled.NoColor, false
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return styled.NoColor, false
		}
		ch[i] = uint8(n)
	}
	return styled.RGB(ch[0], ch[1], ch[2]), true
}

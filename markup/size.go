package markup

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// sizeKeyword is a CSS-like font size keyword. Absolute keywords scale the
// document default size, relative keywords scale the current size.
type sizeKeyword struct {
	scale    float64
	relative bool
}

var sizeKeywords = map[string]sizeKeyword{
	"xx-small":  {0.625, false},
	"x-small":   {0.75, false},
	"small":     {0.875, false},
	"medium":    {1.0, false},
	"large":     {1.125, false},
	"x-large":   {1.5, false},
	"xx-large":  {2.0, false},
	"xxx-large": {3.0, false},
	"smaller":   {0.83, true},
	"larger":    {1.2, true},
}

// SizeKeywords lists the absolute size keywords from smallest to largest.
var SizeKeywords = []string{
	"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large",
}

// ResolveSize interprets the argument of a size tag, given the current size and
// the document default size. Sizes resulting from keywords or percentages are
// rounded to integral points (ties to even). An absolute keyword is not rounded
// if rounding would make it collide with a neighbouring keyword, so that
// SizeKeywords always resolve to strictly increasing sizes. Results which are
// not positive are rejected.
func ResolveSize(arg string, current, documentDefault float64) (float64, bool) {
	arg = strings.TrimSpace(arg)
	name := strings.ToLower(arg)
	if kw, ok := sizeKeywords[name]; ok {
		if kw.relative {
			return positive(math.RoundToEven(current * kw.scale))
		}
		return positive(keywordSize(name, documentDefault))
	}
	if pct, ok := strings.CutSuffix(arg, "%"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil || !(n > 0) {
			return 0, false
		}
		return positive(math.RoundToEven(current * n / 100))
	}
	n, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, false
	}
	return positive(n)
}

// keywordSize scales the document default size for an absolute keyword.
func keywordSize(name string, documentDefault float64) float64 {
	rounded := func(i int) float64 {
		return math.RoundToEven(documentDefault * sizeKeywords[SizeKeywords[i]].scale)
	}
	i := slices.Index(SizeKeywords, name)
	size := rounded(i)
	if size <= 0 || (i > 0 && rounded(i-1) == size) ||
		(i+1 < len(SizeKeywords) && rounded(i+1) == size) {
		return documentDefault * sizeKeywords[name].scale
	}
	return size
}

func positive(size float64) (float64, bool) {
	if size > 0 && !math.IsInf(size, 0) {
		return size, true
	}
	return 0, false
}

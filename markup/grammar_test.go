package markup

import (
	"slices"
	"testing"

	"github.com/npillmayer/richtext/styled"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	for _, x := range []struct {
		arg string
		c   styled.Color
	}{
		{"#FF358A", styled.RGB(0xff, 0x35, 0x8a)},
		{"#ff358a", styled.RGB(0xff, 0x35, 0x8a)},
		{"#f00", styled.RGB(0xff, 0, 0)},
		{"rgb(53, 116, 240)", styled.RGB(53, 116, 240)},
		{"RGB(0,0,0)", styled.RGB(0, 0, 0)},
		{"DarkCyan", styled.RGB(0, 139, 139)},
		{"red", styled.RGB(255, 0, 0)},
	} {
		c, ok := ParseColor(x.arg)
		if !ok {
			t.Errorf("expected %q to be a color", x.arg)
			continue
		}
		if c != x.c {
			t.Errorf("expected %q to be %v, is %v", x.arg, x.c, c)
		}
	}
	for _, arg := range []string{"", "#12", "#1234", "#ggg", "rgb(256, 0, 0)", "rgb(1, 2)",
		"rgb(-1, 2, 3)", "rgb(1, 2, 3", "nocolor"} {
		if c, ok := ParseColor(arg); ok {
			t.Errorf("expected %q to be rejected, is %v", arg, c)
		}
	}
}

func TestSizeKeywordsIncrease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	for _, def := range []float64{1, 4, 6, 11, 12, 16} {
		prev := 0.0
		for _, kw := range SizeKeywords {
			size, ok := ResolveSize(kw, 99, def)
			if !ok {
				t.Fatalf("expected %q to be a size", kw)
			}
			if size <= prev {
				t.Errorf("expected %q to be larger than %.2f for default size %.0f, is %.2f",
					kw, prev, def, size)
			}
			prev = size
		}
	}
	var sizes []float64
	for _, kw := range SizeKeywords {
		size, _ := ResolveSize(kw, 99, 4)
		sizes = append(sizes, size)
	}
	want := []float64{2, 3, 3.5, 4, 4.5, 6, 8, 12} // small and large are not rounded to 4
	if !slices.Equal(sizes, want) {
		t.Errorf("expected keyword sizes %v for default size 4, have %v", want, sizes)
	}
}

func TestResolveSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	for _, x := range []struct {
		arg  string
		cur  float64
		size float64
	}{
		{"medium", 20, 11},
		{"x-large", 20, 16}, // 16.5 rounds to even
		{"xxx-large", 20, 33},
		{"larger", 20, 24},
		{"smaller", 20, 17},
		{"200%", 10, 20},
		{"50%", 11, 6},
		{"11.5", 20, 11.5},
		{" 14 ", 20, 14},
	} {
		size, ok := ResolveSize(x.arg, x.cur, 11)
		if !ok || size != x.size {
			t.Errorf("expected %q at current size %.1f to be %.2f, is %.2f (ok=%v)",
				x.arg, x.cur, x.size, size, ok)
		}
	}
	for _, arg := range []string{"", "0", "-3", "0%", "-10%", "huge", "Inf", "NaN", "%"} {
		if size, ok := ResolveSize(arg, 11, 11); ok {
			t.Errorf("expected %q to be rejected, is %.2f", arg, size)
		}
	}
}

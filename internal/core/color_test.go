package core

import "testing"

func TestParseColorRoundTrip(t *testing.T) {
	for _, c := range Colors() {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), got, ok)
		}
	}

	if _, ok := ParseColor("mauve"); ok {
		t.Error("unknown color accepted")
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want int
	}{
		{ColorDefault, -1},
		{ColorRed, 1},
		{ColorBrightGreen, 10},
		{ColorGray, 245},
		{Color(200), -1},
	}

	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("%v.ANSI() = %d, expected %d", tc.c, got, tc.want)
		}
	}
}

package tlp

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"RED", Red, true},
		{"red", Red, true},
		{"Amber", Amber, true},
		{"GREEN", Green, true},
		{"CLEAR", Clear, true},
		{"  amber  ", Amber, true},
		{"invalid", Clear, false},
		{"", Clear, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMostRestrictive(t *testing.T) {
	tests := []struct {
		a, b, want Level
	}{
		{Red, Green, Red},
		{Green, Red, Red},
		{Amber, Clear, Amber},
		{Green, Green, Green},
		{Clear, Red, Red},
	}

	for _, tt := range tests {
		if got := MostRestrictive(tt.a, tt.b); got != tt.want {
			t.Errorf("MostRestrictive(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(Red > Amber && Amber > Green && Green > Clear) {
		t.Fatal("levels must order Red > Amber > Green > Clear")
	}
}

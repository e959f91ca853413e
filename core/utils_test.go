package core

import "testing"

func TestCleanString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  Juan dela Cruz\t", "Juan dela Cruz"},
		{"\n BSCS 3-A ", "BSCS 3-A"},
		{"unchanged", "unchanged"},
	}
	for _, tt := range tests {
		if got := CleanString(tt.in); got != tt.want {
			t.Errorf("CleanString(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

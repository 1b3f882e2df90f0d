package dpiruntime

import "testing"

func TestWords(t *testing.T) {
	tests := []struct {
		width uint
		want  uint
	}{
		{1, 1},
		{31, 1},
		{32, 1},
		{33, 2},
		{36, 2},
		{64, 2},
		{65, 3},
		{100, 4},
		{128, 4},
	}
	for _, tt := range tests {
		if got := Words(tt.width); got != tt.want {
			t.Errorf("Words(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

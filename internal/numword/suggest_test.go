package numword

import "testing"

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{"пят", "пять"},
		{"тысча", "тысяча"},
		{"миллон", "миллион"},
		{"девяноста", "девяносто"},
		{"бла", ""},
		{"аб", ""},
		{"абракадабра", ""},
	}
	for _, tt := range tests {
		if got := Suggest(tt.word); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

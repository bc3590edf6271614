package numword

import "fmt"

var selfCheckSamples = []struct {
	text string
	want int64
}{
	{"один", 1},
	{"сто двадцать три", 123},
	{"две тысячи пятнадцать", 2015},
	{"один миллион", 1000000},
}

// SelfCheck parses a fixed set of phrases and reports the first mismatch.
// Health endpoints use it as the vocabulary readiness probe.
func SelfCheck() error {
	if len(vocabulary) == 0 {
		return fmt.Errorf("numword: empty vocabulary")
	}
	for _, s := range selfCheckSamples {
		got, err := ParseWords(s.text)
		if err != nil {
			return fmt.Errorf("numword: self check %q: %w", s.text, err)
		}
		if got != s.want {
			return fmt.Errorf("numword: self check %q: got %d, want %d", s.text, got, s.want)
		}
	}
	return nil
}

package numword

import "slices"

// numberWords maps every recognised surface form to its value.
var numberWords = map[string]int64{
	"ноль": 0,
	"один": 1, "одна": 1,
	"два": 2, "две": 2,
	"три":    3,
	"четыре": 4,
	"пять":   5,
	"шесть":  6,
	"семь":   7,
	"восемь": 8,
	"девять": 9,

	"десять":       10,
	"одиннадцать":  11,
	"двенадцать":   12,
	"тринадцать":   13,
	"четырнадцать": 14,
	"пятнадцать":   15,
	"шестнадцать":  16,
	"семнадцать":   17,
	"восемнадцать": 18,
	"девятнадцать": 19,

	"двадцать":    20,
	"тридцать":    30,
	"сорок":       40,
	"пятьдесят":   50,
	"шестьдесят":  60,
	"семьдесят":   70,
	"восемьдесят": 80,
	"девяносто":   90,

	"сто":       100,
	"двести":    200,
	"триста":    300,
	"четыреста": 400,
	"пятьсот":   500,
	"шестьсот":  600,
	"семьсот":   700,
	"восемьсот": 800,
	"девятьсот": 900,

	"тысяча": 1000, "тысячи": 1000, "тысяч": 1000,
	"миллион": 1000000, "миллиона": 1000000, "миллионов": 1000000,
}

// vocabulary is the sorted key set of numberWords.
var vocabulary = func() []string {
	words := make([]string, 0, len(numberWords))
	for w := range numberWords {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}()

// Lookup returns the value of a lowercase number word.
func Lookup(word string) (int64, bool) {
	v, ok := numberWords[word]
	return v, ok
}

// Words returns a sorted copy of all known number words.
func Words() []string {
	return slices.Clone(vocabulary)
}

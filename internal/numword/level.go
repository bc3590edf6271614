package numword

import "slices"

// Level is the magnitude class of a number word.
type Level int

const (
	Units Level = iota
	Tens
	Hundred
	Thousand
	Million
)

const (
	thousandValue = 1000
	millionValue  = 1000000
)

// LevelOf classifies a value. Teens (10..19) share the Tens level with
// двадцать..девяносто.
func LevelOf(v int64) Level {
	switch {
	case v >= millionValue:
		return Million
	case v >= thousandValue:
		return Thousand
	case v >= 100:
		return Hundred
	case v >= 10:
		return Tens
	default:
		return Units
	}
}

// IsMultiplier reports whether words of this level multiply the running
// segment instead of adding to it.
func (l Level) IsMultiplier() bool {
	return l == Thousand || l == Million
}

func (l Level) String() string {
	switch l {
	case Units:
		return "units"
	case Tens:
		return "tens"
	case Hundred:
		return "hundred"
	case Thousand:
		return "thousand"
	case Million:
		return "million"
	default:
		return "unknown"
	}
}

// successors lists the levels allowed to follow each level.
var successors = map[Level][]Level{
	Million:  {Thousand, Hundred, Tens, Units},
	Thousand: {Hundred, Tens, Units},
	Hundred:  {Tens, Units},
	Tens:     {Units},
	Units:    {Thousand, Million},
}

// Allows reports whether a word of level next may directly follow a word of
// level l.
func (l Level) Allows(next Level) bool {
	return slices.Contains(successors[l], next)
}

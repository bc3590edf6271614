package numword

// Accumulate folds tokens into a single value.
//
// Words below one thousand build up the current segment; a multiplier word
// adds segment*multiplier to the total and starts a new segment. A bare
// multiplier with an empty segment counts as one (тысяча = 1000).
// Accumulate does not check adjacency; use Tokenize for that.
func Accumulate(tokens []Token) (int64, error) {
	var total, segment int64

	for i, tok := range tokens {
		switch {
		case tok.Value >= thousandValue:
			multiplicand := segment
			if multiplicand == 0 {
				multiplicand = 1
			}
			total += multiplicand * tok.Value
			segment = 0
		case tok.Value >= 100:
			segment += tok.Value
		default:
			if segment != 0 && LevelOf(segment) == tok.Level {
				return 0, &ParseError{Kind: KindDuplicateLevel, Prev: tokens[i-1].Word, Curr: tok.Word}
			}
			segment += tok.Value
		}
	}

	total += segment
	if total == 0 {
		return 0, &ParseError{Kind: KindZeroResult}
	}
	return total, nil
}

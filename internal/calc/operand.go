package calc

import (
	"encoding/json"
	"strconv"

	"github.com/heartmarshall/numcalc-backend/internal/numword"
)

// Operand is either a number or text still to be parsed.
// The zero value is a missing operand; see IsZero.
type Operand struct {
	num    float64
	text   string
	isText bool
	set    bool
}

// Number wraps a numeric operand.
func Number(v float64) Operand {
	return Operand{num: v, set: true}
}

// Text wraps a textual operand, parsed with numword.Parse on evaluation.
func Text(s string) Operand {
	return Operand{text: s, isText: true, set: true}
}

// IsZero reports whether the operand was never set.
func (o Operand) IsZero() bool { return !o.set }

// IsText reports whether the operand carries text.
func (o Operand) IsText() bool { return o.isText }

// Value coerces the operand to a number.
func (o Operand) Value() (float64, error) {
	if o.isText {
		return numword.Parse(o.text)
	}
	return o.num, nil
}

func (o Operand) String() string {
	if o.isText {
		return o.text
	}
	return strconv.FormatFloat(o.num, 'f', -1, 64)
}

// UnmarshalJSON accepts a JSON number or string. null leaves the operand unset.
func (o *Operand) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Operand{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*o = Number(f)
	return nil
}

// MarshalJSON writes a number or a string depending on the operand kind.
func (o Operand) MarshalJSON() ([]byte, error) {
	switch {
	case !o.set:
		return []byte("null"), nil
	case o.isText:
		return json.Marshal(o.text)
	default:
		return json.Marshal(o.num)
	}
}

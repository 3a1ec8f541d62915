package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindNull valueKind = iota
	kindInt
	kindFloat
	kindString
)

// Value is a stat that is either a number or a string, depending on the game
// and the card. The zero Value serializes as JSON null.
//
// Floats always keep a fractional part on the wire ("3.0", not "3") so that
// stats produced by division stay distinguishable from integral ones.
type Value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
}

// Null is the absent stat.
var Null = Value{}

func Int(n int) Value { return Value{kind: kindInt, i: int64(n)} }

func Float(f float64) Value { return Value{kind: kindFloat, f: f} }

func String(s string) Value { return Value{kind: kindString, s: s} }

// Number returns an Int for integral values and a Float otherwise.
func Number(f float64) Value {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return Int(int(f))
	}
	return Float(f)
}

func (v Value) IsNull() bool   { return v.kind == kindNull }
func (v Value) IsString() bool { return v.kind == kindString }

// Float64 reports the numeric value and whether v is a number.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case kindInt:
		return float64(v.i), true
	case kindFloat:
		return v.f, true
	}
	return 0, false
}

// String renders v the way it appears in the exported JSON, without quotes.
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return formatFloat(v.f)
	case kindString:
		return v.s
	}
	return "null"
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return s
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case kindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return nil, fmt.Errorf("unsupported stat value %v", v.f)
		}
		return []byte(formatFloat(v.f)), nil
	case kindString:
		return json.Marshal(v.s)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Null
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	}

	text := string(data)
	if !strings.ContainsAny(text, ".eE") {
		n, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			*v = Value{kind: kindInt, i: n}
			return nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid stat value %s: %w", text, err)
	}
	*v = Float(f)
	return nil
}

// Package settings implements a small typed settings tree. Every setting
// holds a [Value] of one of a closed set of kinds and may carry numeric
// constraints parsed from its declaration, e.g.
//
//	"Value start@min=-100;max=100;step=0.5;digits=2"
//
// Trees persist to JSON as a flat map of slash separated paths to values.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Kind enumerates the value kinds a setting may hold.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat32
	KindFloat64
	KindColor
	KindFont
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindColor:   "color",
	KindFont:    "font",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Numeric returns true for int and float kinds.
func (k Kind) Numeric() bool { return k == KindInt || k == KindFloat32 || k == KindFloat64 }

func parseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != int(KindInvalid) && name == s {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown setting kind %q", s)
}

// Font describes the font used to draw text. An empty File selects the
// built-in Go Regular face.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
	File   string  `json:"file,omitempty"`
}

// Value is a tagged union over the setting kinds. The zero Value is invalid.
// Values are comparable with ==.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	c    color.RGBA
	font Font
}

func BoolValue(b bool) Value         { return Value{kind: KindBool, b: b} }
func IntValue(i int) Value           { return Value{kind: KindInt, i: int64(i)} }
func Float32Value(f float32) Value   { return Value{kind: KindFloat32, f: float64(f)} }
func Float64Value(f float64) Value   { return Value{kind: KindFloat64, f: f} }
func FontValue(f Font) Value         { return Value{kind: KindFont, font: f} }
func ColorValue(c color.Color) Value { return Value{kind: KindColor, c: color.RGBAModel.Convert(c).(color.RGBA)} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsValid returns false for the zero Value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Bool returns the boolean held by v. It panics if v is not a bool.
func (v Value) Bool() bool {
	v.mustBe(KindBool)
	return v.b
}

// Int returns the integer held by v. It panics if v is not an int.
func (v Value) Int() int {
	v.mustBe(KindInt)
	return int(v.i)
}

// Float32 returns the float held by v. It panics if v is not a float32.
func (v Value) Float32() float32 {
	v.mustBe(KindFloat32)
	return float32(v.f)
}

// Float64 returns the float held by v. It panics if v is not a float64.
func (v Value) Float64() float64 {
	v.mustBe(KindFloat64)
	return v.f
}

// Color returns the color held by v. It panics if v is not a color.
func (v Value) Color() color.RGBA {
	v.mustBe(KindColor)
	return v.c
}

// Font returns the font held by v. It panics if v is not a font.
func (v Value) Font() Font {
	v.mustBe(KindFont)
	return v.font
}

// Number returns the value of a numeric kind as a float64.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat32, KindFloat64:
		return v.f, true
	}
	return 0, false
}

func (v Value) withNumber(f float64) Value {
	switch v.kind {
	case KindInt:
		v.i = int64(f)
	case KindFloat32:
		v.f = float64(float32(f))
	case KindFloat64:
		v.f = f
	}
	return v
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic("settings: " + k.String() + " accessor called on " + v.kind.String() + " value")
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindColor:
		return formatColor(v.c)
	case KindFont:
		return v.font.Family + " " + strconv.FormatFloat(v.font.Size, 'g', -1, 64)
	}
	return "<invalid>"
}

type jsonValue struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.kind {
	case KindBool:
		payload = v.b
	case KindInt:
		payload = v.i
	case KindFloat32, KindFloat64:
		payload = v.f
	case KindColor:
		payload = formatColor(v.c)
	case KindFont:
		payload = v.font
	default:
		return nil, errors.New("cannot marshal invalid setting value")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonValue{Kind: v.kind.String(), Value: raw})
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	err := json.Unmarshal(data, &jv)
	if err != nil {
		return err
	}
	kind, err := parseKind(jv.Kind)
	if err != nil {
		return err
	}
	nv := Value{kind: kind}
	switch kind {
	case KindBool:
		err = json.Unmarshal(jv.Value, &nv.b)
	case KindInt:
		err = json.Unmarshal(jv.Value, &nv.i)
	case KindFloat32, KindFloat64:
		err = json.Unmarshal(jv.Value, &nv.f)
		if kind == KindFloat32 {
			nv.f = float64(float32(nv.f))
		}
	case KindColor:
		var s string
		err = json.Unmarshal(jv.Value, &s)
		if err == nil {
			nv.c, err = parseColor(s)
		}
	case KindFont:
		err = json.Unmarshal(jv.Value, &nv.font)
	}
	if err != nil {
		return fmt.Errorf("decoding %s setting: %w", kind, err)
	}
	*v = nv
	return nil
}

// formatColor returns c as #rrggbbaa.
func formatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// parseColor parses #rrggbb or #rrggbbaa.
func parseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

package settings

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotFound = errors.New("setting not found")
	ErrKind     = errors.New("setting kind mismatch")
	ErrRange    = errors.New("setting value out of range")
)

// Constraint bounds the value of a numeric setting. Digits is the number of
// decimals float values are rounded to, or -1 for no rounding.
type Constraint struct {
	Min, Max       float64
	HasMin, HasMax bool
	Step           float64
	Digits         int
}

// Check returns an error wrapping [ErrRange] if f violates the bounds.
func (c Constraint) Check(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %g is not finite", ErrRange, f)
	}
	if c.HasMin && f < c.Min {
		return fmt.Errorf("%w: %g < min %g", ErrRange, f, c.Min)
	}
	if c.HasMax && f > c.Max {
		return fmt.Errorf("%w: %g > max %g", ErrRange, f, c.Max)
	}
	return nil
}

// ParseDecl splits a setting declaration of the form
// "Title@key=value;key=value" into its title and constraint. Recognized keys
// are min, max, step and digits. Other keys are ignored.
func ParseDecl(decl string) (title string, c Constraint, err error) {
	c.Digits = -1
	title, params, found := strings.Cut(decl, "@")
	title = strings.TrimSpace(title)
	if title == "" {
		return "", c, fmt.Errorf("setting declaration %q has no title", decl)
	}
	if !found {
		return title, c, nil
	}
	for _, param := range strings.Split(params, ";") {
		if strings.TrimSpace(param) == "" {
			continue
		}
		key, val, ok := strings.Cut(param, "=")
		if !ok {
			return "", c, fmt.Errorf("setting declaration %q: parameter %q missing '='", decl, param)
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "min", "max", "step":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return "", c, fmt.Errorf("setting declaration %q: %s: %w", decl, key, err)
			}
			switch key {
			case "min":
				c.Min, c.HasMin = f, true
			case "max":
				c.Max, c.HasMax = f, true
			default:
				c.Step = f
			}
		case "digits":
			d, err := strconv.Atoi(val)
			if err != nil || d < 0 {
				return "", c, fmt.Errorf("setting declaration %q: invalid digits %q", decl, val)
			}
			c.Digits = d
		}
	}
	if c.HasMin && c.HasMax && c.Min > c.Max {
		return "", c, fmt.Errorf("setting declaration %q: min %g > max %g", decl, c.Min, c.Max)
	}
	return title, c, nil
}

// Item is a single named setting.
type Item struct {
	key        string
	title      string
	constraint Constraint
	value      Value
	def        Value
}

// NewItem creates a setting identified by key with a display declaration
// parsed by [ParseDecl]. The initial value is also the default value and must
// satisfy the declared constraint.
func NewItem(key, decl string, v Value) (*Item, error) {
	if key == "" || strings.Contains(key, "/") {
		return nil, fmt.Errorf("invalid setting key %q", key)
	}
	if !v.IsValid() {
		return nil, fmt.Errorf("setting %q: invalid initial value", key)
	}
	title, c, err := ParseDecl(decl)
	if err != nil {
		return nil, err
	}
	it := &Item{key: key, title: title, constraint: c, value: v}
	err = it.Set(v)
	if err != nil {
		return nil, fmt.Errorf("setting %q initial value: %w", key, err)
	}
	it.def = it.value
	return it, nil
}

func (it *Item) Key() string            { return it.key }
func (it *Item) Title() string          { return it.title }
func (it *Item) Constraint() Constraint { return it.constraint }
func (it *Item) Value() Value           { return it.value }
func (it *Item) Default() Value         { return it.def }
func (it *Item) Kind() Kind             { return it.value.kind }

// Reset restores the default value.
func (it *Item) Reset() { it.value = it.def }

// Set replaces the value of the item. The kind must match the item's kind and
// numeric values must satisfy its constraint. Float values are rounded to the
// declared number of digits. On error the item is left unchanged.
func (it *Item) Set(v Value) error {
	if v.kind != it.value.kind {
		return fmt.Errorf("%w: %s is %s, got %s", ErrKind, it.key, it.value.kind, v.kind)
	}
	f, numeric := v.Number()
	if !numeric {
		it.value = v
		return nil
	}
	if v.kind != KindInt && it.constraint.Digits >= 0 {
		pow := math.Pow10(it.constraint.Digits)
		f = math.Round(f*pow) / pow
	}
	err := it.constraint.Check(f)
	if err != nil {
		return fmt.Errorf("%s: %w", it.key, err)
	}
	it.value = v.withNumber(f)
	return nil
}

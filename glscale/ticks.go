package glscale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrZeroStep      = errors.New("scale step is zero")
	ErrStepDirection = errors.New("scale step points away from scale end")
	ErrEmptyRange    = errors.New("scale start equals end")
	ErrNonFinite     = errors.New("scale parameter is NaN or infinite")
	ErrTooManyTicks  = errors.New("scale step too small for range")
	ErrPrecision     = errors.New("negative scale precision")
)

// Settings describes the labels of one axis: values from Start to Start+Length
// every Step, printed with Precision decimals. Length and Step may be negative
// but must share sign.
type Settings struct {
	Start     float32
	Length    float32
	Step      float32
	Precision int
}

// NewSettings returns validated settings for a scale running from start to end.
func NewSettings(start, end, step float32, precision int) (Settings, error) {
	s := Settings{Start: start, Length: end - start, Step: step, Precision: precision}
	_, err := tickCount(start, end, step, precision)
	if err != nil {
		return Settings{}, err
	}
	return s, nil
}

// End returns the last scale value.
func (s Settings) End() float32 { return s.Start + s.Length }

// Validate checks the settings can produce labels.
func (s Settings) Validate() error {
	_, err := tickCount(s.Start, s.End(), s.Step, s.Precision)
	return err
}

// Labels returns the formatted label of every tick.
func (s Settings) Labels() ([]string, error) {
	return TickLabels(s.Start, s.End(), s.Step, s.Precision)
}

// TickLabels formats the values start, start+step, start+2*step... up to and
// including end (within a small tolerance) with precision decimals.
// It fails fast on parameters that would never reach end.
func TickLabels(start, end, step float32, precision int) ([]string, error) {
	n, err := tickCount(start, end, step, precision)
	if err != nil {
		return nil, err
	}
	labels := make([]string, n)
	for i := range labels {
		v := float64(start) + float64(i)*float64(step)
		labels[i] = formatTick(v, precision)
	}
	return labels, nil
}

func tickCount(start, end, step float32, precision int) (int, error) {
	var err error
	switch {
	case !finite(start) || !finite(end) || !finite(step):
		err = ErrNonFinite
	case step == 0:
		err = ErrZeroStep
	case precision < 0:
		err = ErrPrecision
	case start == end:
		err = ErrEmptyRange
	case (end > start) != (step > 0):
		err = ErrStepDirection
	}
	if err != nil {
		return 0, fmt.Errorf("scale [%g, %g] step %g: %w", start, end, step, err)
	}
	span := math.Abs(float64(end)-float64(start)) + epsilon
	steps := math.Floor(span / math.Abs(float64(step)))
	if steps+1 > MaxTicks {
		return 0, fmt.Errorf("scale [%g, %g] step %g: %w", start, end, step, ErrTooManyTicks)
	}
	return int(steps) + 1, nil
}

func formatTick(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

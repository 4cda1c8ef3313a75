package glscale

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestTickLabels(t *testing.T) {
	tests := []struct {
		start, end, step float32
		precision        int
		want             []string
	}{
		{start: -3, end: 3, step: 0.5, precision: 2, want: []string{
			"-3.00", "-2.50", "-2.00", "-1.50", "-1.00", "-0.50", "0.00",
			"0.50", "1.00", "1.50", "2.00", "2.50", "3.00",
		}},
		{start: 0, end: 1, step: 0.25, precision: 2, want: []string{"0.00", "0.25", "0.50", "0.75", "1.00"}},
		{start: 2, end: -2, step: -1, precision: 0, want: []string{"2", "1", "0", "-1", "-2"}},
		{start: 0, end: 1, step: 0.3, precision: 1, want: []string{"0.0", "0.3", "0.6", "0.9"}},
		{start: -0.3, end: 0.3, step: 0.1, precision: 2, want: []string{"-0.30", "-0.20", "-0.10", "0.00", "0.10", "0.20", "0.30"}},
		{start: 0, end: 0.2, step: 0.5, precision: 1, want: []string{"0.0"}},
	}
	for _, test := range tests {
		got, err := TickLabels(test.start, test.end, test.step, test.precision)
		if err != nil {
			t.Errorf("(%g,%g,%g): %s", test.start, test.end, test.step, err)
			continue
		}
		if len(got) != len(test.want) {
			t.Errorf("(%g,%g,%g): got %d labels %q, want %d", test.start, test.end, test.step, len(got), got, len(test.want))
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("(%g,%g,%g) label %d: got %q, want %q", test.start, test.end, test.step, i, got[i], test.want[i])
			}
		}
	}
}

func TestTickLabelsPreconditions(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		start, end, step float32
		precision        int
		want             error
	}{
		{0, 1, 0, 2, ErrZeroStep},
		{0, 1, -0.5, 2, ErrStepDirection},
		{1, 0, 0.5, 2, ErrStepDirection},
		{1, 1, 0.5, 2, ErrEmptyRange},
		{nan, 1, 0.5, 2, ErrNonFinite},
		{0, inf, 0.5, 2, ErrNonFinite},
		{0, 1, nan, 2, ErrNonFinite},
		{0, 1e6, 1e-3, 2, ErrTooManyTicks},
		{0, 1, 0.5, -1, ErrPrecision},
	}
	for _, test := range tests {
		done := make(chan error, 1)
		go func() {
			_, err := TickLabels(test.start, test.end, test.step, test.precision)
			done <- err
		}()
		select {
		case err := <-done:
			if !errors.Is(err, test.want) {
				t.Errorf("(%g,%g,%g,%d): got error %v, want %v", test.start, test.end, test.step, test.precision, err, test.want)
			}
		case <-time.After(time.Second):
			t.Fatalf("(%g,%g,%g): did not fail fast", test.start, test.end, test.step)
		}
	}
}

func TestSettings(t *testing.T) {
	s, err := NewSettings(-6, 6, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.Length != 12 || s.End() != 6 {
		t.Errorf("got length %g end %g", s.Length, s.End())
	}
	labels, err := s.Labels()
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 25 || labels[0] != "-6.00" || labels[24] != "6.00" {
		t.Errorf("unexpected labels %q", labels)
	}
	_, err = NewSettings(0, 1, 0, 2)
	if !errors.Is(err, ErrZeroStep) {
		t.Errorf("want zero step error, got %v", err)
	}
	if err := (Settings{Start: 0, Length: 1, Step: 0.1}).Validate(); err != nil {
		t.Error(err)
	}
}

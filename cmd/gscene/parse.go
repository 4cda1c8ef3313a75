package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/axisgl/gscene/settings"
	"github.com/soypat/geometry/ms3"
)

type scaleSpec struct {
	start, end, step float32
	precision        int
}

// parseScale parses start:end:step[:precision]. Precision defaults to 2.
func parseScale(s string) (scaleSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return scaleSpec{}, fmt.Errorf("scale %q: want start:end:step[:precision]", s)
	}
	vals, err := parseFloats(parts[:3])
	if err != nil {
		return scaleSpec{}, fmt.Errorf("scale %q: %w", s, err)
	}
	sc := scaleSpec{start: vals[0], end: vals[1], step: vals[2], precision: 2}
	if len(parts) == 4 {
		sc.precision, err = strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			return scaleSpec{}, fmt.Errorf("scale %q precision: %w", s, err)
		}
	}
	return sc, nil
}

// parseRange parses start:end.
func parseRange(s string) (start, end float32, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("range %q: want start:end", s)
	}
	vals, err := parseFloats(parts)
	if err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	return vals[0], vals[1], nil
}

// parseBox parses six comma separated numbers: origin then extents.
func parseBox(s string) (origin, extent ms3.Vec, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return origin, extent, fmt.Errorf("box %q: want 6 comma separated numbers", s)
	}
	v, err := parseFloats(parts)
	if err != nil {
		return origin, extent, fmt.Errorf("box %q: %w", s, err)
	}
	origin = ms3.Vec{X: v[0], Y: v[1], Z: v[2]}
	extent = ms3.Vec{X: v[3], Y: v[4], Z: v[5]}
	if extent.X == 0 || extent.Y == 0 || extent.Z == 0 {
		return origin, extent, errors.New("box extents must be non-zero")
	}
	return origin, extent, nil
}

func parseFloats(parts []string) ([]float32, error) {
	vals := make([]float32, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, err
		}
		vals[i] = float32(f)
	}
	return vals, nil
}

func fontFromFlags() settings.Font {
	f := settings.Font{Family: "Go Regular", Size: flags.fontSize}
	if flags.fontFile != "" {
		f.File = flags.fontFile
		f.Family = strings.TrimSuffix(filepathBase(flags.fontFile), ".ttf")
	}
	return f
}

func filepathBase(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

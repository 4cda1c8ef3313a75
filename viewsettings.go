package gscene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/axisgl/gscene/settings"
)

var (
	scaleGroupKeys = [3]string{AxisX: "xScale", AxisY: "yScale", AxisZ: "zScale"}
	planeKeys      = [3]string{PlaneXY: "planeXY", PlaneYZ: "planeYZ", PlaneXZ: "planeXZ"}
)

// scaleDecls holds the start, length and step declarations of each axis.
var scaleDecls = [3][3]string{
	AxisX: {
		"Value start@min=-100;max=100;step=0.5;digits=2",
		"Value length@min=-100.0;max=100.0;step=0.5;digits=2",
		"Value step@min=-5;max=5;step=0.01;digits=2",
	},
	AxisY: {
		"Value start@min=-100.0;max=100;step=0.5;digits=2",
		"Value length@min=-100.0;max=100;step=0.5;digits=2",
		"Value step@min=-5;max=5;step=0.01;digits=2",
	},
	AxisZ: {
		"Value start@min=-100;max=100;step=0.5;digits=2",
		"Value length@min=0.0;max=100;step=0.5;digits=2",
		"Value step@min=0.01;max=2;step=0.01;digits=2",
	},
}

func (s *Scene) newViewSettings() (*settings.Group, error) {
	root := settings.NewGroup("view3DSettings", "3D view settings")
	scales := settings.NewGroup("scales", "Scales")
	var errs []error
	add := func(g *settings.Group, key, decl string, v settings.Value) {
		_, err := g.AddItem(key, decl, v)
		errs = append(errs, err)
	}
	add(scales, "font", "Font", settings.FontValue(s.font))
	add(scales, "fontColor", "Font color", settings.ColorValue(s.labelColor))
	add(scales, "gridColor", "Grid color", settings.ColorValue(s.gridColor))
	add(scales, planeKeys[PlaneXY], "Plane XY visible", settings.BoolValue(s.planes[PlaneXY].Visible))
	add(scales, planeKeys[PlaneXZ], "Plane XZ visible", settings.BoolValue(s.planes[PlaneXZ].Visible))
	add(scales, planeKeys[PlaneYZ], "Plane YZ visible", settings.BoolValue(s.planes[PlaneYZ].Visible))
	for axis, key := range scaleGroupKeys {
		g := settings.NewGroup(key, "Scale "+strings.ToUpper(key[:1]))
		st := s.scales[axis]
		add(g, "start", scaleDecls[axis][0], settings.Float32Value(st.Start))
		add(g, "length", scaleDecls[axis][1], settings.Float32Value(st.Length))
		add(g, "step", scaleDecls[axis][2], settings.Float32Value(st.Step))
		errs = append(errs, scales.AddGroup(g))
	}
	errs = append(errs, root.AddGroup(scales))
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("building view settings: %w", err)
	}
	return root, nil
}

// ViewSettings returns the settings tree describing the scene. Change it
// through [Scene.ApplySetting] so the scene follows.
func (s *Scene) ViewSettings() *settings.Group { return s.view }

// ApplySetting sets the value at path in the view settings and applies it to
// the scene. If the scene rejects the value the setting keeps its previous
// value. Paths look like "scales/planeXY" or "scales/xScale/step".
func (s *Scene) ApplySetting(path string, v settings.Value) error {
	it, err := s.view.Find(path)
	if err != nil {
		return err
	}
	prev := it.Value()
	err = it.Set(v)
	if err != nil {
		return err
	}
	err = s.applyPath(path, s.view.Values())
	if err != nil {
		it.Set(prev)
		return err
	}
	return nil
}

// LoadSettings loads view settings saved with [Scene.SaveSettings] and
// applies them. A missing file is not an error. Values the scene rejects are
// reported and the scene keeps its current state for them.
func (s *Scene) LoadSettings(path string) error {
	errLoad := settings.Load(path, s.view)
	var errs []error
	errs = append(errs, errLoad)
	// Every scene setter syncs the tree back from the scene, so apply from a
	// snapshot of the loaded values.
	loaded := s.view.Values()
	for _, p := range []string{"scales/font", "scales/gridColor", planePath(PlaneXY), planePath(PlaneYZ), planePath(PlaneXZ)} {
		errs = append(errs, s.applyPath(p, loaded))
	}
	for axis := range scaleGroupKeys {
		errs = append(errs, s.applyPath(scalePath(Axis(axis), "start"), loaded))
	}
	s.syncView()
	return errors.Join(errs...)
}

// SaveSettings writes the view settings to path as JSON.
func (s *Scene) SaveSettings(path string) error {
	return settings.Save(path, s.view)
}

func planePath(p Plane) string { return "scales/" + planeKeys[p] }

func scalePath(axis Axis, field string) string {
	return "scales/" + scaleGroupKeys[axis] + "/" + field
}

// applyPath pushes the setting at path, read from values, into the scene.
// Settings that are applied together, like the font and its color, are all
// read from values.
func (s *Scene) applyPath(path string, values map[string]settings.Value) error {
	val := func(p string) settings.Value {
		v, ok := values[p]
		if !ok {
			panic("gscene: missing view setting " + p)
		}
		return v
	}
	switch path {
	case "scales/font", "scales/fontColor":
		font, c := val("scales/font").Font(), val("scales/fontColor").Color()
		if font == s.font && settings.ColorValue(s.labelColor) == settings.ColorValue(c) {
			return nil
		}
		return s.SetLabelStyle(font, c)
	case "scales/gridColor":
		s.SetGridColor(val(path).Color())
		return nil
	}
	for p := range planeKeys {
		if path == planePath(Plane(p)) {
			s.SetPlaneVisible(Plane(p), val(path).Bool())
			return nil
		}
	}
	for axis := range scaleGroupKeys {
		a := Axis(axis)
		switch path {
		case scalePath(a, "start"), scalePath(a, "length"), scalePath(a, "step"):
			start := val(scalePath(a, "start")).Float32()
			length := val(scalePath(a, "length")).Float32()
			step := val(scalePath(a, "step")).Float32()
			cur := s.scales[a]
			if cur.Start == start && cur.Length == length && cur.Step == step {
				return nil
			}
			return s.UpdateAxisScale(a, start, start+length, step, cur.Precision)
		}
	}
	return fmt.Errorf("%w: %q", settings.ErrNotFound, path)
}

// syncView writes the scene state into the view settings. Values outside the
// declared ranges, possible through the direct API, are left as they were.
func (s *Scene) syncView() {
	if s.view == nil {
		return
	}
	set := func(path string, v settings.Value) {
		err := s.view.Set(path, v)
		if err != nil {
			Logger().Debug("view setting not synced", "path", path, "err", err)
		}
	}
	set("scales/font", settings.FontValue(s.font))
	set("scales/fontColor", settings.ColorValue(s.labelColor))
	set("scales/gridColor", settings.ColorValue(s.gridColor))
	for p := range planeKeys {
		set(planePath(Plane(p)), settings.BoolValue(s.planes[p].Visible))
	}
	for axis := range scaleGroupKeys {
		st := s.scales[axis]
		set(scalePath(Axis(axis), "start"), settings.Float32Value(st.Start))
		set(scalePath(Axis(axis), "length"), settings.Float32Value(st.Length))
		set(scalePath(Axis(axis), "step"), settings.Float32Value(st.Step))
	}
}

package glprim

import (
	"image/color"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

func TestManagerOrder(t *testing.T) {
	m := NewManager()
	s := m.AddSphere(8, 1, 1, 1, up)
	c := m.AddCone(8, 1, 1, up)
	cy := m.AddCylinder(8, 1, 1, up)
	a := m.AddSimpleArrow(6, 1, .2, .05, ms3.Vec{Y: 1})
	want := []*Primitive{s, c, cy, a.Primitive}
	got := m.Primitives()
	if len(got) != len(want) || m.Len() != len(want) {
		t.Fatalf("got %d primitives, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("primitive %d out of insertion order", i)
		}
	}
	if m.Linked() {
		t.Error("new manager must not be linked")
	}
	// Unlinked managers draw nothing and must not touch GL.
	m.DrawPrimitives(a.Matrix())
}

func TestPrimitiveDefaults(t *testing.T) {
	p := NewSphere(8, 1, 1, 1, up)
	if p.DrawStyle() != Surface {
		t.Errorf("default style %v, want surface", p.DrawStyle())
	}
	p.SetDrawStyle(Points)
	if p.DrawStyle() != Points {
		t.Errorf("style not updated: %v", p.DrawStyle())
	}
	p.SetColor(nil)
	if p.Color() == nil {
		t.Error("nil color must be ignored")
	}
	p.SetColor(color.White)
	if colorVec3(p.Color()) != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("white converted to %v", colorVec3(p.Color()))
	}
}

func TestCapabilitiesFromVersion(t *testing.T) {
	tests := []struct {
		version string
		want    Capabilities
		wantErr bool
	}{
		{version: "4.6.0 NVIDIA 535.183.01", want: Capabilities{Shaders: true, VertexBuffers: true}},
		{version: "2.1 Mesa 23.0", want: Capabilities{Shaders: true, VertexBuffers: true}},
		{version: "1.5.0", want: Capabilities{VertexBuffers: true}},
		{version: "1.4", want: Capabilities{}},
		{version: "OpenGL ES 3.2 Mesa", want: Capabilities{Shaders: true, VertexBuffers: true}},
		{version: "", wantErr: true},
		{version: "garbage", wantErr: true},
	}
	for _, test := range tests {
		got, err := CapabilitiesFromVersion(test.version)
		if (err != nil) != test.wantErr {
			t.Errorf("%q: unexpected error state %v", test.version, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q: got %+v, want %+v", test.version, got, test.want)
		}
	}
}

func TestDefaultShaders(t *testing.T) {
	if !strings.Contains(DefaultVertexShader, "matrix") || !strings.Contains(DefaultVertexShader, "aPos") {
		t.Error("default vertex shader missing matrix uniform or aPos attribute")
	}
	if !strings.Contains(DefaultFragmentShader, "color") {
		t.Error("default fragment shader missing color uniform")
	}
	if got := nulTerminated("x"); got != "x\x00" {
		t.Errorf("got %q", got)
	}
	if got := nulTerminated("x\x00"); got != "x\x00" {
		t.Errorf("double terminated: %q", got)
	}
}

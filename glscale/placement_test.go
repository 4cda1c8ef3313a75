package glscale

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{-450, 270},
		{725, 5},
		{0, 0},
		{360, 0},
		{-360, 0},
		{-720, 0},
		{-45, 315},
		{45, 45},
		{359.5, 359.5},
		{-180, 180},
	}
	for _, test := range tests {
		got := NormalizeAngle(test.in)
		if math32.Abs(got-test.want) > 1e-4 {
			t.Errorf("NormalizeAngle(%g)=%g, want %g", test.in, got, test.want)
		}
	}
	for a := float32(-1000); a < 1000; a += 7.3 {
		got := NormalizeAngle(a)
		if got < 0 || got >= 360 {
			t.Fatalf("NormalizeAngle(%g)=%g out of [0,360)", a, got)
		}
	}
	if got := NormalizeAngle(-1e-7); got < 0 || got >= 360 {
		t.Errorf("tiny negative angle normalized to %g", got)
	}
}

func TestQuadrantAndView(t *testing.T) {
	quads := []struct {
		z    float32
		want int
	}{
		{0, 0}, {89.999, 0}, {90, 1}, {179.999, 1}, {180, 2}, {269.999, 2}, {270, 3}, {359.999, 3},
		{-1, 3}, {-90, 3}, {-100, 2}, {450, 1},
	}
	for _, test := range quads {
		if got := QuadrantOf(test.z); got != test.want {
			t.Errorf("QuadrantOf(%g)=%d, want %d", test.z, got, test.want)
		}
	}
	views := []struct {
		x    float32
		want bool
	}{
		{0, true}, {-45, true}, {-90, true}, {-90.5, false}, {-180, false}, {-135, false},
	}
	for _, test := range views {
		if got := ViewFromTop(test.x); got != test.want {
			t.Errorf("ViewFromTop(%g)=%v, want %v", test.x, got, test.want)
		}
	}
}

var testBox = ms3.Box{Min: ms3.Vec{X: -3, Y: -2, Z: -1}, Max: ms3.Vec{X: 3, Y: 2, Z: 1}}

func TestPanelsDefaultView(t *testing.T) {
	// Default camera: zRot=45, xRot=-45. Looking down, first quadrant.
	panels := Panels(nil, [3]bool{true, true, true}, 45, -45, testBox)
	wantTex := []TextureKey{
		{AxisX, NormalRight}, {AxisZ, NormalRight}, // XZ
		{AxisY, NormalLeft}, {AxisZ, NormalLeft}, // YZ
		{AxisY, NormalRight}, {AxisX, NormalLeft}, // XY
	}
	if len(panels) != len(wantTex) {
		t.Fatalf("got %d panels, want %d", len(panels), len(wantTex))
	}
	for i := range wantTex {
		if panels[i].Texture != wantTex[i] {
			t.Errorf("panel %d: got texture %v, want %v", i, panels[i].Texture, wantTex[i])
		}
	}
	// X labels on the XZ plane lie on the far Y face above the box top.
	x := panels[0]
	wantCorners := [4]ms3.Vec{
		{X: -3, Y: 2, Z: 1},
		{X: -3, Y: 2, Z: 2},
		{X: 3, Y: 2, Z: 2},
		{X: 3, Y: 2, Z: 1},
	}
	wantUV := [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}
	if x.Corners != wantCorners {
		t.Errorf("got corners %v, want %v", x.Corners, wantCorners)
	}
	if x.UV != wantUV {
		t.Errorf("got uv %v, want %v", x.UV, wantUV)
	}
}

func TestPanelsTable(t *testing.T) {
	zRots := []float32{0, 45, 89.999, 90, 135, 179.999, 180, 225, 269.999, 270, 315, 359.999, -10, 405}
	xRots := []float32{0, -30, -90, -91, -135, -180}
	all := [3]bool{true, true, true}
	for _, z := range zRots {
		for _, x := range xRots {
			panels := Panels(nil, all, z, x, testBox)
			again := Panels(nil, all, z, x, testBox)
			if len(panels) != 6 || len(again) != 6 {
				t.Fatalf("z=%g x=%g: got %d panels, want 6", z, x, len(panels))
			}
			for i := range panels {
				if panels[i] != again[i] {
					t.Fatalf("z=%g x=%g: nondeterministic panel %d", z, x, i)
				}
				checkPanel(t, z, x, panels[i])
			}
			// Plane order and axes: XZ (X,Z), YZ (Y,Z), XY (Y,X).
			wantAxes := []Axis{AxisX, AxisZ, AxisY, AxisZ, AxisY, AxisX}
			for i, a := range wantAxes {
				if panels[i].Texture.Axis != a {
					t.Errorf("z=%g x=%g: panel %d axis %v, want %v", z, x, i, panels[i].Texture.Axis, a)
				}
			}
		}
	}
}

func TestPanelsVisibility(t *testing.T) {
	for p := Plane(0); p < numPlanes; p++ {
		var visible [3]bool
		visible[p] = true
		panels := Panels(nil, visible, 200, -100, testBox)
		if len(panels) != 2 {
			t.Errorf("plane %v alone: got %d panels, want 2", p, len(panels))
		}
	}
	if got := Panels(nil, [3]bool{}, 10, -10, testBox); len(got) != 0 {
		t.Errorf("no visible planes: got %d panels", len(got))
	}
}

// checkPanel verifies a panel is a rectangle with one side on a box edge and
// the opposite side Delta outside the box, textured with the full unit square.
func checkPanel(t *testing.T, z, x float32, p Panel) {
	t.Helper()
	if p.Texture.Axis == AxisZ && p.Texture.Variant != NormalRight && p.Texture.Variant != NormalLeft {
		t.Errorf("z=%g x=%g: Z panel uses variant %v", z, x, p.Texture.Variant)
	}
	seen := map[[2]float32]bool{}
	for _, uv := range p.UV {
		seen[uv] = true
	}
	for _, uv := range [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if !seen[uv] {
			t.Errorf("z=%g x=%g: panel %v missing uv %v", z, x, p.Texture, uv)
		}
	}
	outside := 0
	for _, c := range p.Corners {
		out := 0
		for _, d := range [][3]float32{{c.X, testBox.Min.X, testBox.Max.X}, {c.Y, testBox.Min.Y, testBox.Max.Y}, {c.Z, testBox.Min.Z, testBox.Max.Z}} {
			switch d[0] {
			case d[1], d[2]:
			case d[1] - Delta, d[2] + Delta:
				out++
			default:
				t.Errorf("z=%g x=%g: corner %v not on box edge or panel edge", z, x, c)
			}
		}
		if out > 1 {
			t.Errorf("z=%g x=%g: corner %v outside box on %d axes", z, x, c, out)
		}
		outside += out
	}
	if outside != 2 {
		t.Errorf("z=%g x=%g: panel %v has %d corners outside the box, want 2", z, x, p.Texture, outside)
	}
	// Consecutive corners differ along exactly one axis.
	for i := range p.Corners {
		a, b := p.Corners[i], p.Corners[(i+1)%4]
		diff := 0
		if a.X != b.X {
			diff++
		}
		if a.Y != b.Y {
			diff++
		}
		if a.Z != b.Z {
			diff++
		}
		if diff != 1 {
			t.Errorf("z=%g x=%g: panel %v side %d not axis aligned", z, x, p.Texture, i)
		}
	}
}

type goldenPanel struct {
	tex    TextureKey
	corner ms3.Vec
	uv     [4][2]float32
}

// panelGolden holds the expected panels of a single visible plane, indexed by
// plane, Z rotation quadrant and view (0 from the top, 1 from below), for testBox.
var panelGolden = [numPlanes][4][2][]goldenPanel{
	PlaneXY: {
		{ // quadrant 0
			{
				{TextureKey{AxisY, NormalRight}, ms3.Vec{X: -4, Y: -2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
				{TextureKey{AxisX, NormalLeft}, ms3.Vec{X: -3, Y: -2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
			{
				{TextureKey{AxisY, InvertedRight}, ms3.Vec{X: -4, Y: -2, Z: 1}, [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}},
				{TextureKey{AxisX, InvertedLeft}, ms3.Vec{X: -3, Y: -2, Z: 1}, [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}},
			},
		},
		{ // quadrant 1
			{
				{TextureKey{AxisY, InvertedLeft}, ms3.Vec{X: -4, Y: -2, Z: -1}, [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}}},
				{TextureKey{AxisX, NormalRight}, ms3.Vec{X: -3, Y: 2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
			{
				{TextureKey{AxisY, NormalLeft}, ms3.Vec{X: -4, Y: -2, Z: 1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
				{TextureKey{AxisX, InvertedRight}, ms3.Vec{X: -3, Y: 2, Z: 1}, [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}}},
			},
		},
		{ // quadrant 2
			{
				{TextureKey{AxisY, InvertedRight}, ms3.Vec{X: 4, Y: -2, Z: -1}, [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}},
				{TextureKey{AxisX, InvertedLeft}, ms3.Vec{X: -3, Y: 2, Z: -1}, [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}},
			},
			{
				{TextureKey{AxisY, NormalRight}, ms3.Vec{X: 4, Y: -2, Z: 1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
				{TextureKey{AxisX, NormalLeft}, ms3.Vec{X: -3, Y: 2, Z: 1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
		},
		{ // quadrant 3
			{
				{TextureKey{AxisY, NormalLeft}, ms3.Vec{X: 4, Y: -2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
				{TextureKey{AxisX, InvertedRight}, ms3.Vec{X: -3, Y: -2, Z: -1}, [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}}},
			},
			{
				{TextureKey{AxisY, InvertedLeft}, ms3.Vec{X: 4, Y: -2, Z: 1}, [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}}},
				{TextureKey{AxisX, NormalRight}, ms3.Vec{X: -3, Y: -2, Z: 1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
		},
	},
	PlaneYZ: {
		{ // quadrant 0
			{
				{TextureKey{AxisY, NormalLeft}, ms3.Vec{X: 3, Y: -2, Z: 2}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
				{TextureKey{AxisZ, NormalLeft}, ms3.Vec{X: 3, Y: -2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
			{
				{TextureKey{AxisY, NormalRight}, ms3.Vec{X: 3, Y: -2, Z: -2}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
				{TextureKey{AxisZ, NormalLeft}, ms3.Vec{X: 3, Y: -2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
		},
		{ // quadrant 1
			{
				{TextureKey{AxisY, InvertedRight}, ms3.Vec{X: 3, Y: -2, Z: 2}, [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}},
				{TextureKey{AxisZ, NormalRight}, ms3.Vec{X: 3, Y: 2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
			{
				{TextureKey{AxisY, InvertedLeft}, ms3.Vec{X: 3, Y: -2, Z: -2}, [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}}},
				{TextureKey{AxisZ, NormalRight}, ms3.Vec{X: 3, Y: 2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
		},
		{ // quadrant 2
			{
				{TextureKey{AxisY, InvertedLeft}, ms3.Vec{X: -3, Y: -2, Z: 2}, [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}}},
				{TextureKey{AxisZ, NormalLeft}, ms3.Vec{X: -3, Y: 2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
			{
				{TextureKey{AxisY, InvertedRight}, ms3.Vec{X: -3, Y: -2, Z: -2}, [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}},
				{TextureKey{AxisZ, NormalLeft}, ms3.Vec{X: -3, Y: 2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
		},
		{ // quadrant 3
			{
				{TextureKey{AxisY, NormalRight}, ms3.Vec{X: -3, Y: -2, Z: 2}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
				{TextureKey{AxisZ, NormalRight}, ms3.Vec{X: -3, Y: -2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
			{
				{TextureKey{AxisY, NormalLeft}, ms3.Vec{X: -3, Y: -2, Z: -2}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
				{TextureKey{AxisZ, NormalRight}, ms3.Vec{X: -3, Y: -2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
		},
	},
	PlaneXZ: {
		{ // quadrant 0
			{
				{TextureKey{AxisX, NormalRight}, ms3.Vec{X: -3, Y: 2, Z: 1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
				{TextureKey{AxisZ, NormalRight}, ms3.Vec{X: -3, Y: 2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
			{
				{TextureKey{AxisX, NormalLeft}, ms3.Vec{X: -3, Y: 2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
				{TextureKey{AxisZ, NormalRight}, ms3.Vec{X: -3, Y: 2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
		},
		{ // quadrant 1
			{
				{TextureKey{AxisX, NormalLeft}, ms3.Vec{X: -3, Y: -2, Z: 1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
				{TextureKey{AxisZ, NormalLeft}, ms3.Vec{X: -3, Y: -2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
			{
				{TextureKey{AxisX, NormalRight}, ms3.Vec{X: -3, Y: -2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
				{TextureKey{AxisZ, NormalLeft}, ms3.Vec{X: -3, Y: -2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
		},
		{ // quadrant 2
			{
				{TextureKey{AxisX, InvertedRight}, ms3.Vec{X: -3, Y: -2, Z: 1}, [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}}},
				{TextureKey{AxisZ, NormalRight}, ms3.Vec{X: 3, Y: -2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
			{
				{TextureKey{AxisX, InvertedLeft}, ms3.Vec{X: -3, Y: -2, Z: -1}, [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}},
				{TextureKey{AxisZ, NormalRight}, ms3.Vec{X: 3, Y: -2, Z: -1}, [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}},
			},
		},
		{ // quadrant 3
			{
				{TextureKey{AxisX, InvertedLeft}, ms3.Vec{X: -3, Y: 2, Z: 1}, [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}},
				{TextureKey{AxisZ, NormalLeft}, ms3.Vec{X: 3, Y: 2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
			{
				{TextureKey{AxisX, InvertedRight}, ms3.Vec{X: -3, Y: 2, Z: -1}, [4][2]float32{{1, 1}, {0, 1}, {0, 0}, {1, 0}}},
				{TextureKey{AxisZ, NormalLeft}, ms3.Vec{X: 3, Y: 2, Z: -1}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
			},
		},
	},
}

func TestPanelsGolden(t *testing.T) {
	// Boundary angles for every quadrant and both views.
	angles := []float32{0, 89.999, 90, 179.999, 180, 269.999, 270, 359.999}
	quadrant := []int{0, 0, 1, 1, 2, 2, 3, 3}
	fromTop := []bool{true, false, false, false, false, false, true, true}
	for p := Plane(0); p < numPlanes; p++ {
		var visible [3]bool
		visible[p] = true
		for iz, z := range angles {
			for ix, x := range angles {
				view := 1
				if fromTop[ix] {
					view = 0
				}
				want := panelGolden[p][quadrant[iz]][view]
				got := Panels(nil, visible, z, x, testBox)
				if len(got) != len(want) {
					t.Fatalf("%v z=%g x=%g: got %d panels, want %d", p, z, x, len(got), len(want))
				}
				for i := range want {
					if got[i].Texture != want[i].tex {
						t.Errorf("%v z=%g x=%g panel %d: texture %v, want %v", p, z, x, i, got[i].Texture, want[i].tex)
					}
					if got[i].Corners[0] != want[i].corner {
						t.Errorf("%v z=%g x=%g panel %d: first corner %v, want %v", p, z, x, i, got[i].Corners[0], want[i].corner)
					}
					if got[i].UV != want[i].uv {
						t.Errorf("%v z=%g x=%g panel %d: uv %v, want %v", p, z, x, i, got[i].UV, want[i].uv)
					}
				}
			}
		}
	}
}

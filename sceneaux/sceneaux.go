// Package sceneaux has helpers to get a [gscene.Scene] on screen quickly: a
// GLFW window loop with the usual keyboard and mouse bindings, PNG dumps
// of the label images for inspection and STL export of the primitives.
package sceneaux

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/axisgl/gscene"
	"github.com/axisgl/gscene/glrender"
	"github.com/axisgl/gscene/glscale"
	"github.com/go-gl/mathgl/mgl32"
)

type UIConfig struct {
	Width, Height int
	// Title of the window. Defaults to "gscene".
	Title string
	// Context ends the UI loop when done. May be nil.
	Context context.Context
	// SettingsFile is loaded before the first frame and saved when the
	// window closes. Empty disables persistence.
	SettingsFile string
	// Paint draws user content between the two scale passes of every frame.
	Paint func(vp mgl32.Mat4)
	// Continuous redraws every frame instead of only after input or scene changes.
	Continuous bool
}

// UI opens a window showing s and runs until the window is closed or the
// configured context is done. It must run on the main OS thread; call
// runtime.LockOSThread in an init function of the main package.
//
// Bindings: +/= and - zoom, arrow keys rotate about X and Z, Z/X rotate
// about Y, W/S/A/D/Q/E translate, space resets the view, F toggles first
// person movement. Dragging with the right button rotates and the wheel
// moves the camera, ten times faster with Ctrl held.
func UI(s *gscene.Scene, cfg UIConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "gscene"
	}
	return ui(s, cfg)
}

var keyCommands = map[string]gscene.Command{
	"+":     gscene.CmdZoomIn,
	"=":     gscene.CmdZoomIn,
	"-":     gscene.CmdZoomOut,
	"up":    gscene.CmdRotateUp,
	"down":  gscene.CmdRotateDown,
	"left":  gscene.CmdRotateLeft,
	"right": gscene.CmdRotateRight,
	"z":     gscene.CmdRotateForward,
	"x":     gscene.CmdRotateBackward,
	"w":     gscene.CmdTranslateUp,
	"s":     gscene.CmdTranslateDown,
	"a":     gscene.CmdTranslateLeft,
	"d":     gscene.CmdTranslateRight,
	"q":     gscene.CmdTranslateForward,
	"e":     gscene.CmdTranslateBackward,
	"space": gscene.CmdReset,
}

// CommandForKey returns the camera command bound to a key name such as
// "up", "space" or "w". Letter keys are case insensitive.
func CommandForKey(name string) (gscene.Command, bool) {
	cmd, ok := keyCommands[strings.ToLower(name)]
	return cmd, ok
}

// WriteLabelPNGs writes every label image of s to dir as
// <axis>-<variant>.png and returns the file names written. Images are flipped
// back upright.
func WriteLabelPNGs(dir string, s *gscene.Scene) ([]string, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, err
	}
	var files []string
	for axis := gscene.AxisX; axis <= gscene.AxisZ; axis++ {
		ai := s.Labels(axis)
		if ai == nil {
			continue
		}
		for v, img := range ai.Images {
			if img == nil {
				continue
			}
			name := filepath.Join(dir, fmt.Sprintf("%s-%s.png", strings.ToLower(axis.String()), glscale.Variant(v)))
			err = WritePNG(name, transform.FlipV(img))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
	}
	return files, nil
}

// WritePNG encodes img to a new PNG file.
func WritePNG(filename string, img image.Image) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = png.Encode(fp, img)
	if err != nil {
		return err
	}
	return fp.Sync()
}

// WriteSTL writes the surface triangles of every scene primitive to a binary
// STL file and returns the number of triangles written.
func WriteSTL(filename string, s *gscene.Scene) (int, error) {
	triangles, err := glrender.RenderAll(glrender.NewPrimitiveRenderer(s.Primitives().Primitives()))
	if err != nil {
		return 0, err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	_, err = glrender.WriteBinarySTL(fp, triangles)
	if err != nil {
		return 0, err
	}
	return len(triangles), fp.Sync()
}

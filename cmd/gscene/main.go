package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"github.com/axisgl/gscene"
	"github.com/axisgl/gscene/glprim"
	"github.com/axisgl/gscene/sceneaux"
	"github.com/soypat/geometry/ms3"
	"github.com/spf13/cobra"
)

func init() {
	runtime.LockOSThread()
}

type sceneFlags struct {
	scales   [3]string
	box      string
	arrow    string
	fontFile string
	fontSize float64
	verbose  bool
}

var (
	flags    sceneFlags
	uiConfig sceneaux.UIConfig
	shapes   bool
)

var rootCmd = &cobra.Command{
	Use:   "gscene",
	Short: "Interactive 3D coordinate scene viewer",
	Long: `gscene opens a window showing axis arrows inside a bounding box whose faces
carry grid lines and tick labels. Labels follow the camera so they stay readable.

Scales are given as start:end:step[:precision], the box as
originX,originY,originZ,extentX,extentY,extentZ.`,
	Version: "0.1.0",
	Args:    cobra.NoArgs,
	RunE:    runView,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.scales[gscene.AxisX], "xscale", "-6:6:0.5:2", "X axis scale")
	pf.StringVar(&flags.scales[gscene.AxisY], "yscale", "-3:3:0.25:2", "Y axis scale")
	pf.StringVar(&flags.scales[gscene.AxisZ], "zscale", "-3:3:0.25:2", "Z axis scale")
	pf.StringVar(&flags.box, "box", "-3,-3,-3,6,6,6", "bounding box origin and extents")
	pf.StringVar(&flags.fontFile, "font", "", "TrueType font file for labels (default Go Regular)")
	pf.Float64Var(&flags.fontSize, "font-size", 10, "label font size in points")
	pf.BoolVar(&shapes, "shapes", false, "add a sphere, cone and cylinder to the scene")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log GL and scene diagnostics")

	f := rootCmd.Flags()
	f.IntVar(&uiConfig.Width, "width", 800, "window width")
	f.IntVar(&uiConfig.Height, "height", 600, "window height")
	f.StringVar(&uiConfig.SettingsFile, "settings", "", "view settings JSON file, loaded at start and saved on exit")
	f.StringVar(&flags.arrow, "arrow", "-3:3", "X arrow range as start:end")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newScene builds a scene from the persistent flags.
func newScene() (*gscene.Scene, error) {
	if flags.verbose {
		gscene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	s, err := gscene.NewScene(gscene.Config{
		Font: fontFromFlags(),
	})
	if err != nil {
		return nil, err
	}
	origin, extent, err := parseBox(flags.box)
	if err != nil {
		return nil, err
	}
	err = s.SetBoundingBox(origin, extent)
	if err != nil {
		return nil, err
	}
	for axis, spec := range flags.scales {
		sc, err := parseScale(spec)
		if err != nil {
			return nil, fmt.Errorf("--%cscale: %w", "xyz"[axis], err)
		}
		err = s.UpdateAxisScale(gscene.Axis(axis), sc.start, sc.end, sc.step, sc.precision)
		if err != nil {
			return nil, err
		}
	}
	if shapes {
		addShapes(s.Primitives())
	}
	return s, nil
}

func runView(cmd *cobra.Command, args []string) error {
	s, err := newScene()
	if err != nil {
		return err
	}
	start, end, err := parseRange(flags.arrow)
	if err != nil {
		return fmt.Errorf("--arrow: %w", err)
	}
	s.SetAxisArrowRange(start, end)
	uiConfig.Context = cmd.Context()
	return sceneaux.UI(s, uiConfig)
}

func addShapes(m *glprim.Manager) {
	sphere := m.AddSphere(24, 0.6, 0.6, 0.6, ms3.Vec{Z: 1})
	sphere.SetColor(color.RGBA{R: 200, G: 80, B: 60, A: 255})
	sphere.SetDrawStyle(glprim.TriangleWireframe)

	cone := m.AddCone(24, 1.2, 0.5, ms3.Vec{X: 1, Y: 1})
	cone.SetPos(ms3.Vec{X: 1.5, Y: -1.5})
	cone.SetColor(color.RGBA{R: 60, G: 140, B: 200, A: 255})

	cyl := m.AddCylinder(24, 1.5, 0.4, ms3.Vec{Z: 1})
	cyl.SetPos(ms3.Vec{X: -1.5, Y: 1.5, Z: -0.75})
	cyl.SetColor(color.RGBA{R: 90, G: 170, B: 90, A: 255})
	cyl.SetDrawStyle(glprim.Wireframe)
}

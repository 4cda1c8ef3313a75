//go:build !tinygo && cgo

package sceneaux

import (
	"fmt"
	"time"

	"github.com/axisgl/gscene"
	"github.com/axisgl/gscene/glprim"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeyNames = map[glfw.Key]string{
	glfw.KeyEqual:      "=",
	glfw.KeyKPAdd:      "+",
	glfw.KeyMinus:      "-",
	glfw.KeyKPSubtract: "-",
	glfw.KeyUp:         "up",
	glfw.KeyDown:       "down",
	glfw.KeyLeft:       "left",
	glfw.KeyRight:      "right",
	glfw.KeyZ:          "z",
	glfw.KeyX:          "x",
	glfw.KeyW:          "w",
	glfw.KeyS:          "s",
	glfw.KeyA:          "a",
	glfw.KeyD:          "d",
	glfw.KeyQ:          "q",
	glfw.KeyE:          "e",
	glfw.KeySpace:      "space",
}

func ui(s *gscene.Scene, cfg UIConfig) error {
	log := gscene.Logger()
	window, term, err := startGLFW(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	defer term()
	caps := glprim.ProbeCapabilities()
	log.Debug("GL context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)), "shaders", caps.Shaders, "vertexBuffers", caps.VertexBuffers)

	if cfg.SettingsFile != "" {
		err = s.LoadSettings(cfg.SettingsFile)
		if err != nil {
			log.Warn("loading view settings", "file", cfg.SettingsFile, "err", err)
		}
		defer func() {
			if err := s.SaveSettings(cfg.SettingsFile); err != nil {
				log.Warn("saving view settings", "file", cfg.SettingsFile, "err", err)
			}
		}()
	}
	err = s.InitGL(caps, glprim.DefaultVertexShader, glprim.DefaultFragmentShader)
	if err != nil {
		return err
	}
	defer s.Close()

	refresh := true
	var rightDown bool
	var lastX, lastY float64
	cam := s.Camera()
	s.OnRedraw(func() { refresh = true })

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyF && action == glfw.Press {
			if cam.Mode == gscene.ObjectMode {
				cam.Mode = gscene.FirstPersonMode
			} else {
				cam.Mode = gscene.ObjectMode
			}
			log.Info("camera move mode changed", "firstPerson", cam.Mode == gscene.FirstPersonMode)
			return
		}
		if key == glfw.KeyEqual && mods&glfw.ModShift != 0 {
			key = glfw.KeyKPAdd
		}
		cmd, ok := CommandForKey(glfwKeyNames[key])
		if !ok {
			return
		}
		cam.Apply(cmd)
		refresh = true
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonRight {
			return
		}
		rightDown = action == glfw.Press
		if rightDown {
			lastX, lastY = w.GetCursorPos()
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !rightDown {
			return
		}
		width, height := w.GetSize()
		cam.Drag(float32(xpos-lastX), float32(ypos-lastY), width, height)
		lastX, lastY = xpos, ypos
		refresh = true
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		fast := w.GetKey(glfw.KeyLeftControl) == glfw.Press || w.GetKey(glfw.KeyRightControl) == glfw.Press
		cam.Wheel(float32(yoff), fast)
		refresh = true
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		refresh = true
	})

	ctx := cfg.Context
	for !window.ShouldClose() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		if refresh || cfg.Continuous {
			refresh = false
			width, height := window.GetFramebufferSize()
			s.Frame(width, height, cfg.Paint)
			window.SwapBuffers()
		}
		time.Sleep(time.Second / 60)
		glfw.PollEvents()
	}
	return nil
}

func startGLFW(width, height int, title string) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("creating GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	return window, glfw.Terminate, nil
}

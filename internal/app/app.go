// Package app wires the window, renderer, camera and scene into the
// viewer's main loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/engine/camera"
	"github.com/Faultbox/deskscene/internal/engine/input"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/renderer"
	"github.com/Faultbox/deskscene/internal/engine/scene"
	"github.com/Faultbox/deskscene/internal/engine/screenshot"
	"github.com/Faultbox/deskscene/internal/engine/window"
	"github.com/Faultbox/deskscene/internal/logger"
)

// App is the viewer instance.
type App struct {
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	meshes   *mesh.Library
	scene    *scene.Scene
	shots    *screenshot.Capture

	dragging         bool
	captureRequested bool
}

// New creates the viewer: window and GL context first, then the renderer,
// then the scene on top of the live context.
func New(cfg *config.Config) (*App, error) {
	a := &App{}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Desk Scene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:           cfg.Graphics.Width,
		Height:          cfg.Graphics.Height,
		BackgroundColor: cfg.Scene.BackgroundColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	a.camera = camera.NewOrbitCamera()
	if cfg.Camera.Distance > 0 {
		a.camera.Distance = cfg.Camera.Distance
	}
	if cfg.Camera.DragSensitivity > 0 {
		a.camera.DragSensitivity = cfg.Camera.DragSensitivity
	}
	if cfg.Camera.ZoomSensitivity > 0 {
		a.camera.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	}

	a.shots = screenshot.NewCapture("screenshots", "deskscene")

	a.meshes = mesh.NewLibrary()
	a.scene = scene.New(scene.Config{
		TextureDir: cfg.Scene.TextureDir,
		Meshes:     a.meshes,
	})

	program := a.renderer.Program()
	program.Use()
	if err := a.scene.Setup(program); err != nil {
		// Missing assets degrade to flat colors; keep running.
		logger.Warn("scene setup incomplete", zap.Error(err))
	}

	logger.Info("viewer initialized")
	return a, nil
}

// Run starts the main loop and blocks until quit.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		a.renderer.Begin()

		program := a.renderer.Program()
		program.Use()
		program.SetMat4("view", a.camera.ViewMatrix())
		program.SetMat4("projection", a.camera.ProjectionMatrix(a.renderer.Aspect()))
		program.SetVec3("viewPosition", a.camera.Position())

		a.scene.Render(program)

		if a.captureRequested {
			a.captureRequested = false
			pixels, w, h := a.renderer.ReadPixels()
			if path, err := a.shots.FromPixels(pixels, w, h); err != nil {
				logger.Error("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents routes input events to the camera and window state.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_W, sdl.SCANCODE_UP:
				a.camera.HandlePan(1, 0, 0)
			case sdl.SCANCODE_S, sdl.SCANCODE_DOWN:
				a.camera.HandlePan(-1, 0, 0)
			case sdl.SCANCODE_A, sdl.SCANCODE_LEFT:
				a.camera.HandlePan(0, -1, 0)
			case sdl.SCANCODE_D, sdl.SCANCODE_RIGHT:
				a.camera.HandlePan(0, 1, 0)
			case sdl.SCANCODE_Q:
				a.camera.HandlePan(0, 0, 1)
			case sdl.SCANCODE_E:
				a.camera.HandlePan(0, 0, -1)
			case sdl.SCANCODE_F12:
				a.captureRequested = true
			}

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = true
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(event.WheelY)
		}
	}
}

// Close tears the viewer down in reverse creation order.
func (a *App) Close() {
	logger.Info("closing viewer")
	if a.scene != nil {
		a.scene.Release()
	}
	if a.meshes != nil {
		a.meshes.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

package gui

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gridplot/internal/figure"
)

var ColBg = rl.NewColor(255, 255, 255, 255)

// Options sizes and names the window.
type Options struct {
	Width  int
	Height int
	Title  string
}

// Rasterizer produces the image shown in the window at a given pixel size.
type Rasterizer interface {
	Image(width, height int) (image.Image, error)
}

var _ Rasterizer = (*figure.Figure)(nil)

// Window keeps the texture of the current frame and re-rasterizes the
// figure when the window is resized.
type Window struct {
	src     Rasterizer
	texture rl.Texture2D
	loaded  bool
	width   int
	height  int
}

// initWindow opens a resizable window and caps redraws at 30 frames per
// second; the figure is static so nothing needs more.
func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetTargetFPS(30)
}

// Show opens a window with the rendered figure and blocks until it is closed.
func Show(src Rasterizer, opts Options) error {
	initWindow(opts)
	defer rl.CloseWindow()

	w := &Window{src: src}
	defer w.unload()

	if err := w.resize(opts.Width, opts.Height); err != nil {
		return err
	}
	return w.RunLoop()
}

func (w *Window) RunLoop() error {
	for !rl.WindowShouldClose() {
		if err := w.Update(); err != nil {
			return err
		}
		w.Draw()
	}
	return nil
}

func (w *Window) Update() error {
	if rl.IsWindowResized() {
		return w.resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	return nil
}

func (w *Window) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	if w.loaded {
		rl.DrawTexture(w.texture, 0, 0, rl.White)
	}
	rl.EndDrawing()
}

func (w *Window) resize(width, height int) error {
	if width <= 0 || height <= 0 || (width == w.width && height == w.height && w.loaded) {
		return nil
	}

	img, err := w.src.Image(width, height)
	if err != nil {
		return err
	}

	w.unload()
	rimg := rl.NewImageFromImage(img)
	w.texture = rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	w.loaded = true
	w.width, w.height = width, height
	return nil
}

func (w *Window) unload() {
	if w.loaded {
		rl.UnloadTexture(w.texture)
		w.loaded = false
	}
}

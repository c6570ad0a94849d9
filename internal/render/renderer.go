// Package render defines the drawing, input and loop surface the frontends
// program against. internal/render/ebiten implements it for a desktop window.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate is returned from Game.Update to end the loop normally.
var ErrTerminate = errors.New("render: terminate")

// Renderer draws shapes and text onto images and uploads pixel data.
type Renderer interface {
	NewImage(width, height int) Image
	NewImageFromImage(src image.Image) Image

	// Shapes, in pixels
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	FillPolygon(dst Image, points []Point, clr color.Color)

	// DrawText places the top-left corner of text at (x, y).
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Point is a screen position in pixels.
type Point struct {
	X, Y float32
}

// Image is a drawable surface: the screen, an offscreen buffer or a texture.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	// Clear resets every pixel to transparent.
	Clear()
	DrawImage(src Image, opts *DrawImageOptions)
	// DrawTriangles draws textured triangles sampling img at each vertex's
	// source position.
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)
	// Dispose frees the GPU memory. The image must not be used afterwards.
	Dispose()
}

// DrawImageOptions places a DrawImage call.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM is a 2D placement transform.
type GeoM interface {
	Translate(tx, ty float64)
}

// NewGeoM returns an identity transform. The backend sets it at init.
var NewGeoM func() GeoM

// Address selects how source coordinates outside the image are sampled.
type Address int

const (
	AddressUnsafe Address = iota
	AddressClampToZero
	// AddressRepeat wraps source coordinates, used to tile wall textures.
	AddressRepeat
)

// DrawTrianglesOptions configures DrawTriangles.
type DrawTrianglesOptions struct {
	AntiAlias bool
	Address   Address
}

// Vertex is one triangle corner. Colors multiply the sampled texel.
type Vertex struct {
	DstX, DstY                     float32
	SrcX, SrcY                     float32
	ColorR, ColorG, ColorB, ColorA float32
}

// InputManager reports keyboard state for the current tick.
type InputManager interface {
	IsKeyPressed(key Key) bool
	// IsKeyJustPressed is true only on the tick the key went down.
	IsKeyJustPressed(key Key) bool
}

// Key is a backend-neutral key code.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyEscape
	KeyQ
	KeyM
)

// ResourceLoader reads images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// SoundPlayer plays one prepared sound effect.
type SoundPlayer interface {
	// Play starts the sound from the beginning, cutting off a previous play.
	Play()
}

// Game is driven by an Engine: Update once per tick, Draw once per frame.
type Game interface {
	// Update returns ErrTerminate to end the loop without an error.
	Update() error
	Draw(screen Image)
	// Layout maps the window size to the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	// SetTPS sets how many times per second Update runs.
	SetTPS(tps int)
	// RunGame blocks until the game ends or the window closes.
	RunGame(game Game) error
}

package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"chosenoffset.com/raycaster/internal/render"
)

// baseFontSize is the HUD font size at scale 1.
const baseFontSize = 14

// EbitenRenderer draws with ebiten's vector and text packages.
type EbitenRenderer struct {
	face     *text.GoTextFaceSource
	whiteImg *ebiten.Image
}

func init() {
	render.NewGeoM = NewGeoM
}

// NewRenderer loads the HUD font and returns the renderer.
func NewRenderer() (render.Renderer, error) {
	face, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &EbitenRenderer{face: face, whiteImg: white}, nil
}

func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// NewImageFromImage uploads a decoded or generated texture.
func (r *EbitenRenderer) NewImageFromImage(src image.Image) render.Image {
	return &EbitenImage{img: ebiten.NewImageFromImage(src)}
}

func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, false)
}

func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(unwrap(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

// FillPolygon fills a closed polygon. Fewer than three points draw nothing.
func (r *EbitenRenderer) FillPolygon(dst render.Image, points []render.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	cr, cg, cb, ca := clr.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(cr) / 0xffff
		vertices[i].ColorG = float32(cg) / 0xffff
		vertices[i].ColorB = float32(cb) / 0xffff
		vertices[i].ColorA = float32(ca) / 0xffff
	}

	unwrap(dst).DrawTriangles(vertices, indices, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: false,
	})
}

// DrawText draws text with its top-left corner at (x, y).
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = baseFontSize * scale * 1.2
	text.Draw(unwrap(dst), str, r.faceAt(scale), op)
}

// MeasureText returns the pixel size of text drawn at scale.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	w, h := text.Measure(str, r.faceAt(scale), baseFontSize*scale*1.2)
	return int(w), int(h)
}

func (r *EbitenRenderer) faceAt(scale float64) *text.GoTextFace {
	return &text.GoTextFace{Source: r.face, Size: baseFontSize * scale}
}

// EbitenImage adapts *ebiten.Image to render.Image.
type EbitenImage struct {
	img *ebiten.Image
}

func (i *EbitenImage) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *EbitenImage) Fill(clr color.Color) { i.img.Fill(clr) }

func (i *EbitenImage) Clear() { i.img.Clear() }

func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage draws src translated by opts.GeoM. A nil opts draws at the origin.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	op := &ebiten.DrawImageOptions{}
	if opts != nil && opts.GeoM != nil {
		op.GeoM = opts.GeoM.(*EbitenGeoM).geoM
	}
	i.img.DrawImage(unwrap(src), op)
}

func (i *EbitenImage) DrawTriangles(vertices []render.Vertex, indices []uint16, img render.Image, opts *render.DrawTrianglesOptions) {
	vs := make([]ebiten.Vertex, len(vertices))
	for j, v := range vertices {
		vs[j] = ebiten.Vertex{
			DstX: v.DstX, DstY: v.DstY,
			SrcX: v.SrcX, SrcY: v.SrcY,
			ColorR: v.ColorR, ColorG: v.ColorG, ColorB: v.ColorB, ColorA: v.ColorA,
		}
	}

	var op *ebiten.DrawTrianglesOptions
	if opts != nil {
		op = &ebiten.DrawTrianglesOptions{
			AntiAlias: opts.AntiAlias,
			Address:   addressToEbiten(opts.Address),
		}
	}
	i.img.DrawTriangles(vs, indices, unwrap(img), op)
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*EbitenImage).img
}

func addressToEbiten(a render.Address) ebiten.Address {
	switch a {
	case render.AddressClampToZero:
		return ebiten.AddressClampToZero
	case render.AddressRepeat:
		return ebiten.AddressRepeat
	default:
		return ebiten.AddressUnsafe
	}
}

// EbitenGeoM adapts ebiten.GeoM to render.GeoM.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM returns an identity transform.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{}
}

func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// EbitenInputManager reads ebiten's keyboard state.
type EbitenInputManager struct{}

func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := ebitenKeys[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := ebitenKeys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

var ebitenKeys = map[render.Key]ebiten.Key{
	render.KeyW:      ebiten.KeyW,
	render.KeyA:      ebiten.KeyA,
	render.KeyS:      ebiten.KeyS,
	render.KeyD:      ebiten.KeyD,
	render.KeyUp:     ebiten.KeyArrowUp,
	render.KeyDown:   ebiten.KeyArrowDown,
	render.KeyLeft:   ebiten.KeyArrowLeft,
	render.KeyRight:  ebiten.KeyArrowRight,
	render.KeyTab:    ebiten.KeyTab,
	render.KeyEscape: ebiten.KeyEscape,
	render.KeyQ:      ebiten.KeyQ,
	render.KeyM:      ebiten.KeyM,
}

// EbitenResourceLoader decodes image files into GPU images.
type EbitenResourceLoader struct{}

func NewResourceLoader() render.ResourceLoader {
	return &EbitenResourceLoader{}
}

func (l *EbitenResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return &EbitenImage{img: img}, nil
}

// EbitenEngine runs a render.Game in an ebiten window.
type EbitenEngine struct{}

func NewEngine() render.Engine {
	return &EbitenEngine{}
}

func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame blocks until the window closes or the game returns
// render.ErrTerminate, which ends the loop with a nil error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter presents a render.Game to ebiten.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrTerminate) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
